// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// TimeLayout is the storage format for catalog timestamps. The catalog keeps
// timestamps as pre-formatted strings, matching the wire representation
// consumed by the admin UI.
const TimeLayout = "2006-01-02 15:04:05"

// DefaultGroupTitle is the sentinel group assigned to channels created
// without an explicit group title.
const DefaultGroupTitle = "-"

// Channel is one entry of the IPTV catalog: a named stream URL with the
// metadata an IPTV player needs to render it inside a grouped playlist.
type Channel struct {
	ID         int64  // Catalog-assigned identifier, stable and never reused.
	GroupTitle string // Playlist group the channel belongs to; "-" when unset.
	TvgID      string // EPG identifier (tvg-id attribute in M3U).
	TvgLogo    string // Channel logo URL (tvg-logo attribute in M3U).
	TvgName    string // Display name shown by the player.
	TvgURL     string // Stream URL.
	CreatedAt  string // Creation timestamp, formatted with TimeLayout.
	UpdatedAt  string // Last-modification timestamp, refreshed on every patch.
	Deleted    bool   // Soft-delete flag; hidden from admin listings when set.
}

// ChannelPatch is a partial update of a Channel. Each field distinguishes
// "present" from "absent" via a pointer; only present fields are applied.
type ChannelPatch struct {
	GroupTitle *string
	TvgID      *string
	TvgLogo    *string
	TvgName    *string
	TvgURL     *string
	Deleted    *bool
}

// Apply merges the present fields of the patch into the channel.
// The caller is responsible for refreshing UpdatedAt afterwards.
func (p *ChannelPatch) Apply(ch *Channel) {
	if p.GroupTitle != nil {
		ch.GroupTitle = *p.GroupTitle
	}
	if p.TvgID != nil {
		ch.TvgID = *p.TvgID
	}
	if p.TvgLogo != nil {
		ch.TvgLogo = *p.TvgLogo
	}
	if p.TvgName != nil {
		ch.TvgName = *p.TvgName
	}
	if p.TvgURL != nil {
		ch.TvgURL = *p.TvgURL
	}
	if p.Deleted != nil {
		ch.Deleted = *p.Deleted
	}
}

// Package playlist renders an ordered channel collection into the playlist
// text formats served to IPTV players. Rendering is a pure transformation:
// channels go in, text comes out, nothing is trimmed, escaped or re-sorted.
package playlist

import (
	"strings"

	"tabiptv/internal/domain/entity"
)

// Format selects the output representation of a rendered playlist.
type Format string

const (
	// FormatM3U is the extended M3U format understood by most players.
	FormatM3U Format = "m3u"
	// FormatGrouped is the grouped plain-text format ("group,#genre#" blocks).
	// Any format token other than "m3u" resolves to it.
	FormatGrouped Format = "txt"
)

// ParseFormat maps a request path token to a Format. Only the literal "m3u"
// selects M3U; every other value selects the grouped text format.
func ParseFormat(token string) Format {
	if token == string(FormatM3U) {
		return FormatM3U
	}

	return FormatGrouped
}

// Render dispatches to the renderer for the given format.
// An empty channel slice renders to the empty string in both formats.
func Render(channels []*entity.Channel, format Format) string {
	if format == FormatM3U {
		return RenderM3U(channels)
	}

	return RenderGrouped(channels)
}

// RenderM3U renders the channels as an extended M3U playlist:
//
//	#EXTM3U
//	#EXTINF:-1 group-title="News" tvg-id="CCTV-1" tvg-logo="https://…/CCTV1.png",CCTV-1
//	http://…/index.m3u8
//
// Channels are emitted in input order, two lines each, after the header line.
// Field values are written exactly as stored; a value containing a double
// quote produces a technically malformed attribute list. That limitation is
// inherited from the stored data model and deliberately not papered over.
func RenderM3U(channels []*entity.Channel) string {
	if len(channels) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("#EXTM3U\n")
	for _, ch := range channels {
		b.WriteString(`#EXTINF:-1 group-title="`)
		b.WriteString(ch.GroupTitle)
		b.WriteString(`" tvg-id="`)
		b.WriteString(ch.TvgID)
		b.WriteString(`" tvg-logo="`)
		b.WriteString(ch.TvgLogo)
		b.WriteString(`",`)
		b.WriteString(ch.TvgName)
		b.WriteString("\n")
		b.WriteString(ch.TvgURL)
		b.WriteString("\n")
	}

	return b.String()
}

// RenderGrouped renders the channels as the grouped text format:
//
//	News,#genre#
//	CCTV-1,http://…/a.m3u8+CCTV-2,http://…/b.m3u8
//	Sports,#genre#
//	CCTV-5,http://…/c.m3u8
//
// Groups appear in the order their title is first encountered while scanning
// the input. All members of a group are joined by "+" onto a single line;
// that one-line-per-group shape is the format, not a bug to fix.
func RenderGrouped(channels []*entity.Channel) string {
	if len(channels) == 0 {
		return ""
	}

	groupOrder := make([]string, 0)
	groupMembers := make(map[string][]string)
	for _, ch := range channels {
		member := ch.TvgName + "," + ch.TvgURL
		if _, seen := groupMembers[ch.GroupTitle]; !seen {
			groupOrder = append(groupOrder, ch.GroupTitle)
		}
		groupMembers[ch.GroupTitle] = append(groupMembers[ch.GroupTitle], member)
	}

	blocks := make([]string, 0, len(groupOrder))
	for _, title := range groupOrder {
		blocks = append(blocks, title+",#genre#\n"+strings.Join(groupMembers[title], "+"))
	}

	return strings.Join(blocks, "\n")
}

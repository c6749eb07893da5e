package usecase

import "context"

// PlaylistUsecase defines the interface for serving rendered playlists to
// IPTV players.
type PlaylistUsecase interface {
	// RenderPlaylist produces the playlist text for a registered path.
	// The format token "m3u" selects the M3U format; any other token selects
	// the grouped text format. An unregistered path and an empty catalog both
	// yield domainerrors.ErrPlaylistNotFound.
	RenderPlaylist(ctx context.Context, path, formatToken string) (string, error)
}

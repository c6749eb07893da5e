package handler

import (
	"log/slog"
	"net/http"

	"tabiptv/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlaylistHandler serves rendered playlists to IPTV players.
type PlaylistHandler struct {
	uc     usecase.PlaylistUsecase
	logger *slog.Logger
}

// NewPlaylistHandler is the constructor for PlaylistHandler, injected by Fx.
func NewPlaylistHandler(uc usecase.PlaylistUsecase, logger *slog.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetPlaylist renders the playlist for a registered path. The response is the
// raw playlist text, not the JSON envelope; players consume it directly.
func (h *PlaylistHandler) GetPlaylist(c echo.Context) error {
	path := c.Param("path")
	format := c.Param("format")

	rendered, err := h.uc.RenderPlaylist(c.Request().Context(), path, format)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.String(http.StatusOK, rendered)
}

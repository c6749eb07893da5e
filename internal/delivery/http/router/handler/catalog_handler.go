// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tabiptv/internal/delivery/http/response"
	"tabiptv/internal/domain/entity"
	"tabiptv/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for channel catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// channelResponse is the wire shape of a catalog entry. Field names follow
// the storage columns the admin UI was built against.
type channelResponse struct {
	ID         int64  `json:"id"`
	GroupTitle string `json:"group_title"`
	TvgID      string `json:"tvg_id"`
	TvgLogo    string `json:"tvg_logo"`
	TvgName    string `json:"tvg_name"`
	TvgURL     string `json:"tvg_url"`
	CreateTime string `json:"create_time"`
	UpdateTime string `json:"update_time"`
	DelTag     bool   `json:"del_tag"`
}

func toChannelResponse(ch *entity.Channel) channelResponse {
	return channelResponse{
		ID:         ch.ID,
		GroupTitle: ch.GroupTitle,
		TvgID:      ch.TvgID,
		TvgLogo:    ch.TvgLogo,
		TvgName:    ch.TvgName,
		TvgURL:     ch.TvgURL,
		CreateTime: ch.CreatedAt,
		UpdateTime: ch.UpdatedAt,
		DelTag:     ch.Deleted,
	}
}

func toChannelResponseList(channels []*entity.Channel) []channelResponse {
	list := make([]channelResponse, 0, len(channels))
	for _, ch := range channels {
		list = append(list, toChannelResponse(ch))
	}

	return list
}

type createChannelRequest struct {
	GroupTitle string `json:"group_title"`
	TvgID      string `json:"tvg_id" validate:"required"`
	TvgLogo    string `json:"tvg_logo" validate:"required"`
	TvgName    string `json:"tvg_name" validate:"required"`
	TvgURL     string `json:"tvg_url" validate:"required"`
}

type updateChannelRequest struct {
	GroupTitle *string `json:"group_title"`
	TvgID      *string `json:"tvg_id"`
	TvgLogo    *string `json:"tvg_logo"`
	TvgName    *string `json:"tvg_name"`
	TvgURL     *string `json:"tvg_url"`
	DelTag     *bool   `json:"del_tag"`
}

// CreateChannel handles adding a channel to the catalog.
func (h *CatalogHandler) CreateChannel(c echo.Context) error {
	var req createChannelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid channel input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	channel, err := h.uc.CreateChannel(c.Request().Context(), usecase.CreateChannelInput{
		GroupTitle: req.GroupTitle,
		TvgID:      req.TvgID,
		TvgLogo:    req.TvgLogo,
		TvgName:    req.TvgName,
		TvgURL:     req.TvgURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toChannelResponse(channel), "Channel created successfully")
}

// ListChannels handles paged catalog listings. page defaults to 1; an
// explicit page=0 returns the whole catalog.
func (h *CatalogHandler) ListChannels(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		page, _ = strconv.Atoi(raw)
	}
	pageSize, _ := strconv.Atoi(c.QueryParam("perPage"))

	channels, err := h.uc.ListChannels(c.Request().Context(), usecase.ListChannelsInput{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toChannelResponseList(channels), "")
}

// GetChannel handles fetching a single catalog entry by ID.
func (h *CatalogHandler) GetChannel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid channel id")
	}

	channel, err := h.uc.GetChannel(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toChannelResponse(channel), "")
}

// UpdateChannel handles partial updates of a catalog entry.
func (h *CatalogHandler) UpdateChannel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid channel id")
	}

	var req updateChannelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid channel input")
	}

	channel, err := h.uc.UpdateChannel(c.Request().Context(), id, entity.ChannelPatch{
		GroupTitle: req.GroupTitle,
		TvgID:      req.TvgID,
		TvgLogo:    req.TvgLogo,
		TvgName:    req.TvgName,
		TvgURL:     req.TvgURL,
		Deleted:    req.DelTag,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toChannelResponse(channel), "Channel updated successfully")
}

// UpdateChannelURL handles the single-field stream URL edit. The inputs
// arrive as query parameters, matching the admin UI's legacy call shape.
func (h *CatalogHandler) UpdateChannelURL(c echo.Context) error {
	url := c.QueryParam("url")
	if url == "" {
		return response.BadRequest(c, "INVALID_INPUT", "url is required")
	}

	id, err := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid channel id")
	}

	channel, err := h.uc.UpdateChannelURL(c.Request().Context(), id, url)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toChannelResponse(channel), "Channel URL updated successfully")
}

// DeleteChannel handles removing a catalog entry.
func (h *CatalogHandler) DeleteChannel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid channel id")
	}

	if err := h.uc.DeleteChannel(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"id": id}, "Channel deleted successfully")
}

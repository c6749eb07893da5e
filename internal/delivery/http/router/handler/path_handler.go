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

// PathHandler holds dependencies for playlist path handlers.
type PathHandler struct {
	uc     usecase.PathUsecase
	logger *slog.Logger
}

// NewPathHandler is the constructor for PathHandler, injected by Fx.
func NewPathHandler(uc usecase.PathUsecase, logger *slog.Logger) *PathHandler {
	return &PathHandler{
		uc:     uc,
		logger: logger,
	}
}

type pathResponse struct {
	ID   int64  `json:"id"`
	Path string `json:"path"`
}

func toPathResponse(p *entity.PlaylistPath) pathResponse {
	return pathResponse{
		ID:   p.ID,
		Path: p.Path,
	}
}

type createPathRequest struct {
	Path string `json:"path" validate:"required"`
}

type updatePathRequest struct {
	Path *string `json:"path"`
}

// CreatePath handles registering a playlist path.
func (h *PathHandler) CreatePath(c echo.Context) error {
	var req createPathRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid path input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	registration, err := h.uc.CreatePath(c.Request().Context(), req.Path)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPathResponse(registration), "Path created successfully")
}

// ListPaths handles listing every registration.
func (h *PathHandler) ListPaths(c echo.Context) error {
	registrations, err := h.uc.ListPaths(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	list := make([]pathResponse, 0, len(registrations))
	for _, registration := range registrations {
		list = append(list, toPathResponse(registration))
	}

	return response.Success(c, http.StatusOK, list, "")
}

// GetPath handles fetching one registration by ID.
func (h *PathHandler) GetPath(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid path id")
	}

	registration, err := h.uc.GetPath(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPathResponse(registration), "")
}

// UpdatePath handles renaming a registration.
func (h *PathHandler) UpdatePath(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid path id")
	}

	var req updatePathRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid path input")
	}

	registration, err := h.uc.UpdatePath(c.Request().Context(), id, entity.PlaylistPathPatch{
		Path: req.Path,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPathResponse(registration), "Path updated successfully")
}

// QRCode serves a PNG QR code of the registration's M3U subscription URL.
func (h *PathHandler) QRCode(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid path id")
	}

	png, err := h.uc.PathQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

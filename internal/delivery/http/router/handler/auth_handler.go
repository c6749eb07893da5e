package handler

import (
	"log/slog"
	"net/http"

	"tabiptv/internal/delivery/http/middleware"
	"tabiptv/internal/delivery/http/response"
	"tabiptv/internal/domain/entity"
	domainerrors "tabiptv/internal/domain/errors"
	"tabiptv/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// tokenResponse is the raw OAuth2 password flow response body. It is served
// without the JSON envelope so standard OAuth2 clients can consume it.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// accountResponse is the wire shape of the admin account, hash excluded.
type accountResponse struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	DelTag     bool   `json:"del_tag"`
	CreateTime string `json:"create_time"`
}

func toAccountResponse(account *entity.Account) accountResponse {
	return accountResponse{
		ID:         account.ID,
		Username:   account.Username,
		DelTag:     account.Deleted,
		CreateTime: account.CreatedAt,
	}
}

type bootstrapRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Token handles the OAuth2 password flow login. Credentials arrive as form
// values.
func (h *AuthHandler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return response.BadRequest(c, "INVALID_INPUT", "username and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	})
}

// Bootstrap handles the one-time creation of the admin account.
func (h *AuthHandler) Bootstrap(c echo.Context) error {
	var req bootstrapRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.uc.Bootstrap(c.Request().Context(), usecase.BootstrapInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(account), "Account created successfully")
}

// Me returns the account resolved by the auth middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	account := middleware.AccountFromContext(c)
	if account == nil {
		return domainerrors.ErrUnauthorized
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "")
}

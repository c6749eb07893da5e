package middleware

import (
	"strings"

	"tabiptv/internal/domain/entity"
	domainerrors "tabiptv/internal/domain/errors"
	"tabiptv/internal/usecase"

	"github.com/labstack/echo/v4"
)

// accountContextKey is the echo.Context key under which the authenticated
// account is stored for handlers.
const accountContextKey = "account"

// AuthMiddleware gates admin routes behind a bearer token. Every token defect
// is answered with the same 401; only a token whose account is soft-deleted
// is answered differently (400 inactive), and both are produced by the error
// handler, not here.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate validates the bearer token and stores the resolved account on
// the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized
		}

		account, err := m.authUsecase.ResolveAccount(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(accountContextKey, account)

		return next(c)
	}
}

// AccountFromContext returns the account stored by Authenticate, or nil when
// the route was not authenticated.
func AccountFromContext(c echo.Context) *entity.Account {
	account, _ := c.Get(accountContextKey).(*entity.Account)

	return account
}

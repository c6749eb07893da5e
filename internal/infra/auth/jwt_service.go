package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tabiptv/config"
	"tabiptv/internal/domain/service"
)

// accessTokenTTL is the fixed lifetime of a minted bearer credential.
// There is no refresh endpoint; an expired token forces a new login.
const accessTokenTTL = 30 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: accessTokenTTL,
	}, nil
}

// GenerateToken mints an HS256-signed token whose subject is the username.
func (s *jwtService) GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string and extracts the bound claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	registered, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || registered.Subject == "" {
		return nil, jwt.ErrTokenInvalidSubject
	}

	claims := &service.Claims{Username: registered.Subject}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}

	return claims, nil
}

// AccessTokenDuration returns the configured credential lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

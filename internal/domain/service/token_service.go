package service

import "time"

// Claims is the validated content of a bearer credential: the account it was
// minted for and when it stops being acceptable.
type Claims struct {
	Username  string
	ExpiresAt time.Time
}

// TokenService defines the interface for minting and validating the bearer
// credentials presented by admin clients. Tokens are stateless; there is no
// server-side revocation list.
type TokenService interface {
	// GenerateToken mints a signed, time-limited credential bound to the
	// given username.
	GenerateToken(username string) (string, error)

	// ValidateToken checks signature and expiry and returns the bound claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured credential lifetime.
	AccessTokenDuration() time.Duration
}

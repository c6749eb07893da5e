package usecase

import (
	"context"

	"tabiptv/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the credentials presented to obtain a bearer token.
type LoginInput struct {
	Username string
	Password string
}

// BootstrapInput defines the data required to create the admin account.
type BootstrapInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the minted credential after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
}

// AuthUsecase defines the interface for admin authentication operations.
type AuthUsecase interface {
	// Login verifies the credentials and mints a bearer token.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// ResolveAccount validates a bearer token and loads the account it was
	// minted for. A soft-deleted account resolves to ErrInactiveAccount;
	// every token defect resolves to ErrUnauthorized.
	ResolveAccount(ctx context.Context, tokenString string) (*entity.Account, error)

	// Bootstrap creates the admin account. It is refused with
	// ErrAccountAlreadyExists once any account row exists, deleted included.
	Bootstrap(ctx context.Context, input BootstrapInput) (*entity.Account, error)
}

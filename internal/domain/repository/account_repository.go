package repository

import (
	"context"
	"errors"

	"tabiptv/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the operations for admin account persistence.
type AccountRepository interface {
	// Create persists the admin account. The store assigns the ID.
	Create(ctx context.Context, account *entity.Account) error

	// FindByUsername retrieves the account with the given username.
	// The lookup expects exactly one match; zero matches return
	// ErrAccountNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Count returns the number of account rows, deleted included. Bootstrap
	// uses it to enforce the at-most-one-account invariant.
	Count(ctx context.Context) (int64, error)
}

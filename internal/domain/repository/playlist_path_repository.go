package repository

import (
	"context"
	"errors"

	"tabiptv/internal/domain/entity"
)

// ErrPathNotFound is a domain-specific error returned when a playlist path is not found.
var ErrPathNotFound = errors.New("playlist path not found")

// PlaylistPathRepository defines the operations for playlist path persistence.
// Path values are not unique; lookups take the first match.
type PlaylistPathRepository interface {
	// Create persists a new path registration. The store assigns the ID.
	Create(ctx context.Context, path *entity.PlaylistPath) error

	// FindByID retrieves a registration by ID.
	// Returns ErrPathNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.PlaylistPath, error)

	// FindByPath retrieves the first registration whose path matches exactly.
	// Returns ErrPathNotFound when none match.
	FindByPath(ctx context.Context, path string) (*entity.PlaylistPath, error)

	// List returns every registration in insertion order.
	List(ctx context.Context) ([]*entity.PlaylistPath, error)

	// Update persists all fields of an existing registration.
	// Returns ErrPathNotFound when absent.
	Update(ctx context.Context, path *entity.PlaylistPath) error
}

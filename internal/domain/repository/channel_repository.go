// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tabiptv/internal/domain/entity"
)

// ErrChannelNotFound is a domain-specific error returned when a channel is not found.
var ErrChannelNotFound = errors.New("channel not found")

// ChannelRepository defines the standard operations for channel persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ChannelRepository interface {
	// Create persists a new channel. The store assigns the ID; the caller
	// assigns the timestamp strings.
	Create(ctx context.Context, channel *entity.Channel) error

	// FindByID retrieves a single channel by ID, deleted or not.
	// Returns ErrChannelNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Channel, error)

	// List returns non-deleted channels in insertion order, skipping offset
	// rows and returning at most limit rows. limit <= 0 means no limit.
	List(ctx context.Context, offset, limit int) ([]*entity.Channel, error)

	// ListAll returns every channel regardless of the deleted flag, in
	// insertion order. Used by playlist rendering, which deliberately does
	// not filter on the soft-delete flag.
	ListAll(ctx context.Context) ([]*entity.Channel, error)

	// Update persists all fields of an existing channel.
	// Returns ErrChannelNotFound when absent.
	Update(ctx context.Context, channel *entity.Channel) error

	// Delete removes the channel row entirely.
	// Returns ErrChannelNotFound when absent.
	Delete(ctx context.Context, id int64) error
}

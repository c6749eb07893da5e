// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tabiptv/internal/domain/entity"
)

// --- Input DTOs ---

// CreateChannelInput defines the data required to add a channel to the catalog.
type CreateChannelInput struct {
	GroupTitle string
	TvgID      string
	TvgLogo    string
	TvgName    string
	TvgURL     string
}

// ListChannelsInput defines the paging parameters for channel listings.
// Page <= 0 returns the whole catalog; PageSize <= 0 falls back to the default.
type ListChannelsInput struct {
	Page     int
	PageSize int
}

// CatalogUsecase defines the interface for channel catalog management.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CatalogUsecase interface {
	CreateChannel(ctx context.Context, input CreateChannelInput) (*entity.Channel, error)
	GetChannel(ctx context.Context, id int64) (*entity.Channel, error)
	ListChannels(ctx context.Context, input ListChannelsInput) ([]*entity.Channel, error)
	UpdateChannel(ctx context.Context, id int64, patch entity.ChannelPatch) (*entity.Channel, error)
	UpdateChannelURL(ctx context.Context, id int64, url string) (*entity.Channel, error)
	DeleteChannel(ctx context.Context, id int64) error
}

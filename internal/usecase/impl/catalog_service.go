// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"tabiptv/internal/domain/entity"
	domainerrors "tabiptv/internal/domain/errors"
	"tabiptv/internal/domain/repository"
	"tabiptv/internal/usecase"

	"github.com/pkg/errors"
)

// defaultPageSize bounds channel listings when the client sends a page
// number without a size.
const defaultPageSize = 10

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateChannel adds a channel to the catalog. An empty group title is
// replaced by the default group sentinel.
func (srv *catalogService) CreateChannel(ctx context.Context, input usecase.CreateChannelInput) (*entity.Channel, error) {
	srv.logger.Info("Creating channel", "tvgName", input.TvgName)

	groupTitle := input.GroupTitle
	if groupTitle == "" {
		groupTitle = entity.DefaultGroupTitle
	}

	now := srv.now().Format(entity.TimeLayout)
	channel := &entity.Channel{
		GroupTitle: groupTitle,
		TvgID:      input.TvgID,
		TvgLogo:    input.TvgLogo,
		TvgName:    input.TvgName,
		TvgURL:     input.TvgURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ChannelRepo().Create(ctx, channel); err != nil {
			return errors.Wrap(err, "failed to create channel")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create channel")
	}

	return channel, nil
}

// GetChannel retrieves a single channel by ID, deleted or not.
func (srv *catalogService) GetChannel(ctx context.Context, id int64) (*entity.Channel, error) {
	var channel *entity.Channel

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ChannelRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrChannelNotFound) {
				return domainerrors.ErrChannelNotFound
			}

			return errors.Wrap(err, "failed to find channel")
		}
		channel = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return channel, nil
}

// ListChannels returns non-deleted channels. Page <= 0 returns the whole
// catalog; otherwise the listing is offset/limit paged.
func (srv *catalogService) ListChannels(ctx context.Context, input usecase.ListChannelsInput) ([]*entity.Channel, error) {
	offset, limit := 0, 0
	if input.Page > 0 {
		pageSize := input.PageSize
		if pageSize <= 0 {
			pageSize = defaultPageSize
		}
		offset = (input.Page - 1) * pageSize
		limit = pageSize
	}

	var channels []*entity.Channel

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ChannelRepo().List(ctx, offset, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list channels")
		}
		channels = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return channels, nil
}

// UpdateChannel applies a partial update and refreshes the modification
// timestamp.
func (srv *catalogService) UpdateChannel(ctx context.Context, id int64, patch entity.ChannelPatch) (*entity.Channel, error) {
	srv.logger.Info("Updating channel", "id", id)

	var channel *entity.Channel

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		channelRepo := repoFactory.ChannelRepo()

		found, err := channelRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrChannelNotFound) {
				return domainerrors.ErrChannelNotFound
			}

			return errors.Wrap(err, "failed to find channel")
		}

		patch.Apply(found)
		found.UpdatedAt = srv.now().Format(entity.TimeLayout)

		if err := channelRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update channel")
		}
		channel = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return channel, nil
}

// UpdateChannelURL replaces only the stream URL of a channel.
func (srv *catalogService) UpdateChannelURL(ctx context.Context, id int64, url string) (*entity.Channel, error) {
	return srv.UpdateChannel(ctx, id, entity.ChannelPatch{TvgURL: &url})
}

// DeleteChannel removes the channel row entirely.
func (srv *catalogService) DeleteChannel(ctx context.Context, id int64) error {
	srv.logger.Info("Deleting channel", "id", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ChannelRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrChannelNotFound) {
				return domainerrors.ErrChannelNotFound
			}

			return errors.Wrap(err, "failed to delete channel")
		}

		return nil
	})

	return err
}

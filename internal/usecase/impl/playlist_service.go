package impl

import (
	"context"
	"log/slog"

	domainerrors "tabiptv/internal/domain/errors"
	"tabiptv/internal/domain/playlist"
	"tabiptv/internal/domain/repository"
	"tabiptv/internal/usecase"

	"github.com/pkg/errors"
)

// playlistService implements the PlaylistUsecase interface.
type playlistService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPlaylistService is the constructor for playlistService.
func NewPlaylistService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.PlaylistUsecase {
	return &playlistService{
		txManager: txManager,
		logger:    logger,
	}
}

// RenderPlaylist produces the playlist text for a registered path.
// The rendering reads the whole catalog, soft-deleted rows included; the
// published playlist is the raw catalog, not the filtered admin view.
func (srv *playlistService) RenderPlaylist(ctx context.Context, path, formatToken string) (string, error) {
	srv.logger.Debug("Rendering playlist", "path", path, "format", formatToken)

	var rendered string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.PathRepo().FindByPath(ctx, path); err != nil {
			if errors.Is(err, repository.ErrPathNotFound) {
				return domainerrors.ErrPlaylistNotFound
			}

			return errors.Wrap(err, "failed to resolve playlist path")
		}

		channels, err := repoFactory.ChannelRepo().ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load channels")
		}

		rendered = playlist.Render(channels, playlist.ParseFormat(formatToken))

		return nil
	})
	if err != nil {
		return "", err
	}

	// An empty catalog and an unknown path are indistinguishable to players.
	if rendered == "" {
		return "", domainerrors.ErrPlaylistNotFound
	}

	return rendered, nil
}

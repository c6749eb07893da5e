package impl

import (
	"context"
	"log/slog"

	"tabiptv/internal/domain/entity"
	domainerrors "tabiptv/internal/domain/errors"
	"tabiptv/internal/domain/repository"
	"tabiptv/internal/domain/service"
	"tabiptv/internal/usecase"

	"github.com/pkg/errors"
)

// pathService implements the PathUsecase interface.
type pathService struct {
	txManager repository.TransactionManager
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// NewPathService is the constructor for pathService.
func NewPathService(
	txManager repository.TransactionManager,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.PathUsecase {
	return &pathService{
		txManager: txManager,
		qrcode:    qrcode,
		logger:    logger,
	}
}

// CreatePath registers a playlist path.
func (srv *pathService) CreatePath(ctx context.Context, path string) (*entity.PlaylistPath, error) {
	srv.logger.Info("Registering playlist path", "path", path)

	registration := &entity.PlaylistPath{Path: path}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PathRepo().Create(ctx, registration); err != nil {
			return errors.Wrap(err, "failed to create playlist path")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return registration, nil
}

// GetPath retrieves a registration by ID.
func (srv *pathService) GetPath(ctx context.Context, id int64) (*entity.PlaylistPath, error) {
	var registration *entity.PlaylistPath

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PathRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPathNotFound) {
				return domainerrors.ErrPathNotFound
			}

			return errors.Wrap(err, "failed to find playlist path")
		}
		registration = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return registration, nil
}

// ListPaths returns every registration in insertion order.
func (srv *pathService) ListPaths(ctx context.Context) ([]*entity.PlaylistPath, error) {
	var registrations []*entity.PlaylistPath

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PathRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list playlist paths")
		}
		registrations = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return registrations, nil
}

// UpdatePath applies a partial update to a registration.
func (srv *pathService) UpdatePath(ctx context.Context, id int64, patch entity.PlaylistPathPatch) (*entity.PlaylistPath, error) {
	srv.logger.Info("Updating playlist path", "id", id)

	var registration *entity.PlaylistPath

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pathRepo := repoFactory.PathRepo()

		found, err := pathRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPathNotFound) {
				return domainerrors.ErrPathNotFound
			}

			return errors.Wrap(err, "failed to find playlist path")
		}

		patch.Apply(found)

		if err := pathRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update playlist path")
		}
		registration = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return registration, nil
}

// PathQRCode renders the M3U subscription URL of the registration as a PNG
// QR code.
func (srv *pathService) PathQRCode(ctx context.Context, id int64) ([]byte, error) {
	registration, err := srv.GetPath(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GeneratePlaylistQR(registration.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

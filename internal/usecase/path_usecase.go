package usecase

import (
	"context"

	"tabiptv/internal/domain/entity"
)

// PathUsecase defines the interface for managing published playlist paths.
type PathUsecase interface {
	CreatePath(ctx context.Context, path string) (*entity.PlaylistPath, error)
	GetPath(ctx context.Context, id int64) (*entity.PlaylistPath, error)
	ListPaths(ctx context.Context) ([]*entity.PlaylistPath, error)
	UpdatePath(ctx context.Context, id int64, patch entity.PlaylistPathPatch) (*entity.PlaylistPath, error)

	// PathQRCode renders the M3U subscription URL of the registration as a
	// PNG QR code.
	PathQRCode(ctx context.Context, id int64) ([]byte, error)
}

package sqlite

import (
	"context"

	"tabiptv/internal/domain/entity"
	domainerrors "tabiptv/internal/domain/errors"
	"tabiptv/internal/domain/repository"
	"tabiptv/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// playlistPathRepository implements the domain.PlaylistPathRepository interface using GORM.
type playlistPathRepository struct {
	db *gorm.DB
}

// NewPlaylistPathRepository is the constructor for playlistPathRepository.
func NewPlaylistPathRepository(db *gorm.DB) repository.PlaylistPathRepository {
	return &playlistPathRepository{db: db}
}

// Create persists a new path registration and writes the generated ID back to the entity.
func (repo *playlistPathRepository) Create(ctx context.Context, path *entity.PlaylistPath) error {
	pathM := fromPlaylistPathDomain(path)

	if err := repo.db.WithContext(ctx).Create(pathM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create playlist path")
	}

	path.ID = pathM.ID

	return nil
}

// FindByID retrieves a registration by ID.
func (repo *playlistPathRepository) FindByID(ctx context.Context, id int64) (*entity.PlaylistPath, error) {
	var pathM model.PlaylistPathModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pathM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPathNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist path by id")
	}

	return toPlaylistPathDomain(&pathM), nil
}

// FindByPath retrieves the first registration whose path matches exactly.
func (repo *playlistPathRepository) FindByPath(ctx context.Context, path string) (*entity.PlaylistPath, error) {
	var pathM model.PlaylistPathModel
	err := repo.db.WithContext(ctx).
		Where("path = ?", path).
		Order("id").
		First(&pathM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPathNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist path")
	}

	return toPlaylistPathDomain(&pathM), nil
}

// List returns every registration in insertion order.
func (repo *playlistPathRepository) List(ctx context.Context) ([]*entity.PlaylistPath, error) {
	var pathMs []*model.PlaylistPathModel
	err := repo.db.WithContext(ctx).
		Order("id").
		Find(&pathMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list playlist paths")
	}

	paths := make([]*entity.PlaylistPath, 0, len(pathMs))
	for _, pathM := range pathMs {
		paths = append(paths, toPlaylistPathDomain(pathM))
	}

	return paths, nil
}

// Update persists all fields of an existing registration.
func (repo *playlistPathRepository) Update(ctx context.Context, path *entity.PlaylistPath) error {
	pathM := fromPlaylistPathDomain(path)

	result := repo.db.WithContext(ctx).
		Model(&model.PlaylistPathModel{}).
		Where("id = ?", pathM.ID).
		Select("*").
		Updates(pathM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update playlist path")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPathNotFound
	}

	return nil
}

// toPlaylistPathDomain converts a GORM PlaylistPathModel to a domain PlaylistPath entity.
func toPlaylistPathDomain(data *model.PlaylistPathModel) *entity.PlaylistPath {
	if data == nil {
		return nil
	}

	return &entity.PlaylistPath{
		ID:   data.ID,
		Path: data.Path,
	}
}

// fromPlaylistPathDomain converts a domain PlaylistPath entity to a GORM PlaylistPathModel.
func fromPlaylistPathDomain(data *entity.PlaylistPath) *model.PlaylistPathModel {
	if data == nil {
		return nil
	}

	return &model.PlaylistPathModel{
		ID:   data.ID,
		Path: data.Path,
	}
}

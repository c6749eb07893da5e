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

// channelRepository implements the domain.ChannelRepository interface using GORM.
type channelRepository struct {
	db *gorm.DB
}

// NewChannelRepository is the constructor for channelRepository.
// It returns the repository as a domain.ChannelRepository interface, adhering to dependency inversion.
func NewChannelRepository(db *gorm.DB) repository.ChannelRepository {
	return &channelRepository{db: db}
}

// Create persists a new channel and writes the generated ID back to the entity.
func (repo *channelRepository) Create(ctx context.Context, channel *entity.Channel) error {
	channelM := fromChannelDomain(channel)

	if err := repo.db.WithContext(ctx).Create(channelM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create channel")
	}

	channel.ID = channelM.ID

	return nil
}

// FindByID retrieves a single channel by ID, deleted or not.
func (repo *channelRepository) FindByID(ctx context.Context, id int64) (*entity.Channel, error) {
	var channelM model.ChannelModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&channelM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChannelNotFound
		}

		return nil, errors.Wrap(err, "failed to find channel by id")
	}

	return toChannelDomain(&channelM), nil
}

// List returns non-deleted channels in insertion order with offset/limit paging.
// limit <= 0 disables the limit.
func (repo *channelRepository) List(ctx context.Context, offset, limit int) ([]*entity.Channel, error) {
	query := repo.db.WithContext(ctx).
		Where("del_tag = ?", false).
		Order("id")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var channelMs []*model.ChannelModel
	if err := query.Find(&channelMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list channels")
	}

	return toChannelDomainSlice(channelMs), nil
}

// ListAll returns every channel row in insertion order, deleted included.
// Playlist rendering reads the catalog through this method.
func (repo *channelRepository) ListAll(ctx context.Context) ([]*entity.Channel, error) {
	var channelMs []*model.ChannelModel
	err := repo.db.WithContext(ctx).
		Order("id").
		Find(&channelMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all channels")
	}

	return toChannelDomainSlice(channelMs), nil
}

// Update persists all fields of an existing channel.
func (repo *channelRepository) Update(ctx context.Context, channel *entity.Channel) error {
	channelM := fromChannelDomain(channel)

	// Select("*") forces zero values (cleared strings, del_tag=false) to be written too.
	result := repo.db.WithContext(ctx).
		Model(&model.ChannelModel{}).
		Where("id = ?", channelM.ID).
		Select("*").
		Updates(channelM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update channel")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChannelNotFound
	}

	return nil
}

// Delete removes the channel row entirely.
func (repo *channelRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ChannelModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete channel")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChannelNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toChannelDomain converts a GORM ChannelModel to a domain Channel entity.
func toChannelDomain(data *model.ChannelModel) *entity.Channel {
	if data == nil {
		return nil
	}

	return &entity.Channel{
		ID:         data.ID,
		GroupTitle: data.GroupTitle,
		TvgID:      data.TvgID,
		TvgLogo:    data.TvgLogo,
		TvgName:    data.TvgName,
		TvgURL:     data.TvgURL,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		Deleted:    data.Deleted,
	}
}

// fromChannelDomain converts a domain Channel entity to a GORM ChannelModel for persistence.
func fromChannelDomain(data *entity.Channel) *model.ChannelModel {
	if data == nil {
		return nil
	}

	return &model.ChannelModel{
		ID:         data.ID,
		GroupTitle: data.GroupTitle,
		TvgID:      data.TvgID,
		TvgLogo:    data.TvgLogo,
		TvgName:    data.TvgName,
		TvgURL:     data.TvgURL,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		Deleted:    data.Deleted,
	}
}

func toChannelDomainSlice(data []*model.ChannelModel) []*entity.Channel {
	channels := make([]*entity.Channel, 0, len(data))
	for _, channelM := range data {
		channels = append(channels, toChannelDomain(channelM))
	}

	return channels
}

package postgres

import (
	"context"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// FindByOwner retrieves all locations of an owner.
func (repo *locationRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations by owner")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// FindByID retrieves a location by its unique ID.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// UpdateDisabled persists the derived disabled flag.
func (repo *locationRepository) UpdateDisabled(ctx context.Context, id uuid.UUID, disabled bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", id).
		Update("disabled", disabled)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update location disabled flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		Title:              data.Title,
		Icon:               data.Icon,
		TemplateInstanceID: data.TemplateInstanceID,
		Disabled:           data.Disabled,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

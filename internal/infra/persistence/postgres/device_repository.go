package postgres

import (
	"context"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindActiveByOwner retrieves the owner's active delivery targets.
func (repo *deviceRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by owner")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// Upsert registers a device, refreshing the token when the per-install id is
// already known for the owner.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "platform", "is_active", "updated_at"}),
		}).
		Create(deviceM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// Deactivate marks a device whose token was rejected so it is no longer a
// delivery target.
func (repo *deviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

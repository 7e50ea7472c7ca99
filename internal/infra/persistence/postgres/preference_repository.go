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

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindByOwner retrieves the owner's stored trigger preferences.
func (repo *preferenceRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.ReminderPreferences, error) {
	var prefsM model.ReminderPreferencesModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&prefsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find reminder preferences")
	}

	return toPreferencesDomain(&prefsM), nil
}

// Save upserts the owner's trigger preferences.
func (repo *preferenceRepository) Save(ctx context.Context, prefs *entity.ReminderPreferences) error {
	prefsM := fromPreferencesDomain(prefs)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			UpdateAll: true,
		}).
		Create(prefsM).Error; err != nil {
		return errors.Wrap(err, "failed to save reminder preferences")
	}

	return nil
}

// --- Mapper Functions ---

// toPreferencesDomain converts a GORM ReminderPreferencesModel to a domain ReminderPreferences entity.
func toPreferencesDomain(data *model.ReminderPreferencesModel) *entity.ReminderPreferences {
	if data == nil {
		return nil
	}

	return &entity.ReminderPreferences{
		OwnerID: data.OwnerID,
		Status: entity.TriggerPreference{
			Enabled: data.StatusEnabled,
			Hour:    data.StatusHour,
			Minute:  data.StatusMinute,
		},
		Activity: entity.TriggerPreference{
			Enabled: data.ActivityEnabled,
			Hour:    data.ActivityHour,
			Minute:  data.ActivityMinute,
		},
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPreferencesDomain converts a domain ReminderPreferences entity to a GORM ReminderPreferencesModel.
func fromPreferencesDomain(data *entity.ReminderPreferences) *model.ReminderPreferencesModel {
	if data == nil {
		return nil
	}

	return &model.ReminderPreferencesModel{
		OwnerID:         data.OwnerID,
		StatusEnabled:   data.Status.Enabled,
		StatusHour:      data.Status.Hour,
		StatusMinute:    data.Status.Minute,
		ActivityEnabled: data.Activity.Enabled,
		ActivityHour:    data.Activity.Hour,
		ActivityMinute:  data.Activity.Minute,
		UpdatedAt:       data.UpdatedAt,
	}
}

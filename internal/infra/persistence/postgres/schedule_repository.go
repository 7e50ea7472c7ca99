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

// scheduleRepository implements the repository.ScheduleRepository interface.
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

// FindRecord retrieves the idempotency record for one trigger and day.
func (repo *scheduleRepository) FindRecord(ctx context.Context, ownerID uuid.UUID, kind entity.TriggerKind, day string) (*entity.ScheduleRecord, error) {
	var recordM model.ScheduleRecordModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND kind = ? AND date = ?", ownerID, string(kind), day).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScheduleRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find schedule record")
	}

	return toScheduleRecordDomain(&recordM), nil
}

// MarkSent upserts the record for the record's (owner, trigger, day) key. The
// composite primary key makes concurrent marks converge on a single row.
func (repo *scheduleRepository) MarkSent(ctx context.Context, record *entity.ScheduleRecord) error {
	recordM := fromScheduleRecordDomain(record)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "kind"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"sent", "sent_at"}),
		}).
		Create(recordM).Error; err != nil {
		return errors.Wrap(err, "failed to mark schedule record sent")
	}

	return nil
}

// --- Mapper Functions ---

// toScheduleRecordDomain converts a GORM ScheduleRecordModel to a domain ScheduleRecord entity.
func toScheduleRecordDomain(data *model.ScheduleRecordModel) *entity.ScheduleRecord {
	if data == nil {
		return nil
	}

	return &entity.ScheduleRecord{
		OwnerID: data.OwnerID,
		Kind:    entity.TriggerKind(data.Kind),
		Date:    data.Date,
		Sent:    data.Sent,
		SentAt:  data.SentAt,
	}
}

// fromScheduleRecordDomain converts a domain ScheduleRecord entity to a GORM ScheduleRecordModel.
func fromScheduleRecordDomain(data *entity.ScheduleRecord) *model.ScheduleRecordModel {
	if data == nil {
		return nil
	}

	return &model.ScheduleRecordModel{
		OwnerID: data.OwnerID,
		Kind:    string(data.Kind),
		Date:    data.Date,
		Sent:    data.Sent,
		SentAt:  data.SentAt,
	}
}

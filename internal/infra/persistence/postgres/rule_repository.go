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

// ruleRepository implements the repository.RuleRepository interface.
type ruleRepository struct {
	db *gorm.DB
}

// NewRuleRepository is the constructor for ruleRepository.
func NewRuleRepository(db *gorm.DB) repository.RuleRepository {
	return &ruleRepository{
		db: db,
	}
}

// FindByOwner retrieves all reminder rules of an owner.
func (repo *ruleRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ReminderRule, error) {
	var ruleModels []*model.ReminderRuleModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reminder rules by owner")
	}

	rules := make([]*entity.ReminderRule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		rules = append(rules, toRuleDomain(ruleM))
	}

	return rules, nil
}

// --- Mapper Functions ---

// toRuleDomain converts a GORM ReminderRuleModel to a domain ReminderRule entity.
func toRuleDomain(data *model.ReminderRuleModel) *entity.ReminderRule {
	if data == nil {
		return nil
	}

	return &entity.ReminderRule{
		ID:                         data.ID,
		OwnerID:                    data.OwnerID,
		Scope:                      entity.RuleScope(data.Scope),
		TargetID:                   data.TargetID,
		NotifyType:                 entity.NotifyType(data.NotifyType),
		DaysBeforeTarget:           data.DaysBeforeTarget,
		IgnoreLocationNotification: data.IgnoreLocationNotification,
		CreatedAt:                  data.CreatedAt,
	}
}

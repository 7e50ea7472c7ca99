package postgres

import (
	"context"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// templateRepository implements the repository.TemplateRepository interface.
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository is the constructor for templateRepository.
func NewTemplateRepository(db *gorm.DB) repository.TemplateRepository {
	return &templateRepository{
		db: db,
	}
}

// FindByOwner retrieves the full template pool of an owner.
func (repo *templateRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.TemplateInstance, error) {
	var instanceModels []*model.TemplateInstanceModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("granted_at ASC").
		Find(&instanceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find template instances by owner")
	}

	instances := make([]*entity.TemplateInstance, 0, len(instanceModels))
	for _, instanceM := range instanceModels {
		instances = append(instances, toTemplateDomain(instanceM))
	}

	return instances, nil
}

// FindByID retrieves a template instance by its unique ID.
func (repo *templateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TemplateInstance, error) {
	var instanceM model.TemplateInstanceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&instanceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find template instance by ID")
	}

	return toTemplateDomain(&instanceM), nil
}

// FindBoundToEntity retrieves the instance currently bound to the entity.
func (repo *templateRepository) FindBoundToEntity(ctx context.Context, entityID uuid.UUID) (*entity.TemplateInstance, error) {
	var instanceM model.TemplateInstanceModel

	if err := repo.db.WithContext(ctx).
		Where("used = ? AND used_in_entity_id = ?", true, entityID).
		First(&instanceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find bound template instance")
	}

	return toTemplateDomain(&instanceM), nil
}

// CreateBatch persists a freshly granted allotment in one statement.
func (repo *templateRepository) CreateBatch(ctx context.Context, instances []*entity.TemplateInstance) error {
	if len(instances) == 0 {
		return nil
	}

	instanceModels := make([]*model.TemplateInstanceModel, 0, len(instances))
	for _, instance := range instances {
		instanceModels = append(instanceModels, fromTemplateDomain(instance))
	}

	if err := repo.db.WithContext(ctx).Create(&instanceModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "template instance already granted")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required template information")
		}

		return errors.Wrap(err, "failed to create template instances")
	}

	return nil
}

// Update persists binding and validity changes of one instance.
func (repo *templateRepository) Update(ctx context.Context, instance *entity.TemplateInstance) error {
	instanceM := fromTemplateDomain(instance)

	result := repo.db.WithContext(ctx).
		Model(&model.TemplateInstanceModel{}).
		Where("id = ?", instance.ID).
		Select("used", "used_in_entity_id", "validity_kind", "validity_expires_at", "updated_at").
		Updates(instanceM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update template instance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTemplateNotFound
	}

	return nil
}

// DeleteByOwnerExcept removes the owner's instances outside the keep list.
func (repo *templateRepository) DeleteByOwnerExcept(ctx context.Context, ownerID uuid.UUID, keepIDs []uuid.UUID) error {
	query := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if len(keepIDs) > 0 {
		query = query.Where("id NOT IN ?", keepIDs)
	}

	if err := query.Delete(&model.TemplateInstanceModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete superseded template instances")
	}

	return nil
}

// ListOwners returns every owner holding at least one template instance. The
// scheduler worker iterates this set.
func (repo *templateRepository) ListOwners(ctx context.Context) ([]uuid.UUID, error) {
	var ownerIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.TemplateInstanceModel{}).
		Distinct("owner_id").
		Pluck("owner_id", &ownerIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list template pool owners")
	}

	return ownerIDs, nil
}

// --- Mapper Functions ---

// toTemplateDomain converts a GORM TemplateInstanceModel to a domain TemplateInstance entity.
func toTemplateDomain(data *model.TemplateInstanceModel) *entity.TemplateInstance {
	if data == nil {
		return nil
	}

	return &entity.TemplateInstance{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		Kind:           entity.TemplateKind(data.Kind),
		BaseSlots:      data.BaseSlots,
		Used:           data.Used,
		UsedInEntityID: data.UsedInEntityID,
		Validity: entity.Validity{
			Kind:      entity.ValidityKind(data.ValidityKind),
			ExpiresAt: data.ValidityExpiresAt,
		},
		GrantedAt: data.GrantedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTemplateDomain converts a domain TemplateInstance entity to a GORM TemplateInstanceModel.
func fromTemplateDomain(data *entity.TemplateInstance) *model.TemplateInstanceModel {
	if data == nil {
		return nil
	}

	return &model.TemplateInstanceModel{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		Kind:              string(data.Kind),
		BaseSlots:         data.BaseSlots,
		Used:              data.Used,
		UsedInEntityID:    data.UsedInEntityID,
		ValidityKind:      string(data.Validity.Kind),
		ValidityExpiresAt: data.Validity.ExpiresAt,
		GrantedAt:         data.GrantedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

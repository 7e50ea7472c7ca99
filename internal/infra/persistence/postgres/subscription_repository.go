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

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindByOwner retrieves the subscription standing of an owner.
func (repo *subscriptionRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by owner")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		OwnerID:      data.OwnerID,
		Valid:        data.Valid,
		Unsubscribed: data.Unsubscribed,
		ExpiresAt:    data.ExpiresAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

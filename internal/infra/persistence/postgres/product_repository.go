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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByOwner retrieves all products of an owner.
func (repo *productRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by owner")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByLocation retrieves all products stored in a location.
func (repo *productRepository) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("created_at ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by location")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		LocationID:       data.LocationID,
		Title:            data.Title,
		ExpiryDate:       data.ExpiryDate,
		EstimatedEndDate: data.EstimatedEndDate,
		IsConsumed:       data.IsConsumed,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

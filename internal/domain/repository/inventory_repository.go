// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pantry/internal/domain/entity"
	"pantry/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for inventory persistence.
var (
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// LocationRepository defines the interface for location-related database operations.
type LocationRepository interface {
	// FindByOwner retrieves all locations of an owner.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Location, error)

	// FindByID retrieves a location by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// UpdateDisabled flips the derived disabled flag. Only the reconciliation
	// job may call this.
	UpdateDisabled(ctx context.Context, id uuid.UUID, disabled bool) error
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// FindByOwner retrieves all products of an owner.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)

	// FindByLocation retrieves the products inside one location.
	FindByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Product, error)
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pantry/internal/domain/entity"
	"pantry/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for template persistence.
var (
	// ErrTemplateNotFound is returned when a template instance is not found.
	ErrTemplateNotFound = errors.New("template instance not found")
)

// TemplateRepository defines the interface for template-pool database operations.
type TemplateRepository interface {
	// FindByOwner retrieves the full template pool of an owner.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.TemplateInstance, error)

	// FindByID retrieves a template instance by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TemplateInstance, error)

	// FindBoundToEntity retrieves the instance bound to the given entity, if any.
	// This is the single lookup resolving the instance->entity relation.
	FindBoundToEntity(ctx context.Context, entityID uuid.UUID) (*entity.TemplateInstance, error)

	// CreateBatch persists a batch of freshly granted instances.
	CreateBatch(ctx context.Context, instances []*entity.TemplateInstance) error

	// Update persists the mutable fields of an instance (used, usedInEntityID, validity).
	Update(ctx context.Context, instance *entity.TemplateInstance) error

	// DeleteByOwnerExcept removes an owner's instances except the ones listed.
	// Used when an identity change replaces the pool while preserving bound instances.
	DeleteByOwnerExcept(ctx context.Context, ownerID uuid.UUID, keepIDs []uuid.UUID) error

	// ListOwners returns the distinct owners currently holding template pools.
	ListOwners(ctx context.Context) ([]uuid.UUID, error)
}

// Package usecase defines the interfaces of the engine's use cases.
package usecase

import (
	"context"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// TemplateUsecase manages the pool of template instances that gate which
// locations and products are active.
type TemplateUsecase interface {
	// Load returns the owner's current pool. When the owner has none, a
	// default allotment is synthesized and persisted first: one location
	// template for a guest identity, three for a member. The rest of the
	// engine may assume this precondition after first run.
	Load(ctx context.Context, owner entity.Owner) ([]*entity.TemplateInstance, error)

	// Bind marks the template as used by the entity. Binding an instance
	// already used by a different entity fails with ErrTemplateAlreadyBound;
	// re-binding the same entity is a no-op.
	Bind(ctx context.Context, templateID, entityID uuid.UUID) (*entity.TemplateInstance, error)

	// Release clears the binding of whichever instance holds the entity.
	// A no-op when none does.
	Release(ctx context.Context, entityID uuid.UUID) error

	// ListAvailable returns the instances that can still be granted: unused
	// and currently active per the validity policy.
	ListAvailable(ctx context.Context, owner entity.Owner) ([]*entity.TemplateInstance, error)

	// ResetForIdentityChange normalizes the pool after login, logout or a
	// guest-to-member upgrade. Instances bound to live entities are
	// preserved; the remaining capacity is replaced by a fresh allotment.
	ResetForIdentityChange(ctx context.Context, owner entity.Owner) ([]*entity.TemplateInstance, error)
}

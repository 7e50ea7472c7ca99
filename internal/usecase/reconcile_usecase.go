package usecase

import (
	"context"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// ReconcileUsecase keeps each location's disabled flag consistent with the
// template pool. It is the single writer of that flag.
type ReconcileUsecase interface {
	// Reconcile walks the owner's locations and sets disabled = "no template
	// instance is bound to the location". Idempotent: a second run with no
	// intervening mutation changes nothing. Returns the reconciled collection.
	Reconcile(ctx context.Context, ownerID uuid.UUID) ([]*entity.Location, error)
}

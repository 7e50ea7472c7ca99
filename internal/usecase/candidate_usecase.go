package usecase

import (
	"context"
	"time"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// CandidateUsecase computes the reminder candidates for one calendar day.
type CandidateUsecase interface {
	// Generate evaluates every reminder rule of the owner against the
	// inventory and returns all qualifying candidates exactly once. Pure
	// with respect to its inputs and `today`; no ordering guarantee.
	Generate(ctx context.Context, ownerID uuid.UUID, today time.Time) ([]*entity.NotificationCandidate, error)
}

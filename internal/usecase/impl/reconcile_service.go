package impl

import (
	"context"
	"log/slog"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reconcileService struct {
	locationRepo repository.LocationRepository
	templateRepo repository.TemplateRepository
	logger       *slog.Logger
}

// ReconcileServiceParams holds dependencies for ReconcileUsecase, injected by Fx.
type ReconcileServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	TemplateRepo repository.TemplateRepository
	Logger       *slog.Logger
}

// NewReconcileService creates a new reconciliation service instance
func NewReconcileService(params ReconcileServiceParams) usecase.ReconcileUsecase {
	return &reconcileService{
		locationRepo: params.LocationRepo,
		templateRepo: params.TemplateRepo,
		logger:       params.Logger,
	}
}

// Reconcile derives each location's disabled flag from the template pool.
// A read failure leaves the collection unchanged for this cycle; the next
// scheduled invocation retries.
func (s *reconcileService) Reconcile(ctx context.Context, ownerID uuid.UUID) ([]*entity.Location, error) {
	locations, err := s.locationRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Warn("reconcile skipped: locations unreadable",
			slog.String("owner_id", ownerID.String()),
			slog.Any("error", err),
		)

		return nil, nil
	}

	instances, err := s.templateRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Warn("reconcile skipped: template pool unreadable",
			slog.String("owner_id", ownerID.String()),
			slog.Any("error", err),
		)

		return locations, nil
	}

	linked := make(map[uuid.UUID]struct{}, len(instances))
	for _, instance := range instances {
		if instance.Used && instance.UsedInEntityID != nil {
			linked[*instance.UsedInEntityID] = struct{}{}
		}
	}

	for _, location := range locations {
		_, isLinked := linked[location.ID]
		disabled := !isLinked
		if location.Disabled == disabled {
			continue
		}

		if err := s.locationRepo.UpdateDisabled(ctx, location.ID, disabled); err != nil {
			return nil, errors.Wrap(err, "failed to persist disabled flag")
		}
		location.Disabled = disabled

		s.logger.Info("location reconciled",
			slog.String("owner_id", ownerID.String()),
			slog.String("location_id", location.ID.String()),
			slog.Bool("disabled", disabled),
		)
	}

	return locations, nil
}

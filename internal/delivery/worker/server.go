// Package worker runs the periodic scheduling sweep.
package worker

import (
	"context"
	"log/slog"
	"time"

	"pantry/config"
	"pantry/internal/delivery"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"go.uber.org/fx"
)

type schedulerWorker struct {
	cfg          *config.Config
	logger       *slog.Logger
	templateRepo repository.TemplateRepository
	reconcileUC  usecase.ReconcileUsecase
	reminderUC   usecase.ReminderUsecase

	stop chan struct{}
}

// ServerParams holds dependencies for the scheduler worker
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	TemplateRepo repository.TemplateRepository
	ReconcileUC  usecase.ReconcileUsecase
	ReminderUC   usecase.ReminderUsecase
}

// NewServer creates the scheduler worker delivery
func NewServer(params ServerParams) (delivery.Delivery, error) {
	worker := &schedulerWorker{
		cfg:          params.Cfg,
		logger:       params.Logger,
		templateRepo: params.TemplateRepo,
		reconcileUC:  params.ReconcileUC,
		reminderUC:   params.ReminderUC,
		stop:         make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(worker.stop)

			return nil
		},
	})

	return worker, nil
}

// Serve sweeps every known owner on a fixed interval: reconcile the derived
// location state first, then evaluate both reminder triggers. The first sweep
// runs immediately so a restart re-registers pending triggers without waiting
// a full interval.
func (w *schedulerWorker) Serve(ctx context.Context) error {
	interval := w.cfg.Reminders.PollInterval
	w.logger.Info("Starting scheduler worker", slog.Duration("pollInterval", interval))

	w.sweep(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stop:
			w.logger.Info("Scheduler worker stopped")

			return nil
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *schedulerWorker) sweep(ctx context.Context) {
	started := time.Now()

	owners, err := w.templateRepo.ListOwners(ctx)
	if err != nil {
		w.logger.Error("scheduler sweep skipped: owners unreadable", slog.Any("error", err))

		return
	}

	var failures int
	for _, ownerID := range owners {
		if _, err := w.reconcileUC.Reconcile(ctx, ownerID); err != nil {
			failures++
			w.logger.Error("reconcile failed",
				slog.String("owner_id", ownerID.String()),
				slog.Any("error", err),
			)
		}

		if err := w.reminderUC.RunDue(ctx, ownerID); err != nil {
			failures++
			w.logger.Error("reminder evaluation failed",
				slog.String("owner_id", ownerID.String()),
				slog.Any("error", err),
			)
		}
	}

	w.logger.Info("scheduler sweep finished",
		slog.Int("owners", len(owners)),
		slog.Int("failures", failures),
		slog.Duration("elapsed", time.Since(started)),
	)
}

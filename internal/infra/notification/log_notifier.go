package notification

import (
	"context"
	"log/slog"
	"time"

	"pantry/internal/domain/service"

	"github.com/google/uuid"
)

// logNotifier writes deliveries to the log instead of pushing. Used when
// Firebase is not configured, typically in local development.
type logNotifier struct {
	registry *triggerRegistry
	logger   *slog.Logger
}

func (n *logNotifier) DisplayNow(_ context.Context, ownerID uuid.UUID, msg *service.PushMessage) (string, error) {
	deliveryID := uuid.NewString()
	n.logger.Info("[LogNotifier] push suppressed, Firebase not configured",
		slog.String("owner_id", ownerID.String()),
		slog.String("delivery_id", deliveryID),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
	)

	return deliveryID, nil
}

func (n *logNotifier) ScheduleAt(_ context.Context, ownerID uuid.UUID, id string, msg *service.PushMessage, at time.Time, repeatDaily bool) (string, error) {
	n.registry.Register(id, at, repeatDaily, func() {
		n.logger.Info("[LogNotifier] scheduled push suppressed, Firebase not configured",
			slog.String("owner_id", ownerID.String()),
			slog.String("trigger_id", id),
			slog.String("title", msg.Title),
			slog.Bool("repeat_daily", repeatDaily),
		)
	})

	return id, nil
}

func (n *logNotifier) Cancel(_ context.Context, id string) error {
	n.registry.Cancel(id)

	return nil
}

package notification

import (
	"context"
	"log/slog"
	"time"

	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"
	"pantry/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const fireTimeout = 30 * time.Second

// fcmNotifier delivers push messages through Firebase Cloud Messaging to all
// of an owner's active devices.
type fcmNotifier struct {
	client     *messaging.Client
	deviceRepo repository.DeviceRepository
	registry   *triggerRegistry
	logger     *slog.Logger
}

// NewFCMNotifier creates a Firebase-backed notifier instance
func NewFCMNotifier(ctx context.Context, credentialsPath string, deviceRepo repository.DeviceRepository, registry *triggerRegistry, logger *slog.Logger) (service.Notifier, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmNotifier{
		client:     client,
		deviceRepo: deviceRepo,
		registry:   registry,
		logger:     logger,
	}, nil
}

// DisplayNow multicasts the message to the owner's active devices. Tokens
// rejected as invalid or unregistered get their devices deactivated.
func (n *fcmNotifier) DisplayNow(ctx context.Context, ownerID uuid.UUID, msg *service.PushMessage) (string, error) {
	devices, err := n.deviceRepo.FindActiveByOwner(ctx, ownerID)
	if err != nil {
		return "", errors.Wrap(err, "failed to load delivery targets")
	}
	if len(devices) == 0 {
		return "", domainerrors.ErrDeliveryFailed.WithDetails("owner has no active devices")
	}

	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]uuid.UUID, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceByToken[device.FCMToken] = device.ID
	}

	response, err := n.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to send multicast notification")
	}

	n.deactivateRejected(ctx, tokens, deviceByToken, response)

	if response.SuccessCount == 0 {
		return "", domainerrors.ErrDeliveryFailed.WithDetails("all delivery targets rejected the message")
	}

	deliveryID := uuid.NewString()
	n.logger.Info("push delivered",
		slog.String("owner_id", ownerID.String()),
		slog.String("delivery_id", deliveryID),
		slog.Int("success", response.SuccessCount),
		slog.Int("failure", response.FailureCount),
	)

	return deliveryID, nil
}

// ScheduleAt registers the message for delivery at the given time. The
// registration lives in this process; a restart drops it, and the scheduler's
// next poll re-registers it.
func (n *fcmNotifier) ScheduleAt(ctx context.Context, ownerID uuid.UUID, id string, msg *service.PushMessage, at time.Time, repeatDaily bool) (string, error) {
	n.registry.Register(id, at, repeatDaily, func() {
		fireCtx, cancel := context.WithTimeout(context.Background(), fireTimeout)
		defer cancel()

		if _, err := n.DisplayNow(fireCtx, ownerID, msg); err != nil {
			n.logger.Error("scheduled push failed",
				slog.String("owner_id", ownerID.String()),
				slog.String("trigger_id", id),
				slog.Any("error", err),
			)
		}
	})

	return id, nil
}

// Cancel drops the pending trigger with the given id.
func (n *fcmNotifier) Cancel(_ context.Context, id string) error {
	n.registry.Cancel(id)

	return nil
}

func (n *fcmNotifier) deactivateRejected(ctx context.Context, tokens []string, deviceByToken map[string]uuid.UUID, response *messaging.BatchResponse) {
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if !messaging.IsInvalidArgument(sendResponse.Error) && !messaging.IsUnregistered(sendResponse.Error) {
			continue
		}

		deviceID := deviceByToken[tokens[idx]]
		if err := n.deviceRepo.Deactivate(ctx, deviceID); err != nil {
			n.logger.Warn("failed to deactivate rejected device",
				slog.String("device_id", deviceID.String()),
				slog.Any("error", err),
			)
		}
	}
}

package usecase

import (
	"context"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo carries the registration payload reported by the app.
type DeviceInfo struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase manages the registry of push delivery targets.
type DeviceUsecase interface {
	// Register upserts a device for the owner, keyed by the per-install
	// device id so a token refresh replaces the old token.
	Register(ctx context.Context, ownerID uuid.UUID, info *DeviceInfo) (*entity.Device, error)

	// ListActive returns the owner's active delivery targets.
	ListActive(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error)

	// Deactivate removes a device from the delivery targets.
	Deactivate(ctx context.Context, deviceID uuid.UUID) error
}

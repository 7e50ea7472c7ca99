package impl

import (
	"context"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	clock      clock
}

// DeviceServiceParams holds dependencies for DeviceUsecase, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device registry service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		clock:      systemClock{},
	}
}

// Register upserts a device keyed by the per-install device id.
func (s *deviceService) Register(ctx context.Context, ownerID uuid.UUID, info *usecase.DeviceInfo) (*entity.Device, error) {
	now := s.clock.Now()
	device := &entity.Device{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		FCMToken:  info.FCMToken,
		DeviceID:  info.DeviceID,
		Platform:  info.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}

// ListActive returns the owner's active delivery targets.
func (s *deviceService) ListActive(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	devices, err := s.deviceRepo.FindActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active devices")
	}

	return devices, nil
}

// Deactivate removes a device from the delivery targets.
func (s *deviceService) Deactivate(ctx context.Context, deviceID uuid.UUID) error {
	if err := s.deviceRepo.Deactivate(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}

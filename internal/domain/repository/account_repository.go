// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pantry/internal/domain/entity"
	"pantry/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrSubscriptionNotFound is returned when an owner has no subscription record.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// SubscriptionRepository reads the owner's account subscription standing.
// The record is written by the external billing collaborator; the engine
// only consumes it through the validity policy.
type SubscriptionRepository interface {
	// FindByOwner retrieves the subscription record of an owner.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Subscription, error)
}

// DeviceRepository defines the interface for device-registry database operations.
type DeviceRepository interface {
	// FindActiveByOwner retrieves the active delivery targets of an owner.
	FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error)

	// Upsert registers a device, updating the FCM token when the per-install
	// device id is already known.
	Upsert(ctx context.Context, device *entity.Device) error

	// Deactivate soft-deletes a device whose token was rejected as invalid.
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pantry/internal/domain/entity"
	"pantry/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for reminder persistence.
var (
	// ErrScheduleRecordNotFound is returned when no schedule record exists for
	// a (owner, trigger, day) key.
	ErrScheduleRecordNotFound = errors.New("schedule record not found")
	// ErrPreferencesNotFound is returned when an owner has no stored reminder
	// preferences.
	ErrPreferencesNotFound = errors.New("reminder preferences not found")
)

// RuleRepository defines the interface for reminder-rule database operations.
type RuleRepository interface {
	// FindByOwner retrieves all reminder rules of an owner.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ReminderRule, error)
}

// ScheduleRepository persists the per-day idempotency markers of the
// reminder scheduler.
type ScheduleRepository interface {
	// FindRecord retrieves the schedule record for one trigger and calendar day.
	FindRecord(ctx context.Context, ownerID uuid.UUID, kind entity.TriggerKind, day string) (*entity.ScheduleRecord, error)

	// MarkSent upserts the record with sent=true. Called only after a
	// successful delivery or registration.
	MarkSent(ctx context.Context, record *entity.ScheduleRecord) error
}

// PreferenceRepository persists per-owner reminder preferences.
type PreferenceRepository interface {
	// FindByOwner retrieves an owner's reminder preferences.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.ReminderPreferences, error)

	// Save upserts an owner's reminder preferences.
	Save(ctx context.Context, prefs *entity.ReminderPreferences) error
}

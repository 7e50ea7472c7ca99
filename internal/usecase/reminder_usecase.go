package usecase

import (
	"context"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// ReminderUsecase drives the two daily triggers with at-most-once-per-day
// delivery per trigger.
type ReminderUsecase interface {
	// RunIfDue checks the trigger's preference and the persisted schedule
	// record for today, and delivers or registers at most one notification.
	// Safe to call any number of times per day from any trigger source.
	RunIfDue(ctx context.Context, ownerID uuid.UUID, kind entity.TriggerKind) error

	// RunDue runs both triggers, attempting each independently and joining
	// any errors.
	RunDue(ctx context.Context, ownerID uuid.UUID) error

	// Preferences returns the owner's trigger preferences, falling back to
	// the configured defaults when none are stored.
	Preferences(ctx context.Context, ownerID uuid.UUID) (*entity.ReminderPreferences, error)

	// UpdatePreferences persists the owner's trigger preferences.
	UpdatePreferences(ctx context.Context, prefs *entity.ReminderPreferences) error
}

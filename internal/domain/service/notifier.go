// Package service defines capability interfaces the engine calls through.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PushMessage is the payload handed to the notification capability. Data
// carries the deep link (e.g. "pantry://product/<id>") the app resolves when
// the user taps the notification.
type PushMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

// Notifier is the local-notification capability. Implementations deliver to
// whatever targets the owner has registered; the engine never learns how.
type Notifier interface {
	// DisplayNow delivers the message immediately and returns a delivery id.
	DisplayNow(ctx context.Context, ownerID uuid.UUID, msg *PushMessage) (string, error)

	// ScheduleAt registers a delivery at the given time under a fixed id.
	// Re-registering the same id replaces the pending trigger, it never
	// duplicates it. With repeatDaily the trigger re-arms every 24h.
	ScheduleAt(ctx context.Context, ownerID uuid.UUID, id string, msg *PushMessage, at time.Time, repeatDaily bool) (string, error)

	// Cancel drops a pending trigger. Unknown ids are a no-op.
	Cancel(ctx context.Context, id string) error
}

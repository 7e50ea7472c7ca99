// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device is a registered delivery target for an owner's reminders.
type Device struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"` // Stable per-install identifier reported by the app.
	Platform  string    `json:"platform"`  // ios / android.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

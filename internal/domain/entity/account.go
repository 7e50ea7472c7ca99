// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdentityKind distinguishes anonymous owners from authenticated ones. The
// entitlement allotment is sized by it.
type IdentityKind string

const (
	IdentityGuest  IdentityKind = "guest"
	IdentityMember IdentityKind = "member"
)

// Owner identifies whose state an operation acts on.
type Owner struct {
	ID       uuid.UUID    `json:"id"`
	Identity IdentityKind `json:"identity"`
}

// Subscription is the owner's account subscription standing as last reported
// by the billing collaborator. The engine only reads it.
type Subscription struct {
	OwnerID      uuid.UUID  `json:"owner_id"`
	Valid        bool       `json:"valid"`         // In good standing right now.
	Unsubscribed bool       `json:"unsubscribed"`  // Explicitly cancelled by the owner.
	ExpiresAt    *time.Time `json:"expires_at"`    // End of the paid period, if bounded.
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TemplateKind distinguishes the two grantable capability units.
type TemplateKind string

const (
	// TemplateKindLocation grants the right to keep one location active.
	TemplateKindLocation TemplateKind = "location"
	// TemplateKindProductSlot grants extra product capacity inside a location.
	TemplateKindProductSlot TemplateKind = "product_slot"
)

// ValidityKind describes how a template instance expires.
type ValidityKind string

const (
	// ValidityNone marks an instance that never expires.
	ValidityNone ValidityKind = "none"
	// ValidityAbsolute marks an instance with a fixed expiry timestamp.
	ValidityAbsolute ValidityKind = "absolute"
	// ValiditySubscription ties the instance to the owner's subscription standing.
	ValiditySubscription ValidityKind = "subscription"
)

// Validity is the expiration descriptor carried by a template instance.
// ExpiresAt is only meaningful for ValidityAbsolute.
type Validity struct {
	Kind      ValidityKind `json:"kind"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

// TemplateInstance is a single grantable unit of capacity. It can be bound to
// at most one entity (location or product) at a time.
type TemplateInstance struct {
	ID             uuid.UUID    `json:"id"`               // The unique identifier of the instance.
	OwnerID        uuid.UUID    `json:"owner_id"`         // The owner the instance was granted to.
	Kind           TemplateKind `json:"kind"`             // Location template or product slot template.
	BaseSlots      int          `json:"base_slots"`       // Product capacity granted when applied to a location; -1 means unlimited.
	Used           bool         `json:"used"`             // Whether the instance is currently bound to an entity.
	UsedInEntityID *uuid.UUID   `json:"used_in_entity_id"` // The location/product the instance is bound to, if any.
	Validity       Validity     `json:"validity"`         // Expiration descriptor, resolved through the validity policy.
	GrantedAt      time.Time    `json:"granted_at"`       // Timestamp of when the instance was granted.
	UpdatedAt      time.Time    `json:"updated_at"`       // Timestamp of the last modification.
}

// BoundTo reports whether the instance is bound to the given entity.
func (t *TemplateInstance) BoundTo(entityID uuid.UUID) bool {
	return t.Used && t.UsedInEntityID != nil && *t.UsedInEntityID == entityID
}

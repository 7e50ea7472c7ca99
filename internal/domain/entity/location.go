// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a container for products (a kitchen, a bathroom cabinet).
//
// Disabled is derived state: it is true exactly when no template instance is
// bound to the location. Only the reconciliation job writes it.
type Location struct {
	ID                 uuid.UUID  `json:"id"`                   // The unique identifier of the location.
	OwnerID            uuid.UUID  `json:"owner_id"`             // The owner of the location.
	Title              string     `json:"title"`                // Display name.
	Icon               string     `json:"icon"`                 // Icon identifier chosen in the app.
	TemplateInstanceID *uuid.UUID `json:"template_instance_id"` // The template instance granting this location's capacity, if any.
	Disabled           bool       `json:"disabled"`             // Derived: true when no template instance backs the location.
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

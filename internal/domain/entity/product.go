// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is an inventory item inside a location.
type Product struct {
	ID               uuid.UUID  `json:"id"`                 // The unique identifier of the product.
	OwnerID          uuid.UUID  `json:"owner_id"`           // The owner of the product.
	LocationID       *uuid.UUID `json:"location_id"`        // The location holding the product, if any.
	Title            string     `json:"title"`              // Display name.
	ExpiryDate       time.Time  `json:"expiry_date"`        // The printed expiry date.
	EstimatedEndDate *time.Time `json:"estimated_end_date"` // Estimated consumption date, if tracked.
	IsConsumed       bool       `json:"is_consumed"`        // Whether the product has been used up.
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	LocationID       *uuid.UUID `gorm:"type:uuid;index"`
	Title            string     `gorm:"type:varchar(255);not null"`
	ExpiryDate       time.Time  `gorm:"not null"`
	EstimatedEndDate *time.Time
	IsConsumed       bool `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

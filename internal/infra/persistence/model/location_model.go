package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
// The disabled column is derived state owned by the reconciliation job.
type LocationModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title              string     `gorm:"type:varchar(255);not null"`
	Icon               string     `gorm:"type:varchar(64)"`
	TemplateInstanceID *uuid.UUID `gorm:"type:uuid;index"`
	Disabled           bool       `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

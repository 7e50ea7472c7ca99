package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
// Rows are written by the billing collaborator; this service only reads them.
type SubscriptionModel struct {
	OwnerID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Valid        bool      `gorm:"not null;default:false"`
	Unsubscribed bool      `gorm:"not null;default:false"`
	ExpiresAt    *time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// DeviceModel is the GORM-specific struct for the 'devices' table, the
// registry of push delivery targets.
type DeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_devices_owner_device,priority:1"`
	FCMToken  string    `gorm:"type:text;not null"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_devices_owner_device,priority:2"`
	Platform  string    `gorm:"type:varchar(16);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

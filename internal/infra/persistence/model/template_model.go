// Package model contains the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// TemplateInstanceModel is the GORM-specific struct for the 'template_instances'
// table. Each row is one grantable capacity unit of an owner's entitlement pool.
type TemplateInstanceModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind              string     `gorm:"type:varchar(32);not null"`
	BaseSlots         int        `gorm:"not null;default:-1"`
	Used              bool       `gorm:"not null;default:false"`
	UsedInEntityID    *uuid.UUID `gorm:"type:uuid;index"`
	ValidityKind      string     `gorm:"type:varchar(32);not null;default:'none'"`
	ValidityExpiresAt *time.Time
	GrantedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (TemplateInstanceModel) TableName() string {
	return "template_instances"
}

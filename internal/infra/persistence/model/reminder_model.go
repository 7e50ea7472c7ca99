package model

import (
	"time"

	"github.com/google/uuid"
)

// ReminderRuleModel is the GORM-specific struct for the 'reminder_rules' table.
type ReminderRuleModel struct {
	ID                         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID                    uuid.UUID `gorm:"type:uuid;not null;index"`
	Scope                      string    `gorm:"type:varchar(32);not null"`
	TargetID                   uuid.UUID `gorm:"type:uuid;not null;index"`
	NotifyType                 string    `gorm:"type:varchar(32);not null"`
	DaysBeforeTarget           int       `gorm:"not null;default:0"`
	IgnoreLocationNotification bool      `gorm:"not null;default:false"`
	CreatedAt                  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReminderRuleModel) TableName() string {
	return "reminder_rules"
}

// ScheduleRecordModel is the GORM-specific struct for the 'schedule_records'
// table. The composite primary key makes (owner, trigger, day) naturally
// unique, which is what enforces at-most-once delivery across processes.
type ScheduleRecordModel struct {
	OwnerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind    string    `gorm:"type:varchar(32);primaryKey"`
	Date    string    `gorm:"type:varchar(10);primaryKey"`
	Sent    bool      `gorm:"not null;default:false"`
	SentAt  *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduleRecordModel) TableName() string {
	return "schedule_records"
}

// ReminderPreferencesModel is the GORM-specific struct for the
// 'reminder_preferences' table, one row per owner.
type ReminderPreferencesModel struct {
	OwnerID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	StatusEnabled   bool      `gorm:"not null;default:true"`
	StatusHour      int       `gorm:"not null;default:9"`
	StatusMinute    int       `gorm:"not null;default:0"`
	ActivityEnabled bool      `gorm:"not null;default:true"`
	ActivityHour    int       `gorm:"not null;default:20"`
	ActivityMinute  int       `gorm:"not null;default:0"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReminderPreferencesModel) TableName() string {
	return "reminder_preferences"
}

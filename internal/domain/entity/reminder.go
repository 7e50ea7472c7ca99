// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TriggerKind names one of the two independent daily triggers.
type TriggerKind string

const (
	// TriggerStatus is the morning "items approaching expiry" reminder.
	TriggerStatus TriggerKind = "status"
	// TriggerActivity is the evening "log your activity" reminder.
	TriggerActivity TriggerKind = "activity"
)

// RuleScope tells whether a reminder rule is bound to a location or to a
// single product.
type RuleScope string

const (
	RuleScopeLocation RuleScope = "location"
	RuleScopeProduct  RuleScope = "product"
)

// NotifyType selects which product date a rule evaluates.
type NotifyType string

const (
	// NotifyExpiry evaluates the product's printed expiry date.
	NotifyExpiry NotifyType = "expiry"
	// NotifyEstimated evaluates the product's estimated consumption date.
	NotifyEstimated NotifyType = "estimated"
)

// ReminderRule configures when products inside a location (or one specific
// product) start producing reminder candidates.
type ReminderRule struct {
	ID               uuid.UUID  `json:"id"`
	OwnerID          uuid.UUID  `json:"owner_id"`
	Scope            RuleScope  `json:"scope"`
	TargetID         uuid.UUID  `json:"target_id"`          // The location or product the rule is bound to.
	NotifyType       NotifyType `json:"notify_type"`
	DaysBeforeTarget int        `json:"days_before_target"` // Candidates fire when 0 <= remaining <= this.
	// IgnoreLocationNotification suppresses location-scoped candidates for
	// the product a product-scoped rule targets.
	IgnoreLocationNotification bool      `json:"ignore_location_notification"`
	CreatedAt                  time.Time `json:"created_at"`
}

// NotificationCandidate is a computed, not-yet-delivered reminder for one
// product approaching its expiry or estimated consumption date. Candidates
// are only valid for the calendar day they were computed on.
type NotificationCandidate struct {
	SourceType    RuleScope  `json:"source_type"` // Whether a location rule or a product rule produced it.
	SourceID      uuid.UUID  `json:"source_id"`   // The rule's bound location/product.
	ProductID     uuid.UUID  `json:"product_id"`
	ProductTitle  string     `json:"product_title"`
	Type          NotifyType `json:"notification_type"`
	RemainingDays int        `json:"remaining_days"` // Calendar days until the target date; 0 on the target day.
	Message       string     `json:"message"`
	ExpireAt      time.Time  `json:"expire_at"` // End of day of the triggering date.
	RuleID        uuid.UUID  `json:"notification_id"` // The originating reminder rule.
}

// ScheduleRecord is the persisted idempotency marker guaranteeing at most one
// delivered notification per trigger per calendar day.
type ScheduleRecord struct {
	OwnerID uuid.UUID   `json:"owner_id"`
	Kind    TriggerKind `json:"trigger_kind"`
	Date    string      `json:"date"` // Calendar day, YYYY-MM-DD.
	Sent    bool        `json:"sent"`
	SentAt  *time.Time  `json:"sent_at,omitempty"`
}

// TriggerPreference is one owner's on/off switch and firing time for a
// daily trigger.
type TriggerPreference struct {
	Enabled bool `json:"enabled"`
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
}

// ReminderPreferences holds both trigger preferences for an owner.
type ReminderPreferences struct {
	OwnerID   uuid.UUID         `json:"owner_id"`
	Status    TriggerPreference `json:"status_reminder"`
	Activity  TriggerPreference `json:"activity_reminder"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Preference returns the preference for the given trigger kind.
func (p *ReminderPreferences) Preference(kind TriggerKind) TriggerPreference {
	if kind == TriggerActivity {
		return p.Activity
	}

	return p.Status
}

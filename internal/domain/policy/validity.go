// Package policy holds the pure decision functions of the reminder engine:
// template validity and calendar-day arithmetic. Nothing here touches
// persistence or the clock.
package policy

import (
	"time"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// IsSubscriptionValid reports whether the owner's subscription is currently
// in good standing. A nil subscription means no active subscription.
func IsSubscriptionValid(sub *entity.Subscription, now time.Time) bool {
	if sub == nil {
		return false
	}
	if sub.Unsubscribed || !sub.Valid {
		return false
	}
	if sub.ExpiresAt != nil && !now.Before(*sub.ExpiresAt) {
		return false
	}

	return true
}

// IsTemplateActive reports whether a template instance is currently usable.
func IsTemplateActive(inst *entity.TemplateInstance, sub *entity.Subscription, now time.Time) bool {
	switch inst.Validity.Kind {
	case entity.ValidityAbsolute:
		if inst.Validity.ExpiresAt == nil {
			return true
		}

		return now.Before(*inst.Validity.ExpiresAt)
	case entity.ValiditySubscription:
		return IsSubscriptionValid(sub, now)
	default:
		// No expiration descriptor: always active.
		return true
	}
}

// IsLocationExpired reports whether a location must be excluded from
// candidate generation because its backing template is no longer active.
//
// A location that references a template id missing from the pool is treated
// as expired, not as unlinked. Fail closed: a dangling reference must never
// keep producing reminders.
func IsLocationExpired(loc *entity.Location, pool map[uuid.UUID]*entity.TemplateInstance, sub *entity.Subscription, now time.Time) bool {
	if loc.TemplateInstanceID == nil {
		return false
	}

	inst, ok := pool[*loc.TemplateInstanceID]
	if !ok {
		return true
	}

	return !IsTemplateActive(inst, sub, now)
}

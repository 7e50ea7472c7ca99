// Package notification contains the push delivery implementations.
package notification

import (
	"sync"
	"time"
)

// triggerRegistry keeps the pending scheduled triggers of this process.
// Registration by id replaces any pending trigger with the same id, which is
// what lets the scheduler re-register daily triggers idempotently.
type triggerRegistry struct {
	mu       sync.Mutex
	triggers map[string]*time.Timer
	closed   bool
}

func newTriggerRegistry() *triggerRegistry {
	return &triggerRegistry{
		triggers: make(map[string]*time.Timer),
	}
}

// Register arms a timer for the trigger, replacing any pending one with the
// same id. When repeatDaily is set the trigger re-arms itself for the same
// wall-clock time on the next calendar day until cancelled.
func (r *triggerRegistry) Register(id string, at time.Time, repeatDaily bool, fire func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	if existing, ok := r.triggers[id]; ok {
		existing.Stop()
	}

	r.triggers[id] = time.AfterFunc(time.Until(at), func() {
		fire()
		if repeatDaily {
			r.Register(id, nextDailyOccurrence(at), true, fire)

			return
		}
		r.remove(id)
	})
}

// nextDailyOccurrence returns the same wall-clock time on the following
// calendar day. AddDate normalizes through time.Date, so the firing hour is
// unchanged across DST transitions even when the day is 23 or 25 hours long.
func nextDailyOccurrence(at time.Time) time.Time {
	return at.AddDate(0, 0, 1)
}

// Cancel stops the pending trigger with the given id, if any.
func (r *triggerRegistry) Cancel(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if timer, ok := r.triggers[id]; ok {
		timer.Stop()
		delete(r.triggers, id)
	}
}

// Close stops every pending trigger and rejects further registrations.
func (r *triggerRegistry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	for id, timer := range r.triggers {
		timer.Stop()
		delete(r.triggers, id)
	}
}

func (r *triggerRegistry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.triggers, id)
}

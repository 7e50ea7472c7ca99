// Package impl contains the use case implementations of the reminder engine.
package impl

import "time"

// clock abstracts time.Now so date-window logic is testable with a fixed day.
type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

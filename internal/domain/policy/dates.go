package policy

import (
	"math"
	"time"
)

// DayKeyLayout is the calendar-day format used by schedule records.
const DayKeyLayout = "2006-01-02"

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// DayKey formats t's calendar day for use as a schedule record key.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// DaysUntil returns the calendar-day distance from today to target: 0 when
// both fall on the same day, negative when target is in the past. Rounding
// absorbs DST days that are not exactly 24 hours long.
func DaysUntil(today, target time.Time) int {
	diff := StartOfDay(target).Sub(StartOfDay(today))

	return int(math.Round(diff.Hours() / 24))
}

// DisplayDays converts a remaining-day count into the value shown to the
// user. Same-day items are phrased as "1 day left" rather than "0 days
// left"; this is deliberate product behavior.
func DisplayDays(remaining int) int {
	if remaining == 0 {
		return 1
	}

	return remaining
}

package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntil(t *testing.T) {
	today := time.Date(2024, 1, 8, 15, 4, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"two days out", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), 2},
		{"same day, different hour", time.Date(2024, 1, 8, 23, 59, 0, 0, time.UTC), 0},
		{"yesterday", time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC), -1},
		{"across month boundary", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(today, tt.target))
		})
	}
}

func TestDisplayDays_SameDayShowsOne(t *testing.T) {
	assert.Equal(t, 1, DisplayDays(0))
	assert.Equal(t, 1, DisplayDays(1))
	assert.Equal(t, 5, DisplayDays(5))
}

func TestEndOfDay(t *testing.T) {
	ts := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	end := EndOfDay(ts)

	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, ts.Day(), end.Day())
	assert.True(t, end.After(ts))
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2024-01-08", DayKey(time.Date(2024, 1, 8, 23, 0, 0, 0, time.UTC)))
}

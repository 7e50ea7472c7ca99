package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextDailyOccurrence_KeepsWallClockAcrossDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Clocks fall back on 2024-11-03; that calendar day is 25 hours long.
	fallBack := nextDailyOccurrence(time.Date(2024, time.November, 2, 9, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2024, time.November, 3, 9, 0, 0, 0, loc), fallBack)
	assert.Equal(t, 9, fallBack.Hour())

	// Clocks spring forward on 2024-03-10; that calendar day is 23 hours long.
	springForward := nextDailyOccurrence(time.Date(2024, time.March, 9, 9, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2024, time.March, 10, 9, 0, 0, 0, loc), springForward)
	assert.Equal(t, 9, springForward.Hour())
}

func TestTriggerRegistry_RegisterReplacesPendingTrigger(t *testing.T) {
	registry := newTriggerRegistry()
	defer registry.Close()

	fired := make(chan string, 2)
	registry.Register("status:owner-1", time.Now().Add(time.Hour), false, func() { fired <- "first" })
	registry.Register("status:owner-1", time.Now().Add(10*time.Millisecond), false, func() { fired <- "second" })

	require.Eventually(t, func() bool { return len(fired) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "second", <-fired)
}

func TestTriggerRegistry_CancelStopsPendingTrigger(t *testing.T) {
	registry := newTriggerRegistry()
	defer registry.Close()

	fired := make(chan struct{}, 1)
	registry.Register("status:owner-1", time.Now().Add(20*time.Millisecond), false, func() { fired <- struct{}{} })
	registry.Cancel("status:owner-1")

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, fired)
}

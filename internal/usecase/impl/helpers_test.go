package impl

import (
	"io"
	"log/slog"
	"time"

	"pantry/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Entitlement = config.EntitlementConfig{
		GuestLocationTemplates:  1,
		MemberLocationTemplates: 3,
		DefaultBaseSlots:        -1,
	}
	cfg.Reminders = config.RemindersConfig{
		Status:         config.TriggerConfig{Enabled: true, Hour: 9, Minute: 0},
		Activity:       config.TriggerConfig{Enabled: true, Hour: 20, Minute: 0},
		PollInterval:   15 * time.Minute,
		DeepLinkScheme: "pantry",
	}

	return cfg
}

// fixedClock pins the engine to one instant so date-window logic is
// deterministic.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

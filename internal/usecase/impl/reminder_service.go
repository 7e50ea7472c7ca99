package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pantry/config"
	"pantry/internal/domain/entity"
	"pantry/internal/domain/policy"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"
	interrors "pantry/internal/errors"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reminderService struct {
	candidateUC  usecase.CandidateUsecase
	scheduleRepo repository.ScheduleRepository
	prefRepo     repository.PreferenceRepository
	notifier     service.Notifier
	config       *config.Config
	logger       *slog.Logger
	clock        clock
	guard        *keyedGuard
}

// ReminderServiceParams holds dependencies for ReminderUsecase, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	CandidateUC  usecase.CandidateUsecase
	ScheduleRepo repository.ScheduleRepository
	PrefRepo     repository.PreferenceRepository
	Notifier     service.Notifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReminderService creates a new reminder scheduler instance
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		candidateUC:  params.CandidateUC,
		scheduleRepo: params.ScheduleRepo,
		prefRepo:     params.PrefRepo,
		notifier:     params.Notifier,
		config:       params.Config,
		logger:       params.Logger,
		clock:        systemClock{},
		guard:        newKeyedGuard(),
	}
}

// RunIfDue delivers or registers at most one notification for the trigger
// today. The persisted schedule record is the idempotency barrier; any
// delivery failure leaves it unmarked so the next invocation retries.
func (s *reminderService) RunIfDue(ctx context.Context, ownerID uuid.UUID, kind entity.TriggerKind) error {
	prefs, err := s.Preferences(ctx, ownerID)
	if err != nil {
		return err
	}

	pref := prefs.Preference(kind)
	if !pref.Enabled {
		return nil
	}

	now := s.clock.Now()
	day := policy.DayKey(now)

	key := fmt.Sprintf("%s:%s:%s", ownerID, kind, day)
	if !s.guard.TryAcquire(key) {
		// A concurrent invocation is already inside the read-check-write
		// sequence for this key.
		return nil
	}
	defer s.guard.Release(key)

	record, err := s.scheduleRepo.FindRecord(ctx, ownerID, kind, day)
	if err != nil && !errors.Is(err, repository.ErrScheduleRecordNotFound) {
		return errors.Wrap(err, "failed to read schedule record")
	}
	if record != nil && record.Sent {
		return nil
	}

	msg, due, err := s.buildMessage(ctx, ownerID, kind, now)
	if err != nil {
		return err
	}
	if !due {
		// No candidates today so far. The day's delivery slot stays open:
		// a candidate appearing later the same day can still fire.
		return nil
	}

	if err := s.deliver(ctx, ownerID, kind, pref, msg, now); err != nil {
		s.logger.Error("reminder delivery failed",
			slog.String("owner_id", ownerID.String()),
			slog.String("trigger_kind", string(kind)),
			slog.String("date", day),
			slog.Any("error", err),
		)

		return err
	}

	sentAt := s.clock.Now()
	if err := s.scheduleRepo.MarkSent(ctx, &entity.ScheduleRecord{
		OwnerID: ownerID,
		Kind:    kind,
		Date:    day,
		Sent:    true,
		SentAt:  &sentAt,
	}); err != nil {
		return errors.Wrap(err, "failed to mark schedule record sent")
	}

	s.logger.Info("reminder delivered",
		slog.String("owner_id", ownerID.String()),
		slog.String("trigger_kind", string(kind)),
		slog.String("date", day),
	)

	return nil
}

// RunDue runs both triggers, attempting each independently.
func (s *reminderService) RunDue(ctx context.Context, ownerID uuid.UUID) error {
	return interrors.Join(
		s.RunIfDue(ctx, ownerID, entity.TriggerStatus),
		s.RunIfDue(ctx, ownerID, entity.TriggerActivity),
	)
}

// Preferences returns stored preferences, falling back to config defaults.
func (s *reminderService) Preferences(ctx context.Context, ownerID uuid.UUID) (*entity.ReminderPreferences, error) {
	prefs, err := s.prefRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return s.defaultPreferences(ownerID), nil
		}

		return nil, errors.Wrap(err, "failed to load reminder preferences")
	}

	return prefs, nil
}

// UpdatePreferences persists the owner's trigger preferences.
func (s *reminderService) UpdatePreferences(ctx context.Context, prefs *entity.ReminderPreferences) error {
	prefs.UpdatedAt = s.clock.Now()
	if err := s.prefRepo.Save(ctx, prefs); err != nil {
		return errors.Wrap(err, "failed to save reminder preferences")
	}

	return nil
}

// buildMessage assembles the trigger's notification. For the status trigger
// the candidates are consolidated into a single message; for the activity
// trigger the message is fixed and always due.
func (s *reminderService) buildMessage(ctx context.Context, ownerID uuid.UUID, kind entity.TriggerKind, now time.Time) (*service.PushMessage, bool, error) {
	if kind == entity.TriggerActivity {
		return &service.PushMessage{
			Title: "Activity log",
			Body:  "Did you log today's activity?",
			Data: map[string]string{
				"trigger_kind": string(kind),
				"deepLink":     fmt.Sprintf("%s://activity", s.config.Reminders.DeepLinkScheme),
			},
		}, true, nil
	}

	candidates, err := s.candidateUC.Generate(ctx, ownerID, now)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to generate candidates")
	}
	if len(candidates) == 0 {
		return nil, false, nil
	}

	return s.consolidate(candidates, kind), true, nil
}

// consolidate collapses all of today's candidates into one message so the
// notification volume stays bounded regardless of inventory size.
func (s *reminderService) consolidate(candidates []*entity.NotificationCandidate, kind entity.TriggerKind) *service.PushMessage {
	scheme := s.config.Reminders.DeepLinkScheme

	if len(candidates) == 1 {
		only := candidates[0]

		return &service.PushMessage{
			Title: "Pantry check",
			Body:  only.Message,
			Data: map[string]string{
				"trigger_kind": string(kind),
				"deepLink":     fmt.Sprintf("%s://product/%s", scheme, only.ProductID),
			},
		}
	}

	return &service.PushMessage{
		Title: "Pantry check",
		Body:  fmt.Sprintf("%d items are approaching their expiry or estimated end dates", len(candidates)),
		Data: map[string]string{
			"trigger_kind": string(kind),
			"deepLink":     fmt.Sprintf("%s://products", scheme),
		},
	}
}

// deliver fires or registers the notification for the configured time. When
// the time has already passed today, the message is displayed immediately and
// a recurring daily trigger is registered for the following days.
func (s *reminderService) deliver(ctx context.Context, ownerID uuid.UUID, kind entity.TriggerKind, pref entity.TriggerPreference, msg *service.PushMessage, now time.Time) error {
	fireAt := time.Date(now.Year(), now.Month(), now.Day(), pref.Hour, pref.Minute, 0, 0, now.Location())
	triggerID := fmt.Sprintf("%s:%s", kind, ownerID)

	if now.Before(fireAt) {
		if _, err := s.notifier.ScheduleAt(ctx, ownerID, triggerID, msg, fireAt, true); err != nil {
			return errors.Wrap(err, "failed to schedule notification")
		}

		return nil
	}

	if _, err := s.notifier.DisplayNow(ctx, ownerID, msg); err != nil {
		return errors.Wrap(err, "failed to display notification")
	}

	// Today's delivery already happened; the recurring trigger takes over
	// from tomorrow. Registration by fixed id replaces any pending trigger.
	// AddDate keeps the configured wall-clock hour across DST transitions.
	if _, err := s.notifier.ScheduleAt(ctx, ownerID, triggerID, msg, fireAt.AddDate(0, 0, 1), true); err != nil {
		return errors.Wrap(err, "failed to register recurring trigger")
	}

	return nil
}

func (s *reminderService) defaultPreferences(ownerID uuid.UUID) *entity.ReminderPreferences {
	statusCfg := s.config.Reminders.Status
	activityCfg := s.config.Reminders.Activity

	return &entity.ReminderPreferences{
		OwnerID:  ownerID,
		Status:   entity.TriggerPreference{Enabled: statusCfg.Enabled, Hour: statusCfg.Hour, Minute: statusCfg.Minute},
		Activity: entity.TriggerPreference{Enabled: activityCfg.Enabled, Hour: activityCfg.Hour, Minute: activityCfg.Minute},
	}
}

package notification

import (
	"context"
	"log/slog"

	"pantry/config"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"

	"go.uber.org/fx"
)

// NotifierParams holds dependencies for Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc         fx.Lifecycle
	Ctx        context.Context
	Config     *config.Config
	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewNotifier creates a Notifier based on configuration
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	registry := newTriggerRegistry()
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			registry.Close()

			return nil
		},
	})

	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using log notifier")

		return &logNotifier{registry: registry, logger: params.Logger}, nil
	}

	params.Logger.Info("Using Firebase Cloud Messaging notifier",
		slog.String("project_id", cfg.ProjectID),
	)

	return NewFCMNotifier(params.Ctx, cfg.CredentialsPath, params.DeviceRepo, registry, params.Logger)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)

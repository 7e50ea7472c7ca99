package main

import (
	"context"
	"log/slog"
	"os"

	"pantry/config"
	"pantry/internal/delivery"
	"pantry/internal/delivery/http"
	"pantry/internal/delivery/http/middleware"
	"pantry/internal/delivery/http/router/handler"
	"pantry/internal/delivery/worker"
	logs "pantry/internal/infra/log"
	"pantry/internal/infra/notification"
	"pantry/internal/infra/persistence/postgres"
	"pantry/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTemplateRepository,
			postgres.NewLocationRepository,
			postgres.NewProductRepository,
			postgres.NewRuleRepository,
			postgres.NewScheduleRepository,
			postgres.NewPreferenceRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		notification.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTemplateService,
			impl.NewReconcileService,
			impl.NewCandidateService,
			impl.NewReminderService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTemplateHandler,
			handler.NewReminderHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

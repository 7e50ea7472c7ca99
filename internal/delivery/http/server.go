// Package http hosts the Echo server exposing the engine's API.
package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"pantry/config"
	"pantry/internal/delivery"
	httpmiddleware "pantry/internal/delivery/http/middleware"
	"pantry/internal/delivery/http/router"
	"pantry/internal/delivery/http/validator"
	sharedmiddleware "pantry/internal/delivery/middleware"
	"pantry/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *httpmiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Config.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Config.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Config.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Config.HTTP.Timeouts.IdleTimeout

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(middleware.Recover())

	// 2. Request ID middleware (must be before loggers to include in logs)
	requestIDMiddleware := sharedmiddleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Request logging
	echoServer.Use(slogecho.New(params.Logger))

	// 4. Detailed debug logging, gated by env.debug
	loggerMiddleware := sharedmiddleware.NewLoggerMiddleware(params.Logger, params.Config)
	echoServer.Use(loggerMiddleware.Handle)

	// 5. CORS middleware
	echoServer.Use(middleware.CORS())

	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

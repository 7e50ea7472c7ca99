// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pantry/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TemplateHandler *handler.TemplateHandler
	ReminderHandler *handler.ReminderHandler
	DeviceHandler   *handler.DeviceHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	templateHandler *handler.TemplateHandler
	reminderHandler *handler.ReminderHandler
	deviceHandler   *handler.DeviceHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		templateHandler: params.TemplateHandler,
		reminderHandler: params.ReminderHandler,
		deviceHandler:   params.DeviceHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Entitlement pool routes
	templateGroup := e.Group("/templates")
	{
		templateGroup.POST("/:id/bind", r.templateHandler.BindTemplate)
		templateGroup.POST("/release", r.templateHandler.ReleaseTemplate)
	}

	// Owner-scoped routes
	ownerGroup := e.Group("/owners/:owner_id")
	{
		ownerGroup.GET("/templates", r.templateHandler.LoadPool)
		ownerGroup.GET("/templates/available", r.templateHandler.ListAvailable)
		ownerGroup.POST("/templates/reset", r.templateHandler.ResetPool)
		ownerGroup.POST("/locations/reconcile", r.templateHandler.ReconcileLocations)

		ownerGroup.GET("/reminders/candidates", r.reminderHandler.ListCandidates)
		ownerGroup.GET("/reminders/preferences", r.reminderHandler.GetPreferences)
		ownerGroup.PUT("/reminders/preferences", r.reminderHandler.UpdatePreferences)
		ownerGroup.POST("/reminders/run", r.reminderHandler.RunDue)
		ownerGroup.POST("/reminders/run/:kind", r.reminderHandler.RunTrigger)

		ownerGroup.POST("/devices", r.deviceHandler.RegisterDevice)
		ownerGroup.GET("/devices", r.deviceHandler.ListDevices)
	}

	// Device routes addressed by device id
	e.DELETE("/devices/:id", r.deviceHandler.DeactivateDevice)
}

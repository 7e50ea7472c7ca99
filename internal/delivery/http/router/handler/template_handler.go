package handler

import (
	"log/slog"
	"net/http"

	"pantry/internal/delivery/http/response"
	"pantry/internal/domain/entity"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TemplateHandlerParams holds dependencies for TemplateHandler, injected by Fx.
type TemplateHandlerParams struct {
	fx.In

	TemplateUC  usecase.TemplateUsecase
	ReconcileUC usecase.ReconcileUsecase
	Logger      *slog.Logger
}

// TemplateHandler holds dependencies for entitlement pool handlers
type TemplateHandler struct {
	templateUC  usecase.TemplateUsecase
	reconcileUC usecase.ReconcileUsecase
	logger      *slog.Logger
}

// NewTemplateHandler is the constructor for TemplateHandler
func NewTemplateHandler(params TemplateHandlerParams) *TemplateHandler {
	return &TemplateHandler{
		templateUC:  params.TemplateUC,
		reconcileUC: params.ReconcileUC,
		logger:      params.Logger,
	}
}

// BindTemplateRequest represents the request body for binding a template
type BindTemplateRequest struct {
	EntityID string `json:"entity_id" validate:"required,uuid"`
}

// ReleaseTemplateRequest represents the request body for releasing a binding
type ReleaseTemplateRequest struct {
	EntityID string `json:"entity_id" validate:"required,uuid"`
}

// LoadPool handles loading (and first-run provisioning of) the template pool
func (h *TemplateHandler) LoadPool(c echo.Context) error {
	ownerID, err := ownerIDParam(c)
	if err != nil {
		return err
	}

	identity, err := identityParam(c)
	if err != nil {
		return err
	}

	pool, err := h.templateUC.Load(c.Request().Context(), entity.Owner{ID: ownerID, Identity: identity})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pool, "Template pool retrieved successfully")
}

// ListAvailable handles listing grantable template instances
func (h *TemplateHandler) ListAvailable(c echo.Context) error {
	ownerID, err := ownerIDParam(c)
	if err != nil {
		return err
	}

	identity, err := identityParam(c)
	if err != nil {
		return err
	}

	available, err := h.templateUC.ListAvailable(c.Request().Context(), entity.Owner{ID: ownerID, Identity: identity})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, available, "Available templates retrieved successfully")
}

// BindTemplate handles binding a template instance to an entity
func (h *TemplateHandler) BindTemplate(c echo.Context) error {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid template ID")
	}

	var req BindTemplateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bind input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entityID, err := uuid.Parse(req.EntityID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid entity ID")
	}

	instance, err := h.templateUC.Bind(c.Request().Context(), templateID, entityID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, instance, "Template bound successfully")
}

// ReleaseTemplate handles releasing whichever instance holds the entity
func (h *TemplateHandler) ReleaseTemplate(c echo.Context) error {
	var req ReleaseTemplateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid release input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entityID, err := uuid.Parse(req.EntityID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid entity ID")
	}

	if err := h.templateUC.Release(c.Request().Context(), entityID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Template released successfully")
}

// ResetPool handles pool normalization after an identity change
func (h *TemplateHandler) ResetPool(c echo.Context) error {
	ownerID, err := ownerIDParam(c)
	if err != nil {
		return err
	}

	identity, err := identityParam(c)
	if err != nil {
		return err
	}

	pool, err := h.templateUC.ResetForIdentityChange(c.Request().Context(), entity.Owner{ID: ownerID, Identity: identity})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pool, "Template pool reset successfully")
}

// ReconcileLocations handles re-deriving the disabled flag of every location
func (h *TemplateHandler) ReconcileLocations(c echo.Context) error {
	ownerID, err := ownerIDParam(c)
	if err != nil {
		return err
	}

	locations, err := h.reconcileUC.Reconcile(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations reconciled successfully")
}

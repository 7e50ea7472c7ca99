package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pantry/internal/delivery/http/response"
	"pantry/internal/domain/entity"
	"pantry/internal/domain/policy"
	"pantry/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	ReminderUC  usecase.ReminderUsecase
	CandidateUC usecase.CandidateUsecase
	ReconcileUC usecase.ReconcileUsecase
	Logger      *slog.Logger
}

// ReminderHandler holds dependencies for reminder-related handlers
type ReminderHandler struct {
	reminderUC  usecase.ReminderUsecase
	candidateUC usecase.CandidateUsecase
	reconcileUC usecase.ReconcileUsecase
	logger      *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		reminderUC:  params.ReminderUC,
		candidateUC: params.CandidateUC,
		reconcileUC: params.ReconcileUC,
		logger:      params.Logger,
	}
}

// TriggerPreferenceRequest is one trigger's preference in the update payload
type TriggerPreferenceRequest struct {
	Enabled bool `json:"enabled"`
	Hour    int  `json:"hour" validate:"min=0,max=23"`
	Minute  int  `json:"minute" validate:"min=0,max=59"`
}

// UpdatePreferencesRequest represents the request body for updating preferences
type UpdatePreferencesRequest struct {
	Status   TriggerPreferenceRequest `json:"status"`
	Activity TriggerPreferenceRequest `json:"activity"`
}

// ListCandidates handles computing today's notification candidates
func (h *ReminderHandler) ListCandidates(c echo.Context) error {
	ownerID, err := ownerIDParam(c)
	if err != nil {
		return err
	}

	today := time.Now()
	if date := c.QueryParam("date"); date != "" {
		parsed, err := time.Parse(policy.DayKeyLayout, date)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Date must be formatted as YYYY-MM-DD")
		}
		today = parsed
	}

	candidates, err := h.candidateUC.Generate(c.Request().Context(), ownerID, today)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, candidates, "Notification candidates computed successfully")
}

// GetPreferences handles retrieving trigger preferences
func (h *ReminderHandler) GetPreferences(c echo.Context) error {
	ownerID, err := ownerIDParam(c)
	if err != nil {
		return err
	}

	prefs, err := h.reminderUC.Preferences(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs, "Reminder preferences retrieved successfully")
}

// UpdatePreferences handles storing trigger preferences
func (h *ReminderHandler) UpdatePreferences(c echo.Context) error {
	ownerID, err := ownerIDParam(c)
	if err != nil {
		return err
	}

	var req UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	prefs := &entity.ReminderPreferences{
		OwnerID:  ownerID,
		Status:   entity.TriggerPreference{Enabled: req.Status.Enabled, Hour: req.Status.Hour, Minute: req.Status.Minute},
		Activity: entity.TriggerPreference{Enabled: req.Activity.Enabled, Hour: req.Activity.Hour, Minute: req.Activity.Minute},
	}

	if err := h.reminderUC.UpdatePreferences(c.Request().Context(), prefs); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs, "Reminder preferences updated successfully")
}

// RunDue reconciles the owner's locations, then runs both daily triggers.
// Same control flow as the worker sweep, exposed for debugging.
func (h *ReminderHandler) RunDue(c echo.Context) error {
	ownerID, err := ownerIDParam(c)
	if err != nil {
		return err
	}

	if _, err := h.reconcileUC.Reconcile(c.Request().Context(), ownerID); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.reminderUC.RunDue(c.Request().Context(), ownerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Reminder triggers evaluated successfully")
}

// RunTrigger handles running a single named trigger for the owner
func (h *ReminderHandler) RunTrigger(c echo.Context) error {
	ownerID, err := ownerIDParam(c)
	if err != nil {
		return err
	}

	kind := entity.TriggerKind(c.Param("kind"))
	if kind != entity.TriggerStatus && kind != entity.TriggerActivity {
		return response.BadRequest(c, "INVALID_TRIGGER", "Trigger must be status or activity")
	}

	if err := h.reminderUC.RunIfDue(c.Request().Context(), ownerID, kind); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Reminder trigger evaluated successfully")
}

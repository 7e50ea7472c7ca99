package handler

import (
	"log/slog"
	"net/http"

	"pantry/internal/delivery/http/response"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	ownerID, err := ownerIDParam(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.Register(c.Request().Context(), ownerID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// ListDevices handles retrieving the owner's active devices
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	ownerID, err := ownerIDParam(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.ListActive(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved successfully")
}

// DeactivateDevice handles deactivating a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.Deactivate(c.Request().Context(), deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device deactivated successfully")
}

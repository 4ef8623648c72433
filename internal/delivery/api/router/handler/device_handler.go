package handler

import (
	"log/slog"

	"callbell/internal/delivery/api/response"
	"callbell/internal/usecase"

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

// RegisterDeviceRequest represents the request body for registering a staff device
type RegisterDeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required,max=128"`
	Name     string `json:"name"`
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"omitempty,max=32"`
}

// RegisterDevice handles device registration. Repeating it is harmless.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid JSON body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	deviceInfo := &usecase.DeviceInfo{
		DeviceID:     req.DeviceID,
		DisplayName:  req.Name,
		PushEndpoint: req.Token,
		Platform:     req.Platform,
	}

	if _, err := h.deviceUC.RegisterDevice(c.Request().Context(), deviceInfo); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

package handler

import (
	"net/http"

	"manna/internal/delivery/api/response"
	"manna/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DeviceHandler manages push tokens of the signed-in user.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(deviceUC usecase.DeviceUsecase) *DeviceHandler {
	return &DeviceHandler{deviceUC: deviceUC}
}

// DeviceRequest is the body of PUT /devices.
type DeviceRequest struct {
	Token string `json:"token" validate:"required,max=4096"`
}

// RegisterDevice stores an FCM token.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req DeviceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.deviceUC.RegisterDevice(c.Request().Context(), session, req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UnregisterDevice forgets an FCM token.
func (h *DeviceHandler) UnregisterDevice(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.UnregisterDevice(c.Request().Context(), session, c.Param("token")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

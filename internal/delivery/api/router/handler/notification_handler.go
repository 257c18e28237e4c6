package handler

import (
	"net/http"

	"manna/internal/delivery/api/response"
	"manna/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler serves reminder preferences.
type NotificationHandler struct {
	settingsUC usecase.NotificationSettingsUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(settingsUC usecase.NotificationSettingsUsecase) *NotificationHandler {
	return &NotificationHandler{settingsUC: settingsUC}
}

// GetSettings returns the stored preferences or the defaults.
func (h *NotificationHandler) GetSettings(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cfg, err := h.settingsUC.GetSettings(c.Request().Context(), session.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNotificationSettingsPayload(cfg))
}

// UpdateSettings overwrites the preferences.
func (h *NotificationHandler) UpdateSettings(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req NotificationSettingsPayload
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cfg, err := h.settingsUC.UpdateSettings(c.Request().Context(), session, req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNotificationSettingsPayload(cfg))
}

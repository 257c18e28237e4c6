package handler

import (
	"net/http"

	"manna/internal/delivery/api/response"
	"manna/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the admin dashboard.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(adminUC usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

// StatsResponse holds the dashboard counters.
type StatsResponse struct {
	Users       int64 `json:"users"`
	Meditations int64 `json:"meditations"`
	Manna       int64 `json:"manna"`
}

// GetStats counts users, meditations and manna entries.
func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.adminUC.GetStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, StatsResponse{
		Users:       stats.Users,
		Meditations: stats.Meditations,
		Manna:       stats.Manna,
	})
}

package handler

import (
	"net/http"

	"manna/internal/delivery/api/response"
	"manna/internal/usecase"

	"github.com/labstack/echo/v4"
)

// JourneyHandler serves practice tracking.
type JourneyHandler struct {
	journeyUC usecase.JourneyUsecase
}

// NewJourneyHandler is the constructor for JourneyHandler
func NewJourneyHandler(journeyUC usecase.JourneyUsecase) *JourneyHandler {
	return &JourneyHandler{journeyUC: journeyUC}
}

// RecordSessionRequest is the body of POST /journey/sessions.
type RecordSessionRequest struct {
	MeditationID string `json:"meditationId" validate:"omitempty,max=128"`
	Minutes      int    `json:"minutes" validate:"min=0,max=1440"`
}

// GetJourney returns the counters and achievements of the session user.
func (h *JourneyHandler) GetJourney(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	overview, err := h.journeyUC.GetJourney(c.Request().Context(), session.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newJourneyResponse(overview))
}

// RecordSession counts a finished meditation.
func (h *JourneyHandler) RecordSession(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RecordSessionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	overview, err := h.journeyUC.RecordSession(c.Request().Context(), session, &usecase.RecordSessionInput{
		MeditationID: req.MeditationID,
		Minutes:      req.Minutes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newJourneyResponse(overview))
}

package handler

import (
	"net/http"

	"manna/internal/delivery/api/response"
	"manna/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MeditationHandler serves the meditation catalog and its admin screens.
type MeditationHandler struct {
	meditationUC usecase.MeditationUsecase
}

// NewMeditationHandler is the constructor for MeditationHandler
func NewMeditationHandler(meditationUC usecase.MeditationUsecase) *MeditationHandler {
	return &MeditationHandler{meditationUC: meditationUC}
}

// MeditationRequest is the body of the admin create and update endpoints.
type MeditationRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Category string `json:"category" validate:"required,category"`
	AudioURL string `json:"audioUrl" validate:"required,url"`
	Text     string `json:"text"`
}

func (r *MeditationRequest) toInput() *usecase.MeditationInput {
	return &usecase.MeditationInput{
		Title:    r.Title,
		Category: r.Category,
		AudioURL: r.AudioURL,
		Text:     r.Text,
	}
}

// ListMeditations lists the catalog, optionally filtered by ?category=.
func (h *MeditationHandler) ListMeditations(c echo.Context) error {
	meditations, err := h.meditationUC.ListMeditations(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMeditationResponses(meditations))
}

// GetMeditation returns one meditation.
func (h *MeditationHandler) GetMeditation(c echo.Context) error {
	meditation, err := h.meditationUC.GetMeditation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMeditationResponse(meditation))
}

// GetShareQR renders the QR code of the meditation's public link as PNG.
func (h *MeditationHandler) GetShareQR(c echo.Context) error {
	code, err := h.meditationUC.ShareMeditation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=meditacao-qr.png")
	c.Response().Header().Set("Link", "<"+code.URL+">; rel=\"canonical\"")

	return c.Blob(http.StatusOK, "image/png", code.PNG)
}

// CreateMeditation adds a meditation to the catalog.
func (h *MeditationHandler) CreateMeditation(c echo.Context) error {
	var req MeditationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	meditation, err := h.meditationUC.CreateMeditation(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newMeditationResponse(meditation))
}

// UpdateMeditation overwrites the editable fields of a meditation.
func (h *MeditationHandler) UpdateMeditation(c echo.Context) error {
	var req MeditationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	meditation, err := h.meditationUC.UpdateMeditation(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMeditationResponse(meditation))
}

// DeleteMeditation removes a meditation.
func (h *MeditationHandler) DeleteMeditation(c echo.Context) error {
	if err := h.meditationUC.DeleteMeditation(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

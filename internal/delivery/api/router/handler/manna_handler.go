package handler

import (
	"net/http"

	"manna/internal/delivery/api/response"
	"manna/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MannaHandler serves the daily devotional and its admin screens.
type MannaHandler struct {
	mannaUC usecase.MannaUsecase
}

// NewMannaHandler is the constructor for MannaHandler
func NewMannaHandler(mannaUC usecase.MannaUsecase) *MannaHandler {
	return &MannaHandler{mannaUC: mannaUC}
}

// MannaRequest is the body of the admin create and update endpoints.
type MannaRequest struct {
	Date               string `json:"date" validate:"required,isodate"`
	ScriptureText      string `json:"scriptureText" validate:"required"`
	ScriptureReference string `json:"scriptureReference" validate:"max=120"`
	Commentary         string `json:"commentary" validate:"required"`
}

func (r *MannaRequest) toInput() *usecase.MannaInput {
	return &usecase.MannaInput{
		Date:               r.Date,
		ScriptureText:      r.ScriptureText,
		ScriptureReference: r.ScriptureReference,
		Commentary:         r.Commentary,
	}
}

// TodayResponse wraps today's entry. Manna is null when nothing was published.
type TodayResponse struct {
	Found bool           `json:"found"`
	Manna *MannaResponse `json:"manna"`
}

// GetToday returns the entry of the current day.
func (h *MannaHandler) GetToday(c echo.Context) error {
	manna, found, err := h.mannaUC.Today(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	res := TodayResponse{Found: found}
	if found {
		m := newMannaResponse(manna)
		res.Manna = &m
	}

	return response.Success(c, http.StatusOK, res)
}

// ListManna lists every entry, most recent date first.
func (h *MannaHandler) ListManna(c echo.Context) error {
	entries, err := h.mannaUC.ListManna(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]MannaResponse, 0, len(entries))
	for _, m := range entries {
		out = append(out, newMannaResponse(m))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetManna returns one entry.
func (h *MannaHandler) GetManna(c echo.Context) error {
	manna, err := h.mannaUC.GetManna(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMannaResponse(manna))
}

// CreateManna publishes a new entry.
func (h *MannaHandler) CreateManna(c echo.Context) error {
	var req MannaRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	manna, err := h.mannaUC.CreateManna(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newMannaResponse(manna))
}

// UpdateManna overwrites an entry.
func (h *MannaHandler) UpdateManna(c echo.Context) error {
	var req MannaRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	manna, err := h.mannaUC.UpdateManna(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMannaResponse(manna))
}

// DeleteManna removes an entry.
func (h *MannaHandler) DeleteManna(c echo.Context) error {
	if err := h.mannaUC.DeleteManna(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"manna/internal/delivery/api/response"
	"manna/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FavoriteHandler serves the favorites of the signed-in user.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(favoriteUC usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: favoriteUC}
}

// FavoriteStatusResponse answers whether one meditation is saved.
type FavoriteStatusResponse struct {
	MeditationID string `json:"meditationId"`
	Favorite     bool   `json:"favorite"`
}

// ListFavorites returns the favorites, most recently saved first.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context(), session.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]FavoriteResponse, 0, len(favorites))
	for _, f := range favorites.NewestFirst() {
		out = append(out, newFavoriteResponse(f))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetFavoriteStatus reports whether the meditation is saved.
func (h *FavoriteHandler) GetFavoriteStatus(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	meditationID := c.Param("meditationId")
	favorite, err := h.favoriteUC.IsFavorite(c.Request().Context(), session.UID, meditationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, FavoriteStatusResponse{
		MeditationID: meditationID,
		Favorite:     favorite,
	})
}

// AddFavorite saves a meditation. Repeating the call is harmless.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favorite, err := h.favoriteUC.AddFavorite(c.Request().Context(), session, c.Param("meditationId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newFavoriteResponse(*favorite))
}

// RemoveFavorite forgets a meditation.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), session.UID, c.Param("meditationId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

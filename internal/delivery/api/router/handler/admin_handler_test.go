package handler

import (
	"net/http"
	"testing"

	domainerrors "manna/internal/domain/errors"
	mockUC "manna/internal/mocks/usecase"
	"manna/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_GetStats(t *testing.T) {
	adminUC := mockUC.NewMockAdminUsecase(t)
	h := NewAdminHandler(adminUC)
	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/stats", requestOpts{})

	adminUC.EXPECT().GetStats(mock.Anything).Return(&usecase.DashboardStats{Users: 12, Meditations: 7, Manna: 30}, nil)

	require.NoError(t, h.GetStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got StatsResponse
	decodeData(t, rec, &got)
	assert.Equal(t, StatsResponse{Users: 12, Meditations: 7, Manna: 30}, got)
}

func TestAdminHandler_GetStatsUnavailable(t *testing.T) {
	adminUC := mockUC.NewMockAdminUsecase(t)
	h := NewAdminHandler(adminUC)
	c, _ := newTestContext(http.MethodGet, "/api/v1/admin/stats", requestOpts{})

	adminUC.EXPECT().GetStats(mock.Anything).Return(nil, domainerrors.ErrServiceUnavailable)

	assert.ErrorIs(t, h.GetStats(c), domainerrors.ErrServiceUnavailable)
}

package handler

import (
	"net/http"
	"testing"

	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"
	mockUC "manna/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMannaHandler_GetToday(t *testing.T) {
	mannaUC := mockUC.NewMockMannaUsecase(t)
	h := NewMannaHandler(mannaUC)
	c, rec := newTestContext(http.MethodGet, "/api/v1/manna/today", requestOpts{})

	mannaUC.EXPECT().Today(mock.Anything).Return(&entity.DailyManna{
		ID:            "d1",
		Date:          "2024-03-01",
		ScriptureText: "O Senhor é o meu pastor; nada me faltará. - Salmos 23:1",
		Commentary:    "Confie.",
	}, true, nil)

	require.NoError(t, h.GetToday(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got TodayResponse
	decodeData(t, rec, &got)
	assert.True(t, got.Found)
	require.NotNil(t, got.Manna)
	assert.Equal(t, "Salmos 23:1", got.Manna.ScriptureReference)
	assert.Equal(t, "O Senhor é o meu pastor; nada me faltará.", got.Manna.ScriptureText)
}

func TestMannaHandler_GetTodayEmpty(t *testing.T) {
	mannaUC := mockUC.NewMockMannaUsecase(t)
	h := NewMannaHandler(mannaUC)
	c, rec := newTestContext(http.MethodGet, "/api/v1/manna/today", requestOpts{})

	mannaUC.EXPECT().Today(mock.Anything).Return(nil, false, nil)

	require.NoError(t, h.GetToday(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"found":false,"manna":null}`, string(decodeEnvelope(t, rec).Data))
}

func TestMannaHandler_CreateMannaDateConflict(t *testing.T) {
	mannaUC := mockUC.NewMockMannaUsecase(t)
	h := NewMannaHandler(mannaUC)
	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/manna", requestOpts{
		body: `{"date":"2024-03-01","scriptureText":"Texto","commentary":"Comentário"}`,
	})

	mannaUC.EXPECT().CreateManna(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrMannaDateConflict.WithDetails("2024-03-01"))

	require.NoError(t, h.CreateManna(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "MANNA_DATE_CONFLICT", env.Error.Code)
	assert.Equal(t, "2024-03-01", env.Error.Details)
}

func TestMannaHandler_CreateMannaRejectsBadDate(t *testing.T) {
	h := NewMannaHandler(mockUC.NewMockMannaUsecase(t))
	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/manna", requestOpts{
		body: `{"date":"2024-02-30","scriptureText":"Texto","commentary":"Comentário"}`,
	})

	require.NoError(t, h.CreateManna(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "date")
}

func TestMannaHandler_ListManna(t *testing.T) {
	mannaUC := mockUC.NewMockMannaUsecase(t)
	h := NewMannaHandler(mannaUC)
	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/manna", requestOpts{})

	mannaUC.EXPECT().ListManna(mock.Anything).Return([]*entity.DailyManna{
		{ID: "d2", Date: "2024-03-02"},
		{ID: "d1", Date: "2024-03-01"},
	}, nil)

	require.NoError(t, h.ListManna(c))

	var got []MannaResponse
	decodeData(t, rec, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "d2", got[0].ID)
}

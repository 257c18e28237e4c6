package impl

import (
	"context"
	"testing"
	"time"

	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"
	"manna/internal/domain/repository"
	"manna/internal/domain/service"
	mockRepo "manna/internal/mocks/repository"
	mockSvc "manna/internal/mocks/service"
	"manna/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mannaServiceFixtures struct {
	service   *mannaService
	mannaRepo *mockRepo.MockMannaRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestMannaService(t *testing.T, now time.Time) mannaServiceFixtures {
	mannaRepo := mockRepo.NewMockMannaRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	srv := NewMannaService(MannaServiceParams{
		MannaRepo: mannaRepo,
		Publisher: publisher,
		Location:  loc,
		Logger:    discardLogger(),
	}).(*mannaService)
	srv.now = fixedClock(now)

	return mannaServiceFixtures{service: srv, mannaRepo: mannaRepo, publisher: publisher}
}

func TestMannaService_Today_UsesConfiguredTimezone(t *testing.T) {
	// 02:00 UTC on the 15th is still the 14th in São Paulo
	fx := createTestMannaService(t, time.Date(2024, 8, 15, 2, 0, 0, 0, time.UTC))
	ctx := context.Background()
	entry := &entity.DailyManna{ID: "d1", Date: "2024-08-14"}

	fx.mannaRepo.EXPECT().FindByDate(ctx, "2024-08-14").Return(entry, nil)

	got, found, err := fx.service.Today(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entry, got)
}

func TestMannaService_Today_NothingPublished(t *testing.T) {
	fx := createTestMannaService(t, time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	fx.mannaRepo.EXPECT().FindByDate(ctx, "2024-08-15").Return(nil, repository.ErrMannaNotFound)

	got, found, err := fx.service.Today(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestMannaService_Today_StoreUnavailable(t *testing.T) {
	fx := createTestMannaService(t, time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	fx.mannaRepo.EXPECT().FindByDate(ctx, "2024-08-15").Return(nil, repository.ErrStoreUnavailable)

	_, _, err := fx.service.Today(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}

func TestMannaService_CreateManna_SplitsReference(t *testing.T) {
	fx := createTestMannaService(t, time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	fx.mannaRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(m *entity.DailyManna) bool {
			return m.ScriptureText == "O Senhor é o meu pastor; nada me faltará." &&
				m.ScriptureReference == "Salmos 23:1"
		})).
		RunAndReturn(func(_ context.Context, m *entity.DailyManna) error {
			m.ID = "d1"

			return nil
		})
	fx.publisher.EXPECT().
		PublishContentEvent(ctx, mock.MatchedBy(func(e *service.ContentEvent) bool {
			return e.Kind == service.ContentKindManna && e.Date == "2024-08-20" && e.ContentID == "d1"
		})).
		Return(nil)

	got, err := fx.service.CreateManna(ctx, &usecase.MannaInput{
		Date:          "2024-08-20",
		ScriptureText: "O Senhor é o meu pastor; nada me faltará. - Salmos 23:1",
		Commentary:    "Confie.",
	})
	require.NoError(t, err)
	assert.Equal(t, "d1", got.ID)
}

func TestMannaService_CreateManna_DateConflict(t *testing.T) {
	fx := createTestMannaService(t, time.Now())
	ctx := context.Background()

	fx.mannaRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DailyManna")).Return(repository.ErrMannaDateTaken)

	_, err := fx.service.CreateManna(ctx, &usecase.MannaInput{
		Date:               "2024-08-20",
		ScriptureText:      "Texto",
		ScriptureReference: "João 3:16",
		Commentary:         "Comentário",
	})
	assert.ErrorIs(t, err, domainerrors.ErrMannaDateConflict)
}

func TestMannaService_CreateManna_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.MannaInput
	}{
		{name: "missing date", input: usecase.MannaInput{ScriptureText: "t", Commentary: "c"}},
		{name: "bad date", input: usecase.MannaInput{Date: "2024-02-30", ScriptureText: "t", Commentary: "c"}},
		{name: "wrong format", input: usecase.MannaInput{Date: "20/08/2024", ScriptureText: "t", Commentary: "c"}},
		{name: "missing text", input: usecase.MannaInput{Date: "2024-08-20", Commentary: "c"}},
		{name: "missing commentary", input: usecase.MannaInput{Date: "2024-08-20", ScriptureText: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMannaService(t, time.Now())

			_, err := fx.service.CreateManna(context.Background(), &tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestMannaService_UpdateManna(t *testing.T) {
	fx := createTestMannaService(t, time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()
	created := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	input := &usecase.MannaInput{Date: "2024-08-21", ScriptureText: "t", ScriptureReference: "Rm 8:28", Commentary: "c"}

	fx.mannaRepo.EXPECT().FindByID(ctx, "d1").Return(&entity.DailyManna{ID: "d1", CreatedAt: created}, nil)
	fx.mannaRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(m *entity.DailyManna) bool {
			return m.ID == "d1" && m.CreatedAt.Equal(created) && m.Date == "2024-08-21"
		})).
		Return(repository.ErrMannaDateTaken)

	_, err := fx.service.UpdateManna(ctx, "d1", input)
	assert.ErrorIs(t, err, domainerrors.ErrMannaDateConflict)
}

func TestMannaService_GetAndDelete_NotFound(t *testing.T) {
	fx := createTestMannaService(t, time.Now())
	ctx := context.Background()

	fx.mannaRepo.EXPECT().FindByID(ctx, "x").Return(nil, repository.ErrMannaNotFound)
	fx.mannaRepo.EXPECT().Delete(ctx, "x").Return(repository.ErrMannaNotFound)

	_, err := fx.service.GetManna(ctx, "x")
	assert.ErrorIs(t, err, domainerrors.ErrMannaNotFound)
	assert.ErrorIs(t, fx.service.DeleteManna(ctx, "x"), domainerrors.ErrMannaNotFound)
}

package impl

import (
	"context"
	"testing"
	"time"

	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"
	"manna/internal/domain/repository"
	mockRepo "manna/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service        *favoriteService
	favoriteRepo   *mockRepo.MockFavoriteRepository
	meditationRepo *mockRepo.MockMeditationRepository
	now            time.Time
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	meditationRepo := mockRepo.NewMockMeditationRepository(t)
	now := time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)

	srv := NewFavoriteService(favoriteRepo, meditationRepo, discardLogger()).(*favoriteService)
	srv.now = fixedClock(now)

	return favoriteServiceFixtures{
		service:        srv,
		favoriteRepo:   favoriteRepo,
		meditationRepo: meditationRepo,
		now:            now,
	}
}

func TestFavoriteService_IsFavorite(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	fx.favoriteRepo.EXPECT().List(ctx, "uid-1").
		Return(entity.Favorites{{MeditationID: "m1"}, {MeditationID: "m2"}}, nil).Twice()

	ok, err := fx.service.IsFavorite(ctx, "uid-1", "m2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fx.service.IsFavorite(ctx, "uid-1", "m3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavoriteService_IsFavorite_MissingUser(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	fx.favoriteRepo.EXPECT().List(ctx, "ghost").Return(nil, nil)

	ok, err := fx.service.IsFavorite(ctx, "ghost", "m1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavoriteService_AddFavorite_Denormalises(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	session := testSession(entity.RoleUser)
	meditation := &entity.Meditation{ID: "m1", Title: "Respiração", Category: entity.CategoryPeace}

	fx.meditationRepo.EXPECT().FindByID(ctx, "m1").Return(meditation, nil)
	fx.favoriteRepo.EXPECT().
		Add(ctx,
			mock.MatchedBy(func(u *entity.User) bool { return u.ID == session.UID && u.Email == session.Email }),
			entity.Favorite{MeditationID: "m1", Title: "Respiração", Category: entity.CategoryPeace, SavedAt: fx.now},
		).
		RunAndReturn(func(_ context.Context, _ *entity.User, fav entity.Favorite) (entity.Favorite, bool, error) {
			return fav, true, nil
		})

	fav, err := fx.service.AddFavorite(ctx, session, "m1")
	require.NoError(t, err)
	assert.Equal(t, "Respiração", fav.Title)
	assert.Equal(t, fx.now, fav.SavedAt)
}

func TestFavoriteService_AddFavorite_DuplicateReturnsStoredEntry(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	savedAt := fx.now.Add(-72 * time.Hour)
	stored := entity.Favorite{MeditationID: "m1", Title: "Respiração", Category: entity.CategoryPeace, SavedAt: savedAt}

	fx.meditationRepo.EXPECT().FindByID(ctx, "m1").Return(&entity.Meditation{ID: "m1", Title: "Respiração", Category: entity.CategoryPeace}, nil)
	fx.favoriteRepo.EXPECT().Add(ctx, mock.Anything, mock.Anything).Return(stored, false, nil)

	fav, err := fx.service.AddFavorite(ctx, testSession(entity.RoleUser), "m1")
	require.NoError(t, err)
	assert.Equal(t, savedAt, fav.SavedAt)
}

func TestFavoriteService_AddFavorite_UnknownMeditation(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	fx.meditationRepo.EXPECT().FindByID(ctx, "nope").Return(nil, repository.ErrMeditationNotFound)

	_, err := fx.service.AddFavorite(ctx, testSession(entity.RoleUser), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrMeditationNotFound)
}

func TestFavoriteService_RemoveFavorite(t *testing.T) {
	t.Run("absent entry succeeds", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		ctx := context.Background()

		fx.favoriteRepo.EXPECT().Remove(ctx, "uid-1", "m9").Return(false, nil)

		require.NoError(t, fx.service.RemoveFavorite(ctx, "uid-1", "m9"))
	})

	t.Run("missing user fails", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		ctx := context.Background()

		fx.favoriteRepo.EXPECT().Remove(ctx, "ghost", "m1").Return(false, repository.ErrUserNotFound)

		err := fx.service.RemoveFavorite(ctx, "ghost", "m1")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestFavoriteService_ListFavorites_KeepsStoredOrder(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	stored := entity.Favorites{{MeditationID: "b"}, {MeditationID: "a"}}

	fx.favoriteRepo.EXPECT().List(ctx, "uid-1").Return(stored, nil)

	got, err := fx.service.ListFavorites(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestFavoriteService_ListFavorites_StoreUnavailable(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	fx.favoriteRepo.EXPECT().List(ctx, "uid-1").Return(nil, repository.ErrStoreUnavailable)

	_, err := fx.service.ListFavorites(ctx, "uid-1")
	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}

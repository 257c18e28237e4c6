package impl

import (
	"context"
	"testing"

	domainerrors "manna/internal/domain/errors"
	"manna/internal/domain/repository"
	"manna/internal/errors"
	mockRepo "manna/internal/mocks/repository"
	"manna/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_GetStats(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	meditationRepo := mockRepo.NewMockMeditationRepository(t)
	mannaRepo := mockRepo.NewMockMannaRepository(t)
	srv := NewAdminService(userRepo, meditationRepo, mannaRepo)
	ctx := context.Background()

	userRepo.EXPECT().Count(ctx).Return(42, nil)
	meditationRepo.EXPECT().Count(ctx).Return(18, nil)
	mannaRepo.EXPECT().Count(ctx).Return(365, nil)

	stats, err := srv.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.DashboardStats{Users: 42, Meditations: 18, Manna: 365}, stats)
}

func TestAdminService_GetStats_Errors(t *testing.T) {
	t.Run("store unavailable", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		srv := NewAdminService(userRepo, mockRepo.NewMockMeditationRepository(t), mockRepo.NewMockMannaRepository(t))
		ctx := context.Background()

		userRepo.EXPECT().Count(ctx).Return(0, repository.ErrStoreUnavailable)

		_, err := srv.GetStats(ctx)
		assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
	})

	t.Run("query failure", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		meditationRepo := mockRepo.NewMockMeditationRepository(t)
		srv := NewAdminService(userRepo, meditationRepo, mockRepo.NewMockMannaRepository(t))
		ctx := context.Background()

		userRepo.EXPECT().Count(ctx).Return(1, nil)
		meditationRepo.EXPECT().Count(ctx).Return(0, errors.New("aggregation failed"))

		_, err := srv.GetStats(ctx)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	})
}

package impl

import (
	"context"
	"testing"
	"time"

	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"
	"manna/internal/domain/repository"
	"manna/internal/domain/service"
	"manna/internal/errors"
	mockRepo "manna/internal/mocks/repository"
	mockSvc "manna/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service  *profileService
	identity *mockSvc.MockIdentityProvider
	userRepo *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	identity := mockSvc.NewMockIdentityProvider(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	srv := NewProfileService(identity, userRepo, discardLogger()).(*profileService)
	srv.now = fixedClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	return profileServiceFixtures{service: srv, identity: identity, userRepo: userRepo}
}

func TestProfileService_GetProfile_CreatesOnFirstAccess(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession(entity.RoleUser)

	fx.userRepo.EXPECT().EnsureExists(ctx, mock.AnythingOfType("*entity.User")).Return(true, nil)

	user, err := fx.service.GetProfile(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, session.UID, user.ID)
	assert.Equal(t, "Maria", user.DisplayName)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestProfileService_GetProfile_Existing(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession(entity.RoleAdmin)
	stored := &entity.User{ID: session.UID, DisplayName: "Maria S.", Role: entity.RoleAdmin}

	fx.userRepo.EXPECT().EnsureExists(ctx, mock.AnythingOfType("*entity.User")).Return(false, nil)
	fx.userRepo.EXPECT().FindByID(ctx, session.UID).Return(stored, nil)

	user, err := fx.service.GetProfile(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestProfileService_GetProfile_StoreUnavailable(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().EnsureExists(ctx, mock.AnythingOfType("*entity.User")).Return(false, repository.ErrStoreUnavailable)

	_, err := fx.service.GetProfile(ctx, testSession(entity.RoleUser))
	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}

func TestProfileService_UpdateDisplayName(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession(entity.RoleUser)

	fx.identity.EXPECT().UpdateDisplayName(ctx, session.UID, "Maria Silva").Return(nil)
	fx.userRepo.EXPECT().
		UpdateDisplayName(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == session.UID && u.DisplayName == "Maria Silva"
		}), "Maria Silva").
		Return(nil)
	fx.userRepo.EXPECT().EnsureExists(ctx, mock.AnythingOfType("*entity.User")).Return(false, nil)
	fx.userRepo.EXPECT().FindByID(ctx, session.UID).
		Return(&entity.User{ID: session.UID, DisplayName: "Maria Silva"}, nil)

	user, err := fx.service.UpdateDisplayName(ctx, session, "  Maria Silva ")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", user.DisplayName)
}

func TestProfileService_UpdateDisplayName_Errors(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		fx := createTestProfileService(t)

		_, err := fx.service.UpdateDisplayName(context.Background(), testSession(entity.RoleUser), "  ")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("identity provider failure", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()

		fx.identity.EXPECT().UpdateDisplayName(ctx, "uid-1", "Ana").Return(errors.New("boom"))

		_, err := fx.service.UpdateDisplayName(ctx, testSession(entity.RoleUser), "Ana")
		assert.ErrorIs(t, err, domainerrors.ErrProfileUpdateFailed)
	})

	t.Run("identity provider not configured", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()

		fx.identity.EXPECT().UpdateDisplayName(ctx, "uid-1", "Ana").Return(service.ErrIdentityUnavailable)

		_, err := fx.service.UpdateDisplayName(ctx, testSession(entity.RoleUser), "Ana")
		assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
	})
}

package impl

import (
	"context"
	"testing"

	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"
	"manna/internal/domain/repository"
	"manna/internal/domain/service"
	"manna/internal/errors"
	mockRepo "manna/internal/mocks/repository"
	mockSvc "manna/internal/mocks/service"
	"manna/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service  usecase.SessionUsecase
	identity *mockSvc.MockIdentityProvider
	userRepo *mockRepo.MockUserRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	identity := mockSvc.NewMockIdentityProvider(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return sessionServiceFixtures{
		service:  NewSessionService(identity, userRepo, discardLogger()),
		identity: identity,
		userRepo: userRepo,
	}
}

func TestSessionService_Resolve_Admin(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.identity.EXPECT().VerifyIDToken(ctx, "token").
		Return(&entity.Identity{UID: "uid-1", Email: "ana@example.com"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").
		Return(&entity.User{ID: "uid-1", DisplayName: "Ana", Role: entity.RoleAdmin}, nil)

	session, err := fx.service.Resolve(ctx, "token")
	require.NoError(t, err)
	assert.True(t, session.IsAdmin())
	assert.Equal(t, "Ana", session.DisplayName)
	assert.Equal(t, "ana@example.com", session.Email)
}

func TestSessionService_Resolve_MissingUserIsRegularUser(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.identity.EXPECT().VerifyIDToken(ctx, "token").Return(&entity.Identity{UID: "uid-1"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(nil, repository.ErrUserNotFound)

	session, err := fx.service.Resolve(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, session.Role)
}

func TestSessionService_Resolve_StoreFailureFailsClosed(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.identity.EXPECT().VerifyIDToken(ctx, "token").Return(&entity.Identity{UID: "uid-1"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(nil, errors.New("deadline exceeded"))

	session, err := fx.service.Resolve(ctx, "token")
	require.NoError(t, err)
	assert.False(t, session.IsAdmin())
}

func TestSessionService_Resolve_UnknownRoleIsRegularUser(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.identity.EXPECT().VerifyIDToken(ctx, "token").Return(&entity.Identity{UID: "uid-1"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(&entity.User{ID: "uid-1", Role: "superuser"}, nil)

	session, err := fx.service.Resolve(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, session.Role)
}

func TestSessionService_Resolve_Errors(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		verify   error
		expected error
	}{
		{name: "empty token", token: "", expected: domainerrors.ErrUnauthorized},
		{name: "rejected token", token: "bad", verify: service.ErrInvalidToken, expected: domainerrors.ErrUnauthorized},
		{name: "provider not configured", token: "tok", verify: service.ErrIdentityUnavailable, expected: domainerrors.ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			ctx := context.Background()
			if tt.token != "" {
				fx.identity.EXPECT().VerifyIDToken(ctx, tt.token).Return(nil, tt.verify)
			}

			session, err := fx.service.Resolve(ctx, tt.token)
			require.Error(t, err)
			assert.Nil(t, session)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

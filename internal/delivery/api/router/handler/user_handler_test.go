package handler

import (
	"net/http"
	"testing"
	"time"

	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"
	mockUC "manna/internal/mocks/usecase"
	"manna/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerFixtures struct {
	userUC    *mockUC.MockUserUsecase
	profileUC *mockUC.MockProfileUsecase
}

func createTestUserHandler(t *testing.T) (*UserHandler, *userHandlerFixtures) {
	fx := &userHandlerFixtures{
		userUC:    mockUC.NewMockUserUsecase(t),
		profileUC: mockUC.NewMockProfileUsecase(t),
	}

	return NewUserHandler(UserHandlerParams{
		UserUC:    fx.userUC,
		ProfileUC: fx.profileUC,
	}), fx
}

func TestUserHandler_Register(t *testing.T) {
	h, fx := createTestUserHandler(t)
	c, rec := newTestContext(http.MethodPost, "/auth/register", requestOpts{
		body: `{"email":"maria@example.com","password":"segredo","displayName":"Maria"}`,
	})

	fx.userUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
		Email:       "maria@example.com",
		Password:    "segredo",
		DisplayName: "Maria",
	}).Return(&entity.User{
		ID:          "uid-1",
		Email:       "maria@example.com",
		DisplayName: "Maria",
		Role:        entity.RoleUser,
		CreatedAt:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got UserResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "uid-1", got.ID)
	assert.Equal(t, "user", got.Role)
}

func TestUserHandler_RegisterRejectsInvalidEmail(t *testing.T) {
	h, _ := createTestUserHandler(t)
	c, rec := newTestContext(http.MethodPost, "/auth/register", requestOpts{
		body: `{"email":"not-an-email","password":"segredo","displayName":"Maria"}`,
	})

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "email")
}

func TestUserHandler_RegisterConflict(t *testing.T) {
	h, fx := createTestUserHandler(t)
	c, rec := newTestContext(http.MethodPost, "/auth/register", requestOpts{
		body: `{"email":"maria@example.com","password":"segredo","displayName":"Maria"}`,
	})

	fx.userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailAlreadyInUse)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EMAIL_ALREADY_IN_USE", decodeEnvelope(t, rec).Error.Code)
}

func TestUserHandler_GetProfileRequiresSession(t *testing.T) {
	h, _ := createTestUserHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/v1/me", requestOpts{})

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	h, fx := createTestUserHandler(t)
	session := userSession()
	c, rec := newTestContext(http.MethodPut, "/api/v1/me", requestOpts{
		body:    `{"displayName":"Maria Clara"}`,
		session: session,
	})

	fx.profileUC.EXPECT().UpdateDisplayName(mock.Anything, session, "Maria Clara").
		Return(&entity.User{ID: "uid-1", DisplayName: "Maria Clara", Role: entity.RoleUser}, nil)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got UserResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "Maria Clara", got.DisplayName)
}

func TestUserHandler_UpdateProfileServerErrorGoesToCentralHandler(t *testing.T) {
	h, fx := createTestUserHandler(t)
	session := userSession()
	c, _ := newTestContext(http.MethodPut, "/api/v1/me", requestOpts{
		body:    `{"displayName":"Maria Clara"}`,
		session: session,
	})

	fx.profileUC.EXPECT().UpdateDisplayName(mock.Anything, session, "Maria Clara").
		Return(nil, domainerrors.ErrProfileUpdateFailed)

	err := h.UpdateProfile(c)
	assert.ErrorIs(t, err, domainerrors.ErrProfileUpdateFailed)
}

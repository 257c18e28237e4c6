package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "manna/internal/delivery/context"
	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"
	mockUC "manna/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthenticate_MissingOrMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "Bearer ", "Basic abc", "token"} {
		t.Run(header, func(t *testing.T) {
			m := NewAuthMiddleware(mockUC.NewMockSessionUsecase(t), discardLogger())
			c, _ := newTestContext(header)

			err := m.Authenticate(okHandler)(c)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}

func TestAuthenticate_StoresSession(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	m := NewAuthMiddleware(sessionUC, discardLogger())
	c, rec := newTestContext("Bearer id-token")
	session := &entity.Session{Identity: entity.Identity{UID: "uid-1"}, Role: entity.RoleUser}

	sessionUC.EXPECT().Resolve(mock.Anything, "id-token").Return(session, nil)

	var seen *entity.Session
	err := m.Authenticate(func(c echo.Context) error {
		seen, _ = deliverycontext.GetSession(c)
		fromCtx, ok := deliverycontext.SessionFromContext(c.Request().Context())
		assert.True(t, ok)
		assert.Equal(t, session, fromCtx)

		return okHandler(c)
	})(c)
	require.NoError(t, err)
	assert.Equal(t, session, seen)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthenticate_ResolveFailure(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	m := NewAuthMiddleware(sessionUC, discardLogger())
	c, _ := newTestContext("bearer expired")

	sessionUC.EXPECT().Resolve(mock.Anything, "expired").Return(nil, domainerrors.ErrUnauthorized)

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockUC.NewMockSessionUsecase(t), discardLogger())

	t.Run("no session", func(t *testing.T) {
		c, _ := newTestContext("")
		assert.ErrorIs(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c), domainerrors.ErrUnauthorized)
	})

	t.Run("regular user", func(t *testing.T) {
		c, _ := newTestContext("")
		deliverycontext.SetSession(c, &entity.Session{Role: entity.RoleUser})
		assert.ErrorIs(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c), domainerrors.ErrForbidden)
	})

	t.Run("admin", func(t *testing.T) {
		c, rec := newTestContext("")
		deliverycontext.SetSession(c, &entity.Session{Role: entity.RoleAdmin})
		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"manna/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsableRequestID(t *testing.T) {
	assert.True(t, UsableRequestID("req-1"))
	assert.True(t, UsableRequestID(strings.Repeat("a", MaxRequestIDLength)))
	assert.False(t, UsableRequestID(""))
	assert.False(t, UsableRequestID(strings.Repeat("a", MaxRequestIDLength+1)))
	assert.True(t, UsableRequestID(NewRequestID()))
}

func TestWithRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, logger := WithRequestScope(context.Background(), base, "run-7")
	logger.Info("pass finished")

	assert.Equal(t, "run-7", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))
	assert.Contains(t, buf.String(), `"request_id":"run-7"`)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestSession(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetSession(c)
	assert.False(t, ok)

	session := &entity.Session{Identity: entity.Identity{UID: "uid-1"}, Role: entity.RoleAdmin}
	SetSession(c, session)

	got, ok := GetSession(c)
	require.True(t, ok)
	assert.Equal(t, "uid-1", got.UID)

	fromCtx, ok := SessionFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Same(t, session, fromCtx)
}

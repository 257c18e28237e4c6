package context

import (
	"context"

	"manna/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetSession stores the session on echo.Context and on the request context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
	c.SetRequest(c.Request().WithContext(WithSession(c.Request().Context(), session)))
}

// GetSession returns the session set by the auth middleware.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(*entity.Session)

	return session, ok && session != nil
}

// WithSession returns a new context carrying the session.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}

// SessionFromContext extracts the session from standard context.Context.
func SessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(KeySession).(*entity.Session)

	return session, ok && session != nil
}

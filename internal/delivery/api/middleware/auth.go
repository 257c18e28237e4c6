package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "manna/internal/delivery/context"
	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"
	"manna/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies Firebase ID tokens and guards role restricted routes.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC, logger: logger}
}

// Authenticate resolves the session of the bearer token and stores it on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthorized
		}

		session, err := m.sessionUC.Resolve(c.Request().Context(), strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			return err
		}

		deliverycontext.SetSession(c, session)
		if logger := deliverycontext.GetLogger(c.Request().Context()); logger != nil {
			ctx := deliverycontext.WithLogger(c.Request().Context(), logger.With(slog.String("uid", session.UID)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the session role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := deliverycontext.GetSession(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if session.Role != required {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Role check failed",
					slog.String("required", string(required)),
					slog.String("role", string(session.Role)),
				)

				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

package middleware

import (
	"log/slog"
	"net/http"

	"manna/internal/delivery/api/response"
	deliverycontext "manna/internal/delivery/context"
	domainerrors "manna/internal/domain/errors"
	"manna/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// echo's own errors rendered with a business code and a Portuguese message
var httpErrorCodes = map[int]struct{ code, message string }{
	http.StatusNotFound:              {"NOT_FOUND", "Recurso não encontrado."},
	http.StatusMethodNotAllowed:      {"METHOD_NOT_ALLOWED", "Método não permitido."},
	http.StatusRequestEntityTooLarge: {"PAYLOAD_TOO_LARGE", "A requisição excede o tamanho permitido."},
	http.StatusUnsupportedMediaType:  {"UNSUPPORTED_MEDIA_TYPE", "Formato de conteúdo não suportado."},
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
			)
		}
		_ = response.AppError(c, appErr)

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		known, ok := httpErrorCodes[httpErr.Code]
		if !ok {
			known.code = "HTTP_ERROR"
			known.message = http.StatusText(httpErr.Code)
		}

		_ = response.Error(c, httpErr.Code, known.code, known.message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

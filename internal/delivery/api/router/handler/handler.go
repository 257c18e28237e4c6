// Package handler contains the echo handlers of the public and admin API.
package handler

import (
	"net/http"

	"manna/internal/delivery/api/response"
	"manna/internal/delivery/api/validator"
	deliverycontext "manna/internal/delivery/context"
	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the body into req and runs struct validation,
// writing the 400 response itself when either step fails.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Não foi possível ler os dados enviados.")
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			validator.FieldErrors(err),
		)
	}

	return true, nil
}

func currentSession(c echo.Context) (*entity.Session, error) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return session, nil
}

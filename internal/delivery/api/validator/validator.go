// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"
	"time"

	"manna/internal/domain/entity"
	"manna/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the custom tags used by request DTOs:
// "hhmm" (reminder time), "category" (slug or label) and "isodate" (YYYY-MM-DD).
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(entity.ReminderTimeLayout, fl.Field().String())

		return err == nil
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseCategory(fl.Field().String())

		return ok
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return entity.IsValidDate(fl.Field().String())
	})

	return &CustomValidator{validate: v}
}

// Validate validates a request struct.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors maps each failing field to the rule it broke. It returns nil
// when err holds no validation errors.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if ns := fe.Namespace(); strings.Contains(ns, ".") {
			field = ns[strings.Index(ns, ".")+1:]
		}
		out[field] = fe.Tag()
	}

	return out
}

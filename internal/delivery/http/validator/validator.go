// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// usernamePattern is the charset rule for public handles. Length bounds are
// enforced separately by min/max tags on the same field.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type requestValidator struct {
	validate *validator.Validate
}

// New creates the validator echo uses for c.Validate calls.
func New() echo.Validator {
	validate := validator.New()
	_ = validate.RegisterValidation("username_charset", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return &requestValidator{validate: validate}
}

// Validate implements echo.Validator. Failures surface as 400s.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

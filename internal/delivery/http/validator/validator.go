// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps go-playground/validator for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a request validator instance
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

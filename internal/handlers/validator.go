package handlers

import (
	"net/http"

	"budget-coach/internal/errors"
	"budget-coach/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator on top of the shared validator
// with the domain tags registered.
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// bindAndValidate decodes the request body into req and validates it. On
// failure the error response has already been written and the returned
// bool is false.
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, errors.NewValidationError(validation.FieldErrors(err), getTraceID(c)))
	}
	return true, nil
}

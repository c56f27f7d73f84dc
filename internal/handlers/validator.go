package handlers

import (
	"truestate/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator over the listing validator rules
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.GetValidate().Struct(i); err != nil {
		return err
	}
	return nil
}

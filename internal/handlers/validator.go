package handlers

import (
	"nfc-transfer-service/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator on top of the shared rule set
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates the echo validator with the custom rules registered
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

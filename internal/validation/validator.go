package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"nfc-transfer-service/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors turns a validation error into a field -> message map. Errors
// that are not validator.ValidationErrors come back under the "request" key.
func FieldErrors(err error) map[string]string {
	result := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		result["request"] = err.Error()
		return result
	}

	for _, fe := range validationErrors {
		result[fe.Field()] = messageFor(fe)
	}
	return result
}

// Details is FieldErrors flattened into sorted "field: message" lines
func Details(err error) []string {
	fields := FieldErrors(err)
	details := make([]string, 0, len(fields))
	for field, message := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(details)
	return details
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "base64":
		return "must be standard base64"
	case "account_number":
		return "must be 1-34 uppercase letters or digits"
	case "decimal_amount":
		return "must be a positive amount with at most two decimals"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// validateAccountNumber accepts the same account numbers the Account model does
func validateAccountNumber(fl validator.FieldLevel) bool {
	return models.ValidateAccountNumber(fl.Field().String())
}

// validateDecimalAmount accepts a string amount that is positive with at most
// two decimal places
func validateDecimalAmount(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}

	return amount.IsPositive() && amount.Equal(amount.Round(2))
}

// Package utils provides utility functions for the MFO Shield Risk Service.
package utils

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/turtacn/mfo-shield/pkg/constants"
	"github.com/turtacn/mfo-shield/pkg/errors"
)

// defaultValidator holds the singleton instance of the validator.
var defaultValidator *validator.Validate

func init() {
	defaultValidator = validator.New()
	defaultValidator.RegisterValidation("uuid4", validateUUID)
}

// ValidateStruct validates a struct using the default validator.
// It returns a formatted ShieldError if validation fails.
func ValidateStruct(s interface{}) errors.ShieldError {
	if err := defaultValidator.Struct(s); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.WrapError(err, constants.ErrCodeInvalidRequest, "Validation failed")
		}

		e := errors.NewError(
			constants.ErrCodeInvalidRequest,
			http.StatusBadRequest,
			"One or more fields failed validation.",
			"Validation failed",
		)
		for _, fe := range validationErrors {
			e.WithMetadata(toSnakeCase(fe.Field()), formatValidationError(fe))
		}
		return e
	}
	return nil
}

// validateUUID is a custom validation function for UUIDs.
func validateUUID(fl validator.FieldLevel) bool {
	field := fl.Field().String()
	if _, err := uuid.Parse(field); err != nil {
		return false
	}
	return true
}

// formatValidationError creates a user-friendly error message for a validation error.
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' tag", fe.Tag())
	}
}

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)

// toSnakeCase converts a string from CamelCase to snake_case.
// This is used to format field names in the validation error response.
func toSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")
	return strings.ToLower(snake)
}

// ValidateNotEmpty checks if a string is not empty.
func ValidateNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

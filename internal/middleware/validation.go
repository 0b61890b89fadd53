package middleware

import (
	"github.com/go-playground/validator/v10"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	return validation.FormatFieldError(e)
}

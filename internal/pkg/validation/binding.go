package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Custom binding tags.
const (
	TagStudentID = "studentid"
	TagHTTPURL   = "httpurl"
)

// jsonFieldName reports fields by their JSON name so errors match the request body.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// Register installs the custom tags on validate.
func Register(validate *validator.Validate) error {
	validate.RegisterTagNameFunc(jsonFieldName)

	if err := validate.RegisterValidation(TagStudentID, func(fl validator.FieldLevel) bool {
		return CompiledPatterns.StudentID.MatchString(strings.TrimSpace(fl.Field().String()))
	}); err != nil {
		return fmt.Errorf("failed to register %s validator: %w", TagStudentID, err)
	}

	if err := validate.RegisterValidation(TagHTTPURL, func(fl validator.FieldLevel) bool {
		return IsHTTPURL(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register %s validator: %w", TagHTTPURL, err)
	}

	return nil
}

// RegisterGinValidators installs the custom tags on gin's default binding engine.
func RegisterGinValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

// FormatFieldError renders a validator field error as a user-facing message.
func FormatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case TagStudentID:
		return e.Field() + " must match the NNNN-NNNN format"
	case TagHTTPURL:
		return e.Field() + " must be an http or https URL"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

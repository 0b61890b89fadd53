package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Rate limiting
	ErrTooManyRequests = errors.New("too many requests")
)

// College errors
var (
	ErrCollegeNotFound      = NewCustomError(ErrResourceNotFound, "college not found")
	ErrCollegeAlreadyExists = NewCustomError(ErrConflict, "college code already exists")
)

// Program errors
var (
	ErrProgramNotFound      = NewCustomError(ErrResourceNotFound, "program not found")
	ErrProgramAlreadyExists = NewCustomError(ErrConflict, "program code already exists")
)

// Student errors
var (
	ErrStudentNotFound        = NewCustomError(ErrResourceNotFound, "student not found")
	ErrStudentIDAlreadyExists = NewCustomError(ErrConflict, "student ID already exists")
)

// User errors
var (
	ErrUserNotFound          = NewCustomError(ErrResourceNotFound, "user not found")
	ErrEmailAlreadyExists    = NewCustomError(ErrConflict, "email already exists")
	ErrUsernameAlreadyExists = NewCustomError(ErrConflict, "username already exists")
)

// NewValidationError creates a validation error bound to a request field.
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewBadRequestError reports a malformed request that is not tied to a body field, such
// as an unparsable path parameter.
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// UserMessage returns the message of the outermost CustomError in err's chain, or ""
// when err carries none. Wrapping context added with fmt.Errorf is not included.
func UserMessage(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	return ""
}

// FieldOf returns the request field a validation error is bound to, if any.
func FieldOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Field
	}
	return ""
}

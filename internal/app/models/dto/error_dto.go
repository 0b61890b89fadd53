package dto

// ErrorCode is the stable, machine-readable identifier of an API error.
type ErrorCode string

// Authentication
const (
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_005"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_006"
	ErrorCodeTokenNotFound      ErrorCode = "AUTH_007"
)

// Registry records
const (
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"
)

// Request problems
const (
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeBadRequest       ErrorCode = "VAL_002"
	ErrorCodeTooManyRequests  ErrorCode = "RATE_001"
)

// ErrorCodeInternalServer hides every unexpected failure, storage errors included.
const ErrorCodeInternalServer ErrorCode = "SRV_001"

// ErrorSeverity tells clients how loudly to surface an error.
type ErrorSeverity string

const (
	ErrorSeverityWarning  ErrorSeverity = "WARNING"
	ErrorSeverityError    ErrorSeverity = "ERROR"
	ErrorSeverityCritical ErrorSeverity = "CRITICAL"
)

// ErrorDetail is the "error" member of a failed APIResponse. Field names the request
// field at fault, using its JSON name.
type ErrorDetail struct {
	Code     ErrorCode     `json:"code" example:"VAL_001"`
	Message  string        `json:"message" example:"student ID must match the format NNNN-NNNN"`
	Field    string        `json:"field,omitempty" example:"studentID"`
	Severity ErrorSeverity `json:"severity" example:"ERROR"`
	Details  interface{}   `json:"details,omitempty"`
}

// NewErrorDetail creates an ERROR severity detail.
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:     code,
		Message:  message,
		Severity: ErrorSeverityError,
	}
}

func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

func (e *ErrorDetail) WithSeverity(severity ErrorSeverity) *ErrorDetail {
	e.Severity = severity
	return e
}

func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// FieldErrors collects one validation failure per request field, in binding order.
type FieldErrors struct {
	Errors []ErrorDetail `json:"errors"`
}

func (v *FieldErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ErrorDetail{
		Code:     ErrorCodeValidationFailed,
		Message:  message,
		Field:    field,
		Severity: ErrorSeverityError,
	})
}

func (v *FieldErrors) Empty() bool {
	return len(v.Errors) == 0
}

// Detail summarizes the collection: the first failure leads, all of them go in Details.
func (v *FieldErrors) Detail() *ErrorDetail {
	if v.Empty() {
		return nil
	}
	first := v.Errors[0]
	return NewErrorDetail(ErrorCodeValidationFailed, first.Message).
		WithField(first.Field).
		WithDetails(v.Errors)
}

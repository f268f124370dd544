package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrCourseNotFound   = errors.New("course not found")

	// Validation errors
	ErrValidationFailed  = errors.New("validation failed")
	ErrMissingParameter  = errors.New("missing required parameter")
	ErrTooManyCompareIDs = errors.New("too many course ids for comparison")
	ErrBadRequest        = errors.New("bad request")

	// Store errors
	ErrStoreFailure = errors.New("store operation failed")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
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

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation failure naming the offending field.
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewMissingParameterError creates an error for a required parameter that was
// absent or empty.
func NewMissingParameterError(param string) error {
	return &CustomError{
		Err:     ErrMissingParameter,
		Message: "missing required parameter: " + param,
		Field:   param,
	}
}

// NewTooManyIDsError creates the comparison-path specialization of a
// validation failure.
func NewTooManyIDsError(message string) error {
	return &CustomError{
		Err:     ErrTooManyCompareIDs,
		Message: message,
		Field:   "ids",
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewStoreError wraps a row-store failure. The original error stays attached
// for logging; client responses only ever see the opaque sentinel.
func NewStoreError(err error, message string) error {
	return &CustomError{
		Err:     errors.Join(ErrStoreFailure, err),
		Message: message,
	}
}

// FieldOf returns the offending field recorded on err, if any.
func FieldOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Field
	}
	return ""
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

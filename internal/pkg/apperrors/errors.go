package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// ErrStoreUnavailable marks a transport or connection failure against a
	// store whose data is required for the current operation. It is always
	// propagated, never swallowed.
	ErrStoreUnavailable = errors.New("store unavailable")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found or expired")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Entity errors. Each unwraps to ErrResourceNotFound so callers can match
// either the specific entity or the generic class.
var (
	ErrStudentNotFound   error = &CustomError{Err: ErrResourceNotFound, Message: "student not found"}
	ErrCourseNotFound    error = &CustomError{Err: ErrResourceNotFound, Message: "course not found"}
	ErrProjectNotFound   error = &CustomError{Err: ErrResourceNotFound, Message: "project not found"}
	ErrProfessorNotFound error = &CustomError{Err: ErrResourceNotFound, Message: "professor not found"}
)

// ErrCacheMiss is the normal outcome of looking up an absent cache key.
var ErrCacheMiss = errors.New("cache miss")

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewStoreUnavailableError wraps a transport failure against a named store
func NewStoreUnavailableError(store string, cause error) error {
	return &CustomError{
		Err:     ErrStoreUnavailable,
		Message: store + " store unavailable",
		Cause:   cause,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Cause   error
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
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

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

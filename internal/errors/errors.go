package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeRemote          = "REMOTE_ERROR"
	ErrCodeNoActiveSession = "NO_ACTIVE_SESSION"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// AppError represents an application error with an HTTP status and error code.
type AppError struct {
	Code    string // Error code (e.g., "VALIDATION_ERROR", "REMOTE_ERROR")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError reports a local pre-network validation failure.
// Validation errors are never sent to the backend.
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewRemoteError wraps a failed backend call (network failure or decode error).
func NewRemoteError(op string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeRemote,
		Message: fmt.Sprintf("backend call %s failed", op),
		Status:  502,
		Err:     err,
	}
}

// NewRemoteStatusError reports a non-2xx backend response.
func NewRemoteStatusError(op string, status int, body string) *AppError {
	return &AppError{
		Code:    ErrCodeRemote,
		Message: fmt.Sprintf("backend call %s returned status %d: %s", op, status, body),
		Status:  502,
	}
}

// NewNoActiveSessionError reports an operation that requires a session that
// does not exist. UI gating should prevent this; it fails loudly if reached.
func NewNoActiveSessionError(op string) *AppError {
	return &AppError{
		Code:    ErrCodeNoActiveSession,
		Message: fmt.Sprintf("%s requires an active session", op),
		Status:  409,
	}
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id any) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal error",
		Status:  500,
		Err:     err,
	}
}

func hasCode(err error, code string) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsValidation reports whether err is a VALIDATION_ERROR.
func IsValidation(err error) bool { return hasCode(err, ErrCodeValidation) }

// IsRemote reports whether err is a REMOTE_ERROR.
func IsRemote(err error) bool { return hasCode(err, ErrCodeRemote) }

// IsNoActiveSession reports whether err is a NO_ACTIVE_SESSION error.
func IsNoActiveSession(err error) bool { return hasCode(err, ErrCodeNoActiveSession) }

// Package apperrors provides the unified application error type. Handlers and
// services return *AppError values; the HTTP layer maps them to a status code
// and a `{"error": "..."}` JSON body in one place.
package apperrors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message, returned to clients verbatim.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, if any. Never serialized.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// --- Common constructors ---

// Validation creates a 400 error for malformed or missing request fields.
func Validation(message string) *AppError {
	return New(ErrCodeValidation, message, http.StatusBadRequest)
}

// Validationf creates a 400 validation error with a formatted message.
func Validationf(format string, args ...any) *AppError {
	return Validation(fmt.Sprintf(format, args...))
}

// DuplicateUser creates a 400 error for an already-taken username.
func DuplicateUser() *AppError {
	return New(ErrCodeDuplicateUser, "Username already exists", http.StatusBadRequest)
}

// MethodUnavailable creates a 400 error for an operation that the active
// authentication method does not support.
func MethodUnavailable(operation, method string) *AppError {
	return New(ErrCodeMethodUnavailable,
		fmt.Sprintf("%s not available with %s authentication", operation, method),
		http.StatusBadRequest)
}

// InvalidCredentials creates a 401 error for a failed login.
func InvalidCredentials() *AppError {
	return New(ErrCodeInvalidCredentials, "Invalid username or password", http.StatusUnauthorized)
}

// Unauthorized creates a 401 error with the given client-facing message.
func Unauthorized(message string) *AppError {
	return New(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

// TokenExpired creates a 401 error for an expired access token.
func TokenExpired() *AppError {
	return New(ErrCodeTokenExpired, "Token has expired", http.StatusUnauthorized)
}

// InvalidToken creates a 401 error for a malformed or tampered token.
func InvalidToken(detail string) *AppError {
	msg := "Invalid JWT token"
	if detail != "" {
		msg = fmt.Sprintf("Invalid JWT token: %s", detail)
	}
	return New(ErrCodeInvalidToken, msg, http.StatusUnauthorized)
}

// InvalidRefreshToken creates a 401 error for an unknown refresh token.
func InvalidRefreshToken() *AppError {
	return New(ErrCodeInvalidRefreshToken, "Invalid refresh token", http.StatusUnauthorized)
}

// NotFound creates a 404 error for a missing resource.
func NotFound(message string) *AppError {
	return New(ErrCodeNotFound, message, http.StatusNotFound)
}

// Configuration creates a 400 error for invalid client-supplied runtime
// configuration.
func Configuration(message string) *AppError {
	return New(ErrCodeConfiguration, message, http.StatusBadRequest)
}

// ServerMisconfigured creates a 500 error for an unknown configured auth
// method observed at verification time. Distinct from client credential
// failures, which are 401s.
func ServerMisconfigured() *AppError {
	return New(ErrCodeConfiguration, "Invalid authentication method", http.StatusInternalServerError)
}

// Internal creates a 500 error wrapping an unexpected failure.
func Internal(cause error) *AppError {
	return New(ErrCodeInternal, "Internal server error", http.StatusInternalServerError).WithCause(cause)
}

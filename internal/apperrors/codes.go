package apperrors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Validation errors (400)
const (
	// ErrCodeValidation indicates malformed or missing request fields.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	// ErrCodeDuplicateUser indicates a signup with a username that is taken.
	ErrCodeDuplicateUser ErrorCode = "DUPLICATE_USER"
	// ErrCodeMethodUnavailable indicates the operation is not valid for the
	// currently active authentication method.
	ErrCodeMethodUnavailable ErrorCode = "AUTH_METHOD_UNAVAILABLE"
)

// Authentication errors (401)
const (
	// ErrCodeInvalidCredentials indicates a failed username/password check.
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	// ErrCodeUnauthorized indicates a missing or rejected credential.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeTokenExpired indicates an access token past its expiry.
	ErrCodeTokenExpired ErrorCode = "TOKEN_EXPIRED"
	// ErrCodeInvalidToken indicates a malformed or tampered token.
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	// ErrCodeInvalidRefreshToken indicates an unregistered or already
	// consumed refresh token.
	ErrCodeInvalidRefreshToken ErrorCode = "INVALID_REFRESH_TOKEN"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Configuration and internal errors
const (
	// ErrCodeConfiguration indicates invalid runtime configuration supplied
	// by a client (400) or an unknown configured method observed at
	// verification time (500).
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeInternal indicates an unexpected server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

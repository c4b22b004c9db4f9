package auth

import "errors"

var (
	// ErrDuplicateUser is returned when a signup username is already taken.
	ErrDuplicateUser = errors.New("username already exists")
	// ErrUserNotFound is returned when a login names an unknown user.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned on a password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRefreshToken is returned when a refresh token is not
	// registered, including a token already consumed by rotation.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	// ErrNoSession is returned when an operation requires a live session.
	ErrNoSession = errors.New("no active session")
)

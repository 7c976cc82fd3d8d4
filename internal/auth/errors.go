package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for any failed login. It never says
	// whether the account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrLoginInProgress is returned when a login is already pending
	ErrLoginInProgress = errors.New("login already in progress")

	// ErrInvalidToken is returned for unknown or revoked bearer tokens
	ErrInvalidToken = errors.New("invalid bearer token")
)

package repository

import "errors"

var (
	// ErrNotFound is returned when no record or token has the requested key
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a record or token with the same key is already stored
	ErrConflict = errors.New("conflict: key already exists")

	// ErrInvalidInput is returned for records that cannot be stored, such as one without an id
	ErrInvalidInput = errors.New("invalid input")
)

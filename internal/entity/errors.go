package entity

import "errors"

var (
	// ErrNotFound indicates the record doesn't exist in the store.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput indicates a malformed store request.
	ErrInvalidInput = errors.New("invalid record input")
)

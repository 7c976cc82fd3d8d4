package form

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInvalid is returned by Submit when field validation fails. The
	// returned error also wraps the FieldErrors.
	ErrInvalid = errors.New("form has invalid fields")

	// ErrBusy is returned when Submit is called while a submission is in flight
	ErrBusy = errors.New("form submission already in progress")

	// ErrClosed is returned once a session has been submitted or cancelled
	ErrClosed = errors.New("form session is closed")

	// ErrUnknownField is returned when setting a field the schema lacks
	ErrUnknownField = errors.New("unknown field")
)

// FieldErrors maps field names to validation messages.
type FieldErrors map[string]string

// Error lists the messages sorted by field.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + e[f]
	}
	return strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrInvalid on bare FieldErrors.
func (e FieldErrors) Unwrap() error {
	return ErrInvalid
}

// Clone copies e.
func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

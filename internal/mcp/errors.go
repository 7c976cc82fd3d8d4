package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/bizdesk/internal/auth"
	"github.com/rpggio/bizdesk/internal/entity"
	"github.com/rpggio/bizdesk/internal/form"
	"github.com/rpggio/bizdesk/internal/i18n"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors map to nil.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	var fields form.FieldErrors
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.As(err, &fields):
		return &APIError{Code: "INVALID_INPUT", Message: "form has invalid fields", Details: fields.Clone(),
			RecoveryHint: "Fix the listed fields and submit again"}
	case errors.Is(err, form.ErrUnknownField):
		return &APIError{Code: "UNKNOWN_FIELD", Message: err.Error(), RecoveryHint: "Call the get_*_form tool to see field names"}
	case errors.Is(err, form.ErrEmptyTag), errors.Is(err, form.ErrDuplicateTag):
		return &APIError{Code: "INVALID_TAG", Message: err.Error(), RecoveryHint: "Send distinct, non-empty tags"}
	case errors.Is(err, form.ErrBusy):
		return &APIError{Code: "BUSY", Message: "submission already in progress", RecoveryHint: "Wait for the pending call"}
	case errors.Is(err, form.ErrClosed):
		return &APIError{Code: "FORM_CLOSED", Message: "form session is closed", RecoveryHint: "Open a new form"}
	case errors.Is(err, entity.ErrNotFound), errors.Is(err, entity.ErrInvalidInput):
		return &APIError{Code: "NOT_FOUND", Message: "record not found", RecoveryHint: "Check ID spelling with a list_* tool"}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &APIError{Code: "INVALID_CREDENTIALS", Message: "invalid email or password"}
	case errors.Is(err, auth.ErrInvalidToken):
		return &APIError{Code: "UNAUTHORIZED", Message: "invalid or expired token", RecoveryHint: "Call login for a new token"}
	case errors.Is(err, auth.ErrLoginInProgress):
		return &APIError{Code: "LOGIN_IN_PROGRESS", Message: "login already in progress", RecoveryHint: "Wait for the pending login"}
	case errors.Is(err, i18n.ErrUnsupportedLocale):
		return &APIError{Code: "UNSUPPORTED_LOCALE", Message: err.Error(), Details: i18n.Locales()}
	case errors.Is(err, errBadDay):
		return &APIError{Code: "INVALID_DAY", Message: err.Error(), RecoveryHint: "Use YYYY-MM-DD"}
	default:
		return nil
	}
}

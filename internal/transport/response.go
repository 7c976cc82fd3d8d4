package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rpggio/bizdesk/internal/auth"
	"github.com/rpggio/bizdesk/internal/entity"
	"github.com/rpggio/bizdesk/internal/form"
	"github.com/rpggio/bizdesk/internal/i18n"
	"github.com/rpggio/bizdesk/internal/notify"
	"github.com/rpggio/bizdesk/internal/route"
)

// Envelope is the body of every API response. Notifications and Redirect
// carry what the interaction sent to the notifier and the router.
type Envelope struct {
	Data          any                   `json:"data,omitempty"`
	Notifications []notify.Notification `json:"notifications"`
	Redirect      string                `json:"redirect,omitempty"`
	Error         *Error                `json:"error,omitempty"`
}

// Error describes a failed request.
type Error struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// maxBodyBytes caps request payloads.
const maxBodyBytes = 1 << 20

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	return nil
}

// reply writes data with the notifications and redirect recorded for one
// interaction.
func reply(w http.ResponseWriter, status int, data any, notes *notify.Recorder, nav *route.Recorder) {
	env := Envelope{Data: data, Notifications: []notify.Notification{}}
	if notes != nil {
		env.Notifications = notes.Drain()
	}
	if nav != nil && nav.Redirected() {
		env.Redirect = nav.Location()
	}
	writeJSON(w, status, env)
}

// fail writes err mapped to its status, keeping the recorded notifications.
func fail(w http.ResponseWriter, err error, notes *notify.Recorder) {
	status := statusFor(err)
	env := Envelope{
		Notifications: []notify.Notification{},
		Error:         &Error{Message: messageFor(status, err)},
	}
	var fields form.FieldErrors
	if errors.As(err, &fields) {
		env.Error.Fields = fields.Clone()
	}
	if notes != nil {
		env.Notifications = notes.Drain()
	}
	writeJSON(w, status, env)
}

func writeError(w http.ResponseWriter, status int, message string, fields map[string]string) {
	writeJSON(w, status, Envelope{
		Notifications: []notify.Notification{},
		Error:         &Error{Message: message, Fields: fields},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, form.ErrInvalid),
		errors.Is(err, form.ErrUnknownField),
		errors.Is(err, form.ErrEmptyTag),
		errors.Is(err, form.ErrDuplicateTag),
		errors.Is(err, i18n.ErrUnsupportedLocale):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrNotFound), errors.Is(err, entity.ErrInvalidInput):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, form.ErrBusy), errors.Is(err, form.ErrClosed), errors.Is(err, auth.ErrLoginInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(status int, err error) string {
	switch status {
	case http.StatusUnprocessableEntity:
		if errors.Is(err, form.ErrInvalid) {
			return form.ErrInvalid.Error()
		}
		return err.Error()
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnauthorized:
		return ErrUnauthorized.Error()
	case http.StatusConflict:
		return err.Error()
	default:
		return "internal error"
	}
}

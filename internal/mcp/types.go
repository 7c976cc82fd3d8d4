package mcp

import (
	"github.com/rpggio/bizdesk/internal/form"
	"github.com/rpggio/bizdesk/internal/i18n"
	"github.com/rpggio/bizdesk/internal/notify"
	"github.com/rpggio/bizdesk/internal/route"
)

type ListParams struct {
	Query string `json:"q,omitempty" jsonschema:"free-text search over the record's searchable fields"`
	Tab   string `json:"tab,omitempty" jsonschema:"tab name such as all or a type or status; omit for the default tab"`
	Day   string `json:"day,omitempty" jsonschema:"calendar day as YYYY-MM-DD, used by the schedule calendar tab"`
}

type FormParams struct {
	ID string `json:"id,omitempty" jsonschema:"record id to edit; omit to get a blank create form"`
}

type SubmitParams struct {
	ID     string      `json:"id,omitempty" jsonschema:"record id to update; omit to create"`
	Values form.Values `json:"values,omitempty" jsonschema:"field name to raw string value; omitted fields keep their current value"`
	Tags   []string    `json:"tags,omitempty" jsonschema:"replacement tag list, catalog items only"`
}

type IDParams struct {
	ID string `json:"id" jsonschema:"record id"`
}

type AgendaParams struct {
	Day string `json:"day,omitempty" jsonschema:"day as YYYY-MM-DD; defaults to today"`
}

// NoParams is the input of tools that take no arguments.
type NoParams struct{}

type TranslateParams struct {
	Key    string `json:"key" jsonschema:"translation key, e.g. dashboard"`
	Locale string `json:"locale,omitempty" jsonschema:"en or pt; defaults to the active locale"`
}

type SetLocaleParams struct {
	Locale string `json:"locale" jsonschema:"en or pt"`
}

type RouteParams struct {
	Path string `json:"path,omitempty" jsonschema:"app path such as /clients/new; defaults to /"`
}

type LoginParams struct {
	Email    string `json:"email" jsonschema:"admin email"`
	Password string `json:"password" jsonschema:"admin password"`
}

// Result is the JSON body of every tool response. Notifications and Redirect
// carry what the call sent to the notifier and the router.
type Result struct {
	Data          any                   `json:"data,omitempty"`
	Notifications []notify.Notification `json:"notifications"`
	Redirect      string                `json:"redirect,omitempty"`
	Error         *APIError             `json:"error,omitempty"`
}

type TranslateResponse struct {
	Locale i18n.Locale `json:"locale"`
	Key    string      `json:"key"`
	Text   string      `json:"text"`
}

type LocaleResponse struct {
	Locale    i18n.Locale   `json:"locale"`
	Supported []i18n.Locale `json:"supported"`
}

type RouteResponse struct {
	Path   string       `json:"path"`
	Page   route.Page   `json:"page"`
	Params route.Params `json:"params,omitempty"`
}

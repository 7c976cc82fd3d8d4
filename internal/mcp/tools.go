package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/bizdesk/internal/auth"
	"github.com/rpggio/bizdesk/internal/dashboard"
	"github.com/rpggio/bizdesk/internal/filter"
	"github.com/rpggio/bizdesk/internal/form"
	"github.com/rpggio/bizdesk/internal/i18n"
	"github.com/rpggio/bizdesk/internal/notify"
	"github.com/rpggio/bizdesk/internal/route"
)

var errBadDay = errors.New("invalid day")

type tools struct {
	cfg Config
}

func registerTools(server *sdkmcp.Server, cfg Config) {
	t := &tools{cfg: cfg}
	d := cfg.Dashboard

	registerPageTools(server, t, "client", "clients", d.Clients)
	registerPageTools(server, t, "transaction", "transactions", d.Finances.Page)
	registerPageTools(server, t, "task", "tasks", d.Schedule.Page)
	registerPageTools(server, t, "catalog_item", "catalog_items", d.Catalog.Page)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "dashboard_overview",
		Description: "Counts, finance totals, recent clients and upcoming tasks",
	}, t.overview)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_finance_totals",
		Description: "Total income, total expenses and net balance",
	}, t.totals)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_catalog_counts",
		Description: "Number of products, services and items in the catalog",
	}, t.counts)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_agenda",
		Description: "Scheduled tasks for a day and for the day after",
	}, t.agenda)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "complete_task",
		Description: "Mark a task completed",
	}, t.completeTask)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "duplicate_catalog_item",
		Description: "Copy a catalog item under a new id with \" (Copy)\" appended to its name",
	}, t.duplicateItem)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "translate",
		Description: "Resolve an interface string in a locale",
	}, t.translate)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_locale",
		Description: "Switch the active interface locale",
	}, t.setLocale)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "resolve_route",
		Description: "Which page a path shows and its parameters",
	}, t.resolveRoute)

	if cfg.Auth != nil {
		sdkmcp.AddTool(server, &sdkmcp.Tool{
			Name:        "login",
			Description: "Sign in as an admin and receive a bearer token",
		}, t.login)
		sdkmcp.AddTool(server, &sdkmcp.Tool{
			Name:        "logout",
			Description: "Revoke the bearer token of this call",
		}, t.logout)
	}
}

// registerPageTools adds the list and form tools of one page.
func registerPageTools[T any](server *sdkmcp.Server, t *tools, noun, plural string, page *dashboard.Page[T]) {
	label := strings.ReplaceAll(noun, "_", " ")

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_" + plural,
		Description: fmt.Sprintf("List %s filtered by text search and tab", strings.ReplaceAll(plural, "_", " ")),
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListParams) (*sdkmcp.CallToolResult, any, error) {
		q, err := t.query(in)
		if err != nil {
			return t.fail("list_"+plural, err, nil)
		}
		res, err := page.List(ctx, q)
		if err != nil {
			return t.fail("list_"+plural, err, nil)
		}
		return t.ok(res, nil, nil)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_" + noun + "_form",
		Description: fmt.Sprintf("Form fields, options and values for a %s; omit id for a blank form", label),
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in FormParams) (*sdkmcp.CallToolResult, any, error) {
		ui, notes, nav := dashboard.NewUI(formPath(page.Section, in.ID))
		sess, err := page.OpenForm(ctx, in.ID, ui)
		if err != nil {
			return t.fail("get_"+noun+"_form", err, notes)
		}
		return t.ok(sess.View(), notes, nav)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "submit_" + noun + "_form",
		Description: fmt.Sprintf("Create a %s, or update one when id is given", label),
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SubmitParams) (*sdkmcp.CallToolResult, any, error) {
		ui, notes, nav := dashboard.NewUI(formPath(page.Section, in.ID))
		sess, err := page.OpenForm(ctx, in.ID, ui)
		if err != nil {
			return t.fail("submit_"+noun+"_form", err, notes)
		}
		if err := fillSession(sess, in); err != nil {
			return t.fail("submit_"+noun+"_form", err, notes)
		}
		rec, err := sess.Submit(ctx)
		if err != nil {
			return t.fail("submit_"+noun+"_form", err, notes)
		}
		return t.ok(rec, notes, nav)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_" + noun,
		Description: fmt.Sprintf("Delete a %s", label),
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDParams) (*sdkmcp.CallToolResult, any, error) {
		ui, notes, nav := dashboard.NewUI(route.ListPath(page.Section))
		if err := page.Delete(ctx, in.ID, ui); err != nil {
			return t.fail("delete_"+noun, err, notes)
		}
		return t.ok(nil, notes, nav)
	})
}

func (t *tools) overview(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, any, error) {
	ov, err := t.cfg.Dashboard.Overview(ctx)
	if err != nil {
		return t.fail("dashboard_overview", err, nil)
	}
	return t.ok(ov, nil, nil)
}

func (t *tools) totals(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, any, error) {
	totals, err := t.cfg.Dashboard.Finances.Totals(ctx)
	if err != nil {
		return t.fail("get_finance_totals", err, nil)
	}
	return t.ok(totals, nil, nil)
}

func (t *tools) counts(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, any, error) {
	counts, err := t.cfg.Dashboard.Catalog.Counts(ctx)
	if err != nil {
		return t.fail("get_catalog_counts", err, nil)
	}
	return t.ok(counts, nil, nil)
}

func (t *tools) agenda(ctx context.Context, _ *sdkmcp.CallToolRequest, in AgendaParams) (*sdkmcp.CallToolResult, any, error) {
	day := t.cfg.Now().In(t.cfg.Location)
	if in.Day != "" {
		d, err := parseDay(in.Day, t.cfg.Location)
		if err != nil {
			return t.fail("get_agenda", err, nil)
		}
		day = d
	}
	agenda, err := t.cfg.Dashboard.Schedule.Agenda(ctx, day)
	if err != nil {
		return t.fail("get_agenda", err, nil)
	}
	return t.ok(agenda, nil, nil)
}

func (t *tools) completeTask(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDParams) (*sdkmcp.CallToolResult, any, error) {
	ui, notes, nav := dashboard.NewUI(route.ListPath(route.SectionSchedule))
	task, err := t.cfg.Dashboard.Schedule.Complete(ctx, in.ID, ui)
	if err != nil {
		return t.fail("complete_task", err, notes)
	}
	return t.ok(task, notes, nav)
}

func (t *tools) duplicateItem(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDParams) (*sdkmcp.CallToolResult, any, error) {
	ui, notes, nav := dashboard.NewUI(route.ListPath(route.SectionDatabase))
	item, err := t.cfg.Dashboard.Catalog.Duplicate(ctx, in.ID, ui)
	if err != nil {
		return t.fail("duplicate_catalog_item", err, notes)
	}
	return t.ok(item, notes, nav)
}

// translate resolves in.Key in the requested locale, or the active one.
func (t *tools) translate(_ context.Context, _ *sdkmcp.CallToolRequest, in TranslateParams) (*sdkmcp.CallToolResult, any, error) {
	if strings.TrimSpace(in.Key) == "" {
		return t.fail("translate", &APIError{Code: "INVALID_INPUT", Message: "key is required"}, nil)
	}
	l := t.cfg.Translator.Locale()
	if in.Locale != "" {
		parsed, err := i18n.ParseLocale(normalizeLocale(in.Locale))
		if err != nil {
			return t.fail("translate", err, nil)
		}
		l = parsed
	}
	return t.ok(TranslateResponse{Locale: l, Key: in.Key, Text: i18n.Lookup(l, in.Key)}, nil, nil)
}

func (t *tools) setLocale(ctx context.Context, _ *sdkmcp.CallToolRequest, in SetLocaleParams) (*sdkmcp.CallToolResult, any, error) {
	l, err := i18n.ParseLocale(normalizeLocale(in.Locale))
	if err == nil {
		err = t.cfg.Translator.SetLocale(l)
	}
	if err != nil {
		return t.fail("set_locale", err, nil)
	}
	t.cfg.Logger.Info("locale changed", "locale", l, "admin", getAdmin(ctx))
	return t.ok(LocaleResponse{Locale: l, Supported: i18n.Locales()}, nil, nil)
}

func (t *tools) resolveRoute(_ context.Context, _ *sdkmcp.CallToolRequest, in RouteParams) (*sdkmcp.CallToolResult, any, error) {
	path := in.Path
	if path == "" {
		path = "/"
	}
	page, params := route.Match(path)
	return t.ok(RouteResponse{Path: path, Page: page, Params: params}, nil, nil)
}

func (t *tools) login(ctx context.Context, _ *sdkmcp.CallToolRequest, in LoginParams) (*sdkmcp.CallToolResult, any, error) {
	ui, notes, nav := dashboard.NewUI(route.LoginPath)
	sess, err := t.cfg.Auth.Login(ctx, auth.Credentials{Email: in.Email, Password: in.Password}, ui.Notifier, ui.Navigator)
	if err != nil {
		return t.fail("login", err, notes)
	}
	return t.ok(sess, notes, nav)
}

func (t *tools) logout(ctx context.Context, req *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, any, error) {
	_, notes, nav := dashboard.NewUI(route.DashboardPath)
	if err := t.cfg.Auth.Logout(ctx, requestToken(req), nav); err != nil {
		return t.fail("logout", err, notes)
	}
	notes.Notify(notify.Info("Signed out", "Your session has ended."))
	return t.ok(nil, notes, nav)
}

func (t *tools) query(in ListParams) (filter.Query, error) {
	q := filter.Query{Text: in.Query, Tab: strings.ToLower(in.Tab)}
	if in.Day != "" {
		d, err := parseDay(in.Day, t.cfg.Location)
		if err != nil {
			return filter.Query{}, err
		}
		q.Day = d
	}
	return q, nil
}

func (t *tools) ok(data any, notes *notify.Recorder, nav *route.Recorder) (*sdkmcp.CallToolResult, any, error) {
	res := Result{Data: data, Notifications: []notify.Notification{}}
	if notes != nil {
		res.Notifications = notes.Drain()
	}
	if nav != nil && nav.Redirected() {
		res.Redirect = nav.Location()
	}
	return toolResult(res, false)
}

// fail reports err as a tool error. Errors with no mapping are logged and
// reported as INTERNAL.
func (t *tools) fail(tool string, err error, notes *notify.Recorder) (*sdkmcp.CallToolResult, any, error) {
	apiErr := MapError(err)
	if apiErr == nil {
		t.cfg.Logger.Error("tool failed", "tool", tool, "error", err)
		apiErr = &APIError{Code: "INTERNAL", Message: "internal error"}
	}
	res := Result{Notifications: []notify.Notification{}, Error: apiErr}
	if notes != nil {
		res.Notifications = notes.Drain()
	}
	return toolResult(res, true)
}

func toolResult(res Result, isError bool) (*sdkmcp.CallToolResult, any, error) {
	data, err := json.Marshal(res)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding result: %w", err)
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
		IsError: isError,
	}, nil, nil
}

func fillSession[T any](sess *form.Session[T], in SubmitParams) error {
	if err := sess.SetAll(in.Values); err != nil {
		return err
	}
	if in.Tags == nil {
		return nil
	}
	return sess.SetTags(in.Tags)
}

func formPath(s route.Section, id string) string {
	if id == "" {
		return route.NewPath(s)
	}
	return route.EditPath(s, id)
}

func parseDay(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(form.DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", errBadDay, s)
	}
	return d, nil
}

func normalizeLocale(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func requestToken(req *sdkmcp.CallToolRequest) string {
	if req == nil || req.Extra == nil || req.Extra.Header == nil {
		return ""
	}
	return bearer(req.Extra.Header.Get("Authorization"))
}

func bearer(header string) string {
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

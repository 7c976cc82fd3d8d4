// Package route maps dashboard paths to pages and records navigation.
package route

import (
	"strings"
	"sync"
)

// Page identifies a dashboard screen.
type Page string

const (
	PageLogin        Page = "login"
	PageDashboard    Page = "dashboard"
	PageAnalytics    Page = "analytics"
	PageSettings     Page = "settings"
	PageClients      Page = "clients"
	PageClientForm   Page = "client_form"
	PageFinances     Page = "finances"
	PageFinanceForm  Page = "finance_form"
	PageSchedule     Page = "schedule"
	PageTaskForm     Page = "task_form"
	PageDatabase     Page = "database"
	PageDatabaseForm Page = "database_form"
	PageNotFound     Page = "not_found"
)

// Section is the path prefix that owns one record kind.
type Section string

const (
	SectionClients  Section = "clients"
	SectionFinances Section = "finances"
	SectionSchedule Section = "schedule"
	SectionDatabase Section = "database"
)

// Fixed locations.
const (
	LoginPath     = "/admin/login"
	DashboardPath = "/dashboard"
)

// Route pairs a path pattern with a page. Pattern segments starting with
// ':' capture a parameter.
type Route struct {
	Pattern string
	Page    Page
}

// Routes is the full path table.
var Routes = []Route{
	{"/", PageLogin},
	{LoginPath, PageLogin},
	{DashboardPath, PageDashboard},
	{"/analytics", PageAnalytics},
	{"/settings", PageSettings},
	{"/clients", PageClients},
	{"/clients/new", PageClientForm},
	{"/clients/edit/:id", PageClientForm},
	{"/finances", PageFinances},
	{"/finances/new", PageFinanceForm},
	{"/finances/edit/:id", PageFinanceForm},
	{"/schedule", PageSchedule},
	{"/schedule/new", PageTaskForm},
	{"/schedule/edit/:id", PageTaskForm},
	{"/database", PageDatabase},
	{"/database/new", PageDatabaseForm},
	{"/database/edit/:id", PageDatabaseForm},
}

// Params holds captured path parameters.
type Params map[string]string

// Match resolves path against Routes. Unknown paths resolve to PageNotFound.
func Match(path string) (Page, Params) {
	segs := split(path)
	for _, r := range Routes {
		if params, ok := matchPattern(split(r.Pattern), segs); ok {
			return r.Page, params
		}
	}
	return PageNotFound, Params{}
}

func matchPattern(pattern, segs []string) (Params, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}
	params := Params{}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return nil, false
			}
			params[p[1:]] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// ListPath returns the list page path for a section.
func ListPath(s Section) string {
	return "/" + string(s)
}

// NewPath returns the create form path for a section.
func NewPath(s Section) string {
	return "/" + string(s) + "/new"
}

// EditPath returns the edit form path for a record.
func EditPath(s Section, id string) string {
	return "/" + string(s) + "/edit/" + id
}

// Navigator moves the user to a path.
type Navigator interface {
	Navigate(path string)
}

// Recorder is a Navigator that remembers the last requested path.
type Recorder struct {
	mu      sync.Mutex
	current string
	history []string
}

// NewRecorder creates a Recorder positioned at start.
func NewRecorder(start string) *Recorder {
	return &Recorder{current: start}
}

// Navigate records path as the current location.
func (r *Recorder) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = path
	r.history = append(r.history, path)
}

// Location returns the current path.
func (r *Recorder) Location() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Redirected reports whether any navigation happened.
func (r *Recorder) Redirected() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history) > 0
}

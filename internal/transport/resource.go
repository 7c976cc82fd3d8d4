package transport

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rpggio/bizdesk/internal/dashboard"
	"github.com/rpggio/bizdesk/internal/filter"
	"github.com/rpggio/bizdesk/internal/form"
	"github.com/rpggio/bizdesk/internal/route"
)

// SubmitRequest is the body of a create or update call.
type SubmitRequest struct {
	Values form.Values `json:"values"`
	Tags   []string    `json:"tags,omitempty"`
}

// resource serves the list and form endpoints of one page.
type resource[T any] struct {
	page *dashboard.Page[T]
	loc  *time.Location
}

func mountResource[T any](r chi.Router, page *dashboard.Page[T], loc *time.Location) {
	res := &resource[T]{page: page, loc: loc}
	r.Get("/", res.handleList)
	r.Post("/", res.handleCreate)
	r.Get("/form", res.handleForm)
	r.Get("/{id}", res.handleGet)
	r.Put("/{id}", res.handleUpdate)
	r.Delete("/{id}", res.handleDelete)
	r.Get("/{id}/form", res.handleForm)
}

func (res *resource[T]) handleList(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r, res.loc)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	result, err := res.page.List(r.Context(), q)
	if err != nil {
		fail(w, err, nil)
		return
	}
	reply(w, http.StatusOK, result, nil, nil)
}

func (res *resource[T]) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := res.page.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, err, nil)
		return
	}
	reply(w, http.StatusOK, rec, nil, nil)
}

// handleForm returns the form view: defaults without an id, the stored
// record's values with one.
func (res *resource[T]) handleForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ui, notes, nav := dashboard.NewUI(res.formPath(id))
	sess, err := res.page.OpenForm(r.Context(), id, ui)
	if err != nil {
		fail(w, err, notes)
		return
	}
	reply(w, http.StatusOK, sess.View(), notes, nav)
}

func (res *resource[T]) handleCreate(w http.ResponseWriter, r *http.Request) {
	res.submit(w, r, "")
}

func (res *resource[T]) handleUpdate(w http.ResponseWriter, r *http.Request) {
	res.submit(w, r, chi.URLParam(r, "id"))
}

func (res *resource[T]) submit(w http.ResponseWriter, r *http.Request, id string) {
	var req SubmitRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ui, notes, nav := dashboard.NewUI(res.formPath(id))
	sess, err := res.page.OpenForm(r.Context(), id, ui)
	if err != nil {
		fail(w, err, notes)
		return
	}
	if err := fillSession(sess, req); err != nil {
		fail(w, err, notes)
		return
	}

	rec, err := sess.Submit(r.Context())
	if err != nil {
		fail(w, err, notes)
		return
	}
	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	reply(w, status, rec, notes, nav)
}

func (res *resource[T]) handleDelete(w http.ResponseWriter, r *http.Request) {
	ui, notes, nav := dashboard.NewUI(route.ListPath(res.page.Section))
	if err := res.page.Delete(r.Context(), chi.URLParam(r, "id"), ui); err != nil {
		fail(w, err, notes)
		return
	}
	reply(w, http.StatusOK, nil, notes, nav)
}

func (res *resource[T]) formPath(id string) string {
	if id == "" {
		return route.NewPath(res.page.Section)
	}
	return route.EditPath(res.page.Section, id)
}

func fillSession[T any](sess *form.Session[T], req SubmitRequest) error {
	if err := sess.SetAll(req.Values); err != nil {
		return err
	}
	if req.Tags == nil {
		return nil
	}
	return sess.SetTags(req.Tags)
}

func parseQuery(r *http.Request, loc *time.Location) (filter.Query, error) {
	v := r.URL.Query()
	q := filter.Query{
		Text: v.Get("q"),
		Tab:  strings.ToLower(v.Get("tab")),
	}
	if day := v.Get("day"); day != "" {
		d, err := parseDay(day, loc)
		if err != nil {
			return filter.Query{}, err
		}
		q.Day = d
	}
	return q, nil
}

func parseDay(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(form.DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

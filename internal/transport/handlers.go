package transport

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rpggio/bizdesk/internal/auth"
	"github.com/rpggio/bizdesk/internal/dashboard"
	"github.com/rpggio/bizdesk/internal/i18n"
	"github.com/rpggio/bizdesk/internal/notify"
	"github.com/rpggio/bizdesk/internal/route"
)

// LocaleRequest switches the active locale.
type LocaleRequest struct {
	Locale string `json:"locale"`
}

// LocaleResponse reports the active and supported locales.
type LocaleResponse struct {
	Locale    i18n.Locale   `json:"locale"`
	Supported []i18n.Locale `json:"supported"`
}

// TranslateResponse is one resolved interface string.
type TranslateResponse struct {
	Locale i18n.Locale `json:"locale"`
	Key    string      `json:"key"`
	Text   string      `json:"text"`
}

// RouteResponse is the page a path resolves to.
type RouteResponse struct {
	Path   string       `json:"path"`
	Page   route.Page   `json:"page"`
	Params route.Params `json:"params,omitempty"`
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := s.cfg.Dashboard.Overview(r.Context())
	if err != nil {
		s.internalError(w, "overview", err)
		return
	}
	reply(w, http.StatusOK, ov, nil, nil)
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := s.cfg.Dashboard.Finances.Totals(r.Context())
	if err != nil {
		s.internalError(w, "totals", err)
		return
	}
	reply(w, http.StatusOK, totals, nil, nil)
}

func (s *Server) handleCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := s.cfg.Dashboard.Catalog.Counts(r.Context())
	if err != nil {
		s.internalError(w, "counts", err)
		return
	}
	reply(w, http.StatusOK, counts, nil, nil)
}

func (s *Server) handleAgenda(w http.ResponseWriter, r *http.Request) {
	day := s.cfg.Now().In(s.cfg.Location)
	if v := r.URL.Query().Get("day"); v != "" {
		d, err := parseDay(v, s.cfg.Location)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		day = d
	}
	agenda, err := s.cfg.Dashboard.Schedule.Agenda(r.Context(), day)
	if err != nil {
		s.internalError(w, "agenda", err)
		return
	}
	reply(w, http.StatusOK, agenda, nil, nil)
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	ui, notes, nav := dashboard.NewUI(route.ListPath(route.SectionSchedule))
	task, err := s.cfg.Dashboard.Schedule.Complete(r.Context(), chi.URLParam(r, "id"), ui)
	if err != nil {
		fail(w, err, notes)
		return
	}
	reply(w, http.StatusOK, task, notes, nav)
}

func (s *Server) handleDuplicate(w http.ResponseWriter, r *http.Request) {
	ui, notes, nav := dashboard.NewUI(route.ListPath(route.SectionDatabase))
	item, err := s.cfg.Dashboard.Catalog.Duplicate(r.Context(), chi.URLParam(r, "id"), ui)
	if err != nil {
		fail(w, err, notes)
		return
	}
	reply(w, http.StatusCreated, item, notes, nav)
}

func (s *Server) handleGetLocale(w http.ResponseWriter, _ *http.Request) {
	reply(w, http.StatusOK, LocaleResponse{
		Locale:    s.cfg.Translator.Locale(),
		Supported: i18n.Locales(),
	}, nil, nil)
}

func (s *Server) handleSetLocale(w http.ResponseWriter, r *http.Request) {
	var req LocaleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	l, err := i18n.ParseLocale(strings.ToLower(strings.TrimSpace(req.Locale)))
	if err == nil {
		err = s.cfg.Translator.SetLocale(l)
	}
	if err != nil {
		fail(w, err, nil)
		return
	}
	s.cfg.Logger.Info("locale changed", "locale", l)
	reply(w, http.StatusOK, LocaleResponse{Locale: l, Supported: i18n.Locales()}, nil, nil)
}

// handleTranslate resolves key in the request locale, or the active locale
// when the request names none.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing key", nil)
		return
	}
	l, ok := LocaleFromContext(r.Context())
	if !ok {
		l = s.cfg.Translator.Locale()
	}
	reply(w, http.StatusOK, TranslateResponse{Locale: l, Key: key, Text: i18n.Lookup(l, key)}, nil, nil)
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}
	page, params := route.Match(path)
	reply(w, http.StatusOK, RouteResponse{Path: path, Page: page, Params: params}, nil, nil)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds auth.Credentials
	if err := decodeBody(r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	ui, notes, nav := dashboard.NewUI(route.LoginPath)
	sess, err := s.cfg.Auth.Login(r.Context(), creds, ui.Notifier, ui.Navigator)
	if err != nil {
		fail(w, err, notes)
		return
	}
	reply(w, http.StatusOK, sess, notes, nav)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, notes, nav := dashboard.NewUI(route.DashboardPath)
	if err := s.cfg.Auth.Logout(r.Context(), bearerToken(r), nav); err != nil {
		fail(w, err, notes)
		return
	}
	notes.Notify(notify.Info("Signed out", "Your session has ended."))
	reply(w, http.StatusOK, nil, notes, nav)
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.cfg.Logger.Error("request failed", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error", nil)
}

package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/rpggio/bizdesk/internal/auth"
	"github.com/rpggio/bizdesk/internal/dashboard"
	"github.com/rpggio/bizdesk/internal/i18n"
	"github.com/rpggio/bizdesk/internal/metrics"
)

// Config wires the HTTP surface.
type Config struct {
	Dashboard  *dashboard.Dashboard
	Translator *i18n.Translator
	// Auth enables login, logout and bearer checks on the API when set.
	Auth    *auth.Service
	Metrics *metrics.Metrics
	// MCP is mounted at /mcp when set. It authenticates its own calls.
	MCP         http.Handler
	CORSOrigins []string
	Location    *time.Location
	Now         func() time.Time
	Logger      *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	cfg Config
}

// NewServer creates an HTTP server router with middleware.
func NewServer(cfg Config) *chi.Mux {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	srv := &Server{cfg: cfg}

	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Authorization", "Content-Type", "Mcp-Session-Id"},
		MaxAge:         300,
	}).Handler)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(LocaleMiddleware)

	r.Get("/health", srv.handleHealth)
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/locale", srv.handleGetLocale)
		r.Get("/translate", srv.handleTranslate)
		r.Get("/route", srv.handleRoute)
		if cfg.Auth != nil {
			r.Post("/login", srv.handleLogin)
		}

		r.Group(func(r chi.Router) {
			if cfg.Auth != nil {
				r.Use(AuthMiddleware(cfg.Auth))
				r.Post("/logout", srv.handleLogout)
			}
			r.Put("/locale", srv.handleSetLocale)
			srv.mountDashboard(r)
		})
	})

	if cfg.MCP != nil {
		r.Handle("/mcp", cfg.MCP)
	}

	return r
}

func (s *Server) mountDashboard(r chi.Router) {
	d := s.cfg.Dashboard
	r.Get("/overview", s.handleOverview)

	r.Route("/clients", func(r chi.Router) {
		mountResource(r, d.Clients, s.cfg.Location)
	})
	r.Route("/transactions", func(r chi.Router) {
		r.Get("/totals", s.handleTotals)
		mountResource(r, d.Finances.Page, s.cfg.Location)
	})
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/agenda", s.handleAgenda)
		r.Post("/{id}/complete", s.handleComplete)
		mountResource(r, d.Schedule.Page, s.cfg.Location)
	})
	r.Route("/items", func(r chi.Router) {
		r.Get("/counts", s.handleCounts)
		r.Post("/{id}/duplicate", s.handleDuplicate)
		mountResource(r, d.Catalog.Page, s.cfg.Location)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

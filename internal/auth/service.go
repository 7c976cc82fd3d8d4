package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rpggio/bizdesk/internal/form"
	"github.com/rpggio/bizdesk/internal/notify"
	"github.com/rpggio/bizdesk/internal/repository"
	"github.com/rpggio/bizdesk/internal/route"
)

// DefaultDelay is the pause before a login attempt resolves.
const DefaultDelay = time.Second

// Login outcomes reported to a LoginObserver.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeInvalid = "invalid"
	OutcomeBusy    = "busy"
)

// Translator resolves interface strings.
type Translator interface {
	T(key string) string
}

// LoginObserver is told how each login attempt ended.
type LoginObserver interface {
	ObserveLogin(outcome string)
}

// Credentials is the submitted login form.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is an authenticated admin.
type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Fields describes the login form.
func Fields() []form.Field {
	return []form.Field{
		{Name: "email", Label: "Email", Kind: form.KindEmail, Required: true,
			Rules: []form.Rule{form.Email("Invalid email")}},
		{Name: "password", Label: "Password", Kind: form.KindText, Required: true,
			Rules: []form.Rule{form.MinLength(6, "Password must be at least 6 characters.")}},
	}
}

// Validate checks c against the login form rules.
func (c Credentials) Validate() form.FieldErrors {
	return form.Validate(Fields(), form.Values{"email": c.Email, "password": c.Password})
}

// Service runs admin logins and resolves bearer tokens.
type Service struct {
	verifier   Verifier
	tokens     TokenStore
	translator Translator
	delay      time.Duration
	observer   LoginObserver
	logger     *slog.Logger
	inFlight   atomic.Bool
}

// Option configures a Service.
type Option func(*Service)

// WithDelay overrides DefaultDelay. Zero disables the pause.
func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

// WithObserver registers a LoginObserver.
func WithObserver(o LoginObserver) Option {
	return func(s *Service) { s.observer = o }
}

// NewService creates a new auth service.
func NewService(verifier Verifier, tokens TokenStore, translator Translator, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		verifier:   verifier,
		tokens:     tokens,
		translator: translator,
		delay:      DefaultDelay,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login validates c, waits for the configured delay, then verifies it.
// On success it issues a bearer token, sends a success notification and
// navigates to the dashboard. Any verification failure yields
// ErrInvalidCredentials and an error notification. Only one login may be
// pending at a time.
func (s *Service) Login(ctx context.Context, c Credentials, notifier notify.Sink, nav route.Navigator) (Session, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.observe(OutcomeBusy)
		return Session{}, ErrLoginInProgress
	}
	defer s.inFlight.Store(false)

	if errs := c.Validate(); len(errs) > 0 {
		s.observe(OutcomeInvalid)
		return Session{}, errs
	}

	if err := s.wait(ctx); err != nil {
		return Session{}, err
	}

	if err := s.verifier.Verify(ctx, c.Email, c.Password); err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			s.logger.Error("credential verification failed", "error", err)
		}
		s.logger.Info("login rejected", "email", c.Email)
		notifier.Notify(notify.Error("Error", s.translator.T("invalid_credentials")))
		s.observe(OutcomeFailure)
		return Session{}, ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.tokens.Save(ctx, HashToken(token), normalizeEmail(c.Email)); err != nil {
		return Session{}, fmt.Errorf("failed to store token: %w", err)
	}

	s.logger.Info("login succeeded", "email", c.Email)
	notifier.Notify(notify.Success("Success", "Login successful"))
	nav.Navigate(route.DashboardPath)
	s.observe(OutcomeSuccess)
	return Session{Token: token, Email: normalizeEmail(c.Email)}, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Authenticate resolves a bearer token to the admin email.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}
	email, err := s.tokens.Resolve(ctx, HashToken(token))
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve token: %w", err)
	}
	return email, nil
}

// Logout revokes token and navigates to the login page.
func (s *Service) Logout(ctx context.Context, token string, nav route.Navigator) error {
	err := s.tokens.Revoke(ctx, HashToken(token))
	if errors.Is(err, repository.ErrNotFound) {
		return ErrInvalidToken
	}
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	nav.Navigate(route.LoginPath)
	return nil
}

func (s *Service) observe(outcome string) {
	if s.observer != nil {
		s.observer.ObserveLogin(outcome)
	}
}

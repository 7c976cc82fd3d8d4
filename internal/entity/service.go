package entity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rpggio/bizdesk/internal/repository"
)

// Mutation operation names reported to the MutationObserver.
const (
	OpCreate    = "create"
	OpUpdate    = "update"
	OpDelete    = "delete"
	OpDuplicate = "duplicate"
)

// Service is the in-memory-semantics entity store for one record kind. It
// never talks to notifiers or routers; callers do.
type Service[T Record[T]] struct {
	kind     string
	repo     Repository[T]
	ids      IDGenerator
	observer MutationObserver
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*options)

type options struct {
	ids      IDGenerator
	observer MutationObserver
}

// WithIDGenerator replaces the default uuid generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(o *options) { o.ids = ids }
}

// WithObserver registers an observer for successful mutations.
func WithObserver(observer MutationObserver) Option {
	return func(o *options) { o.observer = observer }
}

// NewService creates a store for kind backed by repo.
func NewService[T Record[T]](kind string, repo Repository[T], logger *slog.Logger, opts ...Option) *Service[T] {
	o := options{ids: UUIDGenerator{}}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service[T]{
		kind:     kind,
		repo:     repo,
		ids:      o.ids,
		observer: o.observer,
		logger:   logger,
	}
}

// Kind returns the record kind this store holds.
func (s *Service[T]) Kind() string {
	return s.kind
}

// List returns all records in insertion order.
func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.kind, err)
	}
	return recs, nil
}

// Get returns the record with id.
func (s *Service[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if strings.TrimSpace(id) == "" {
		return zero, ErrInvalidInput
	}
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return zero, s.mapError("getting", id, err)
	}
	return rec, nil
}

// Create assigns a fresh identifier to fields and appends the record.
func (s *Service[T]) Create(ctx context.Context, fields T) (T, error) {
	var zero T
	rec := fields.WithIdentity(s.ids.NewID())
	if err := s.repo.Insert(ctx, rec); err != nil {
		return zero, fmt.Errorf("creating %s: %w", s.kind, err)
	}
	s.logger.Debug("record created", "kind", s.kind, "id", rec.Identity())
	s.observe(OpCreate)
	return rec, nil
}

// Update replaces every field of the record with id, keeping id and position.
func (s *Service[T]) Update(ctx context.Context, id string, fields T) (T, error) {
	var zero T
	if strings.TrimSpace(id) == "" {
		return zero, ErrInvalidInput
	}
	rec := fields.WithIdentity(id)
	if err := s.repo.Replace(ctx, rec); err != nil {
		return zero, s.mapError("updating", id, err)
	}
	s.logger.Debug("record updated", "kind", s.kind, "id", id)
	s.observe(OpUpdate)
	return rec, nil
}

// Delete removes the record with id. Deleting an absent id returns
// ErrNotFound and leaves the store unchanged.
func (s *Service[T]) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Remove(ctx, id); err != nil {
		return s.mapError("deleting", id, err)
	}
	s.logger.Debug("record deleted", "kind", s.kind, "id", id)
	s.observe(OpDelete)
	return nil
}

// Duplicate appends a copy of the record with id under a fresh identifier
// and a name suffixed with DuplicateSuffix.
func (s *Service[T]) Duplicate(ctx context.Context, id string) (T, error) {
	var zero T
	src, err := s.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	rec := src.Clone(DuplicateSuffix).WithIdentity(s.ids.NewID())
	if err := s.repo.Insert(ctx, rec); err != nil {
		return zero, fmt.Errorf("duplicating %s %s: %w", s.kind, id, err)
	}
	s.logger.Debug("record duplicated", "kind", s.kind, "source", id, "id", rec.Identity())
	s.observe(OpDuplicate)
	return rec, nil
}

func (s *Service[T]) mapError(action, id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s %s", ErrNotFound, s.kind, id)
	}
	return fmt.Errorf("%s %s %s: %w", action, s.kind, id, err)
}

func (s *Service[T]) observe(op string) {
	if s.observer != nil {
		s.observer.ObserveMutation(s.kind, op)
	}
}

// Seed inserts recs, keeping their identifiers, when repo holds no records
// yet. It reports whether anything was inserted.
func Seed[T Record[T]](ctx context.Context, repo Repository[T], recs []T) (bool, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return false, fmt.Errorf("checking existing records: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}
	for _, rec := range recs {
		if err := repo.Insert(ctx, rec); err != nil {
			return false, fmt.Errorf("seeding record %s: %w", rec.Identity(), err)
		}
	}
	return true, nil
}

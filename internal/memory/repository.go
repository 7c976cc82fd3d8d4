package memory

import (
	"context"
	"sync"

	"github.com/rpggio/bizdesk/internal/entity"
	"github.com/rpggio/bizdesk/internal/repository"
)

// Repository keeps records of one kind in insertion order.
type Repository[T entity.Record[T]] struct {
	mu   sync.RWMutex
	recs []T
}

// NewRepository creates a repository preloaded with seed, in order.
func NewRepository[T entity.Record[T]](seed ...T) *Repository[T] {
	r := &Repository[T]{recs: make([]T, 0, len(seed))}
	for _, rec := range seed {
		r.recs = append(r.recs, rec.Clone(""))
	}
	return r
}

// List returns deep copies of all records in insertion order.
func (r *Repository[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, len(r.recs))
	for i, rec := range r.recs {
		out[i] = rec.Clone("")
	}
	return out, nil
}

// Get returns the record with id.
func (r *Repository[T]) Get(_ context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero T
	i := r.indexOf(id)
	if i < 0 {
		return zero, repository.ErrNotFound
	}
	return r.recs[i].Clone(""), nil
}

// Insert appends rec; ids must be unique.
func (r *Repository[T]) Insert(_ context.Context, rec T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.Identity() == "" {
		return repository.ErrInvalidInput
	}
	if r.indexOf(rec.Identity()) >= 0 {
		return repository.ErrConflict
	}
	r.recs = append(r.recs, rec.Clone(""))
	return nil
}

// Replace swaps the stored record sharing rec's id, keeping its position.
func (r *Repository[T]) Replace(_ context.Context, rec T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(rec.Identity())
	if i < 0 {
		return repository.ErrNotFound
	}
	r.recs[i] = rec.Clone("")
	return nil
}

// Remove deletes the record with id, preserving the order of the rest.
func (r *Repository[T]) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.recs = append(r.recs[:i], r.recs[i+1:]...)
	return nil
}

func (r *Repository[T]) indexOf(id string) int {
	for i, rec := range r.recs {
		if rec.Identity() == id {
			return i
		}
	}
	return -1
}

// Package dashboard composes each record kind's store, filter, form schema
// and messages into the pages of the business dashboard.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rpggio/bizdesk/internal/entity"
	"github.com/rpggio/bizdesk/internal/filter"
	"github.com/rpggio/bizdesk/internal/form"
	"github.com/rpggio/bizdesk/internal/notify"
	"github.com/rpggio/bizdesk/internal/route"
)

// UI carries the collaborators of one user interaction.
type UI struct {
	Notifier  notify.Sink
	Navigator route.Navigator
}

// NewUI returns recorders for one request.
func NewUI(at string) (UI, *notify.Recorder, *route.Recorder) {
	notes := notify.NewRecorder()
	nav := route.NewRecorder(at)
	return UI{Notifier: notes, Navigator: nav}, notes, nav
}

// Store is the entity store surface a page needs.
type Store[T any] interface {
	form.Store[T]
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string) (T, error)
}

// Page is the list and form view of one record kind.
type Page[T any] struct {
	Section route.Section
	// Noun is the singular display name, e.g. "Client".
	Noun     string
	Store    Store[T]
	Filter   filter.Spec[T]
	Schema   form.Schema[T]
	Saved    func(rec T, editing bool) notify.Notification
	Deleted  func() notify.Notification
	Observer form.SubmitObserver
	Now      func() time.Time
	Logger   *slog.Logger
}

// List returns the records visible for q.
func (p *Page[T]) List(ctx context.Context, q filter.Query) (filter.Result[T], error) {
	recs, err := p.Store.List(ctx)
	if err != nil {
		return filter.Result[T]{}, fmt.Errorf("listing %s: %w", p.Filter.Noun, err)
	}
	return filter.Apply(p.Filter, recs, q), nil
}

// Get returns one record.
func (p *Page[T]) Get(ctx context.Context, id string) (T, error) {
	return p.Store.Get(ctx, id)
}

// OpenForm starts a create session when id is empty, else an edit session.
func (p *Page[T]) OpenForm(ctx context.Context, id string, ui UI) (*form.Session[T], error) {
	return form.Open(ctx, form.Config[T]{
		Kind:      p.Noun,
		ListPath:  route.ListPath(p.Section),
		Schema:    p.Schema,
		Store:     p.Store,
		Notifier:  ui.Notifier,
		Navigator: ui.Navigator,
		Success:   p.Saved,
		Observer:  p.Observer,
		Now:       p.Now,
		Logger:    p.Logger,
	}, id)
}

// Delete removes a record and reports the outcome through ui. Deleting a
// missing record returns entity.ErrNotFound after an error notification.
func (p *Page[T]) Delete(ctx context.Context, id string, ui UI) error {
	if err := p.Store.Delete(ctx, id); err != nil {
		p.notifyFailure(ui, id, "delete", err)
		return err
	}
	ui.Notifier.Notify(p.Deleted())
	return nil
}

func (p *Page[T]) notifyFailure(ui UI, id, action string, err error) {
	noun := strings.ToLower(p.Noun)
	if errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrInvalidInput) {
		ui.Notifier.Notify(notify.Error(p.Noun+" not found", fmt.Sprintf("No %s with id %q exists.", noun, id)))
		return
	}
	p.logger().Error("page action failed", "kind", p.Noun, "action", action, "id", id, "error", err)
	ui.Notifier.Notify(notify.Error("Unable to "+action+" "+noun, "Please try again."))
}

func (p *Page[T]) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

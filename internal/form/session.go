// Package form manages one create-or-edit interaction for a record: loading
// defaults or an existing record, validating raw field input, and committing
// the result to a store.
package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rpggio/bizdesk/internal/entity"
	"github.com/rpggio/bizdesk/internal/notify"
	"github.com/rpggio/bizdesk/internal/route"
)

// State is a session lifecycle state.
type State string

const (
	StateUnloaded   State = "unloaded"
	StateLoaded     State = "loaded"
	StateValidating State = "validating"
	StateValid      State = "valid"
	StateInvalid    State = "invalid"
	StateSubmitting State = "submitting"
	StateSubmitted  State = "submitted"
	StateCancelled  State = "cancelled"
	StateFailed     State = "failed"
)

// Submit outcomes reported to a SubmitObserver.
const (
	OutcomeCreated   = "created"
	OutcomeUpdated   = "updated"
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "failed"
	OutcomeCancelled = "cancelled"
)

// Store is the subset of the entity store a session needs.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, fields T) (T, error)
	Update(ctx context.Context, id string, fields T) (T, error)
}

// SubmitObserver is told how each submit or cancel ended.
type SubmitObserver interface {
	ObserveSubmit(kind, outcome string)
}

// Config wires a session to its collaborators.
type Config[T any] struct {
	// Kind is the singular display noun, e.g. "Client".
	Kind      string
	ListPath  string
	Schema    Schema[T]
	Store     Store[T]
	Notifier  notify.Sink
	Navigator route.Navigator
	// Success builds the notification sent after a committed submit.
	Success  func(rec T, editing bool) notify.Notification
	Observer SubmitObserver
	Now      func() time.Time
	Logger   *slog.Logger
}

// Session is one create or edit interaction.
type Session[T any] struct {
	cfg  Config[T]
	id   string
	tags TagSchema[T]

	mu          sync.Mutex
	state       State
	values      Values
	initial     Values
	errors      FieldErrors
	editor      *TagEditor
	initialTags []string
}

// View is a read-only snapshot of a session.
type View struct {
	ID      string      `json:"id,omitempty"`
	Editing bool        `json:"editing"`
	State   State       `json:"state"`
	Fields  []Field     `json:"fields"`
	Values  Values      `json:"values"`
	Errors  FieldErrors `json:"errors,omitempty"`
	Tags    []string    `json:"tags,omitempty"`
	Dirty   bool        `json:"dirty"`
}

type noopNavigator struct{}

func (noopNavigator) Navigate(string) {}

// Open loads a session. With an empty id the schema defaults are used;
// otherwise the record is read from the store. A missing record sends an
// error notification and returns entity.ErrNotFound.
func Open[T any](ctx context.Context, cfg Config[T], id string) (*Session[T], error) {
	if cfg.Schema == nil || cfg.Store == nil {
		return nil, errors.New("form: schema and store are required")
	}
	if cfg.Notifier == nil {
		cfg.Notifier = notify.SinkFunc(func(notify.Notification) {})
	}
	if cfg.Navigator == nil {
		cfg.Navigator = noopNavigator{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	s := &Session[T]{
		cfg:    cfg,
		id:     id,
		state:  StateUnloaded,
		errors: FieldErrors{},
	}
	s.tags, _ = cfg.Schema.(TagSchema[T])

	var tags []string
	if id == "" {
		s.values = cfg.Schema.Defaults(cfg.Now())
	} else {
		rec, err := cfg.Store.Get(ctx, id)
		if err != nil {
			s.notifyLoadError(id, err)
			return nil, fmt.Errorf("opening %s form: %w", strings.ToLower(cfg.Kind), err)
		}
		s.values = cfg.Schema.Encode(rec)
		if s.tags != nil {
			tags = s.tags.Tags(rec)
		}
	}

	s.initial = s.values.Clone()
	if s.tags != nil {
		s.editor = NewTagEditor(tags)
		s.initialTags = slices.Clone(tags)
	}
	s.state = StateLoaded
	return s, nil
}

func (s *Session[T]) notifyLoadError(id string, err error) {
	noun := strings.ToLower(s.cfg.Kind)
	if errors.Is(err, entity.ErrNotFound) {
		s.cfg.Notifier.Notify(notify.Error(
			s.cfg.Kind+" not found",
			fmt.Sprintf("No %s with id %q exists.", noun, id)))
		return
	}
	s.cfg.Logger.Error("failed to load form record", "kind", s.cfg.Kind, "id", id, "error", err)
	s.cfg.Notifier.Notify(notify.Error(
		"Unable to load "+noun,
		fmt.Sprintf("The %s could not be loaded. Please try again.", noun)))
}

// ID returns the edited record id, or "" when creating.
func (s *Session[T]) ID() string { return s.id }

// Editing reports whether the session edits an existing record.
func (s *Session[T]) Editing() bool { return s.id != "" }

// State returns the current lifecycle state.
func (s *Session[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Values returns a copy of the current field values.
func (s *Session[T]) Values() Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.Clone()
}

// Errors returns a copy of the current field errors.
func (s *Session[T]) Errors() FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errors.Clone()
}

// Tags returns the tag editor, or nil when the record kind has no tags.
func (s *Session[T]) Tags() *TagEditor {
	return s.editor
}

// Dirty reports whether any value or tag differs from what was loaded.
func (s *Session[T]) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirtyLocked()
}

func (s *Session[T]) dirtyLocked() bool {
	if !maps.Equal(s.values, s.initial) {
		return true
	}
	return s.editor != nil && !slices.Equal(s.editor.Tags(), s.initialTags)
}

// View snapshots the session.
func (s *Session[T]) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		ID:      s.id,
		Editing: s.id != "",
		State:   s.state,
		Fields:  s.cfg.Schema.Fields(),
		Values:  s.values.Clone(),
		Errors:  s.errors.Clone(),
		Dirty:   s.dirtyLocked(),
	}
	if s.editor != nil {
		v.Tags = s.editor.Tags()
	}
	return v
}

// Set changes one field. A field that already carries an error is
// revalidated immediately.
func (s *Session[T]) Set(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	f, ok := s.field(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	s.values[name] = value
	if _, had := s.errors[name]; had {
		s.checkLocked(f)
	}
	s.state = StateLoaded
	return nil
}

// SetAll applies every entry of v. Fields not present keep their value.
func (s *Session[T]) SetAll(v Values) error {
	for _, name := range slices.Sorted(maps.Keys(v)) {
		if err := s.Set(name, v[name]); err != nil {
			return err
		}
	}
	return nil
}

// SetTags replaces the whole tag list. Kinds without tags reject it with
// ErrUnknownField.
func (s *Session[T]) SetTags(tags []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	if s.editor == nil {
		return fmt.Errorf("%w: tags", ErrUnknownField)
	}
	if err := s.editor.Replace(tags); err != nil {
		return err
	}
	s.state = StateLoaded
	return nil
}

// ValidateField runs one field's rules, as on blur, and returns its message.
func (s *Session[T]) ValidateField(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.field(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return s.checkLocked(f), nil
}

func (s *Session[T]) checkLocked(f Field) string {
	msg := f.Check(s.values[f.Name])
	if msg == "" {
		delete(s.errors, f.Name)
	} else {
		s.errors[f.Name] = msg
	}
	return msg
}

// Validate runs every rule and moves to Valid or Invalid.
func (s *Session[T]) Validate() FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return s.errors.Clone()
	}
	_, errs, _ := s.validateLocked()
	return errs.Clone()
}

func (s *Session[T]) validateLocked() (T, FieldErrors, error) {
	var rec T
	s.state = StateValidating
	errs := Validate(s.cfg.Schema.Fields(), s.values)
	if len(errs) == 0 {
		var err error
		rec, err = s.cfg.Schema.Decode(s.values.Clone())
		var cross FieldErrors
		if errors.As(err, &cross) {
			maps.Copy(errs, cross)
		} else if err != nil {
			s.errors = FieldErrors{}
			s.state = StateFailed
			return rec, s.errors, err
		}
	}
	s.errors = errs
	if len(errs) > 0 {
		s.state = StateInvalid
	} else {
		s.state = StateValid
	}
	return rec, errs, nil
}

// Submit validates and, when valid, commits to the store. Invalid input
// returns FieldErrors (matching ErrInvalid) without touching the store.
// After a commit the session sends a success notification and navigates to
// the list page.
func (s *Session[T]) Submit(ctx context.Context) (T, error) {
	var zero T

	s.mu.Lock()
	if err := s.editableLocked(); err != nil {
		s.mu.Unlock()
		return zero, err
	}
	rec, errs, err := s.validateLocked()
	if err != nil {
		s.mu.Unlock()
		s.observe(OutcomeFailed)
		return zero, fmt.Errorf("decoding %s form: %w", strings.ToLower(s.cfg.Kind), err)
	}
	if len(errs) > 0 {
		out := errs.Clone()
		s.mu.Unlock()
		s.observe(OutcomeInvalid)
		return zero, out
	}
	if s.tags != nil {
		rec = s.tags.WithTags(rec, s.editor.Tags())
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	var saved T
	outcome := OutcomeCreated
	if s.id == "" {
		saved, err = s.cfg.Store.Create(ctx, rec)
	} else {
		outcome = OutcomeUpdated
		saved, err = s.cfg.Store.Update(ctx, s.id, rec)
	}

	s.mu.Lock()
	if err != nil {
		s.state = StateFailed
		s.mu.Unlock()
		s.cfg.Logger.Warn("form submit failed", "kind", s.cfg.Kind, "id", s.id, "error", err)
		noun := strings.ToLower(s.cfg.Kind)
		s.cfg.Notifier.Notify(notify.Error(
			"Unable to save "+noun,
			fmt.Sprintf("The %s could not be saved. Please try again.", noun)))
		s.observe(OutcomeFailed)
		return zero, fmt.Errorf("saving %s: %w", noun, err)
	}
	s.state = StateSubmitted
	s.mu.Unlock()

	if s.cfg.Success != nil {
		s.cfg.Notifier.Notify(s.cfg.Success(saved, s.id != ""))
	}
	s.cfg.Navigator.Navigate(s.cfg.ListPath)
	s.observe(outcome)
	return saved, nil
}

// Cancel abandons the session and navigates to the list page.
func (s *Session[T]) Cancel() error {
	s.mu.Lock()
	if err := s.editableLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = StateCancelled
	s.mu.Unlock()

	s.cfg.Navigator.Navigate(s.cfg.ListPath)
	s.observe(OutcomeCancelled)
	return nil
}

func (s *Session[T]) editableLocked() error {
	switch s.state {
	case StateSubmitting:
		return ErrBusy
	case StateSubmitted, StateCancelled:
		return ErrClosed
	}
	return nil
}

func (s *Session[T]) field(name string) (Field, bool) {
	for _, f := range s.cfg.Schema.Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (s *Session[T]) observe(outcome string) {
	if s.cfg.Observer != nil {
		s.cfg.Observer.ObserveSubmit(s.cfg.Kind, outcome)
	}
}

package form

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/bizdesk/internal/entity"
	"github.com/rpggio/bizdesk/internal/notify"
	"github.com/rpggio/bizdesk/internal/route"
)

type note struct {
	ID    string
	Title string
	Email string
	Start string
	End   string
	Price string
	Tags  []string
}

type noteSchema struct{}

func (noteSchema) Fields() []Field {
	return []Field{
		{Name: "title", Kind: KindText, Required: true, Rules: []Rule{MinLength(2, "Title is required.")}},
		{Name: "email", Kind: KindEmail, Rules: []Rule{Optional(Email("Please enter a valid email address."))}},
		{Name: "start", Kind: KindTime, Rules: []Rule{Clock("Invalid time.")}},
		{Name: "end", Kind: KindTime, Rules: []Rule{Clock("Invalid time.")}},
		{Name: "price", Kind: KindDecimal, Rules: []Rule{Decimal("Price must be a number."), NonNegative("Price must be a positive number.")}},
	}
}

func (noteSchema) Defaults(time.Time) Values {
	return Values{"title": "", "email": "", "start": "09:00", "end": "10:00", "price": "0"}
}

func (noteSchema) Encode(n note) Values {
	return Values{"title": n.Title, "email": n.Email, "start": n.Start, "end": n.End, "price": n.Price}
}

func (noteSchema) Decode(v Values) (note, error) {
	if v["end"] < v["start"] {
		return note{}, FieldErrors{"end": "End time must be after start time."}
	}
	return note{Title: v["title"], Email: v["email"], Start: v["start"], End: v["end"], Price: v["price"]}, nil
}

func (noteSchema) Tags(n note) []string { return n.Tags }

func (noteSchema) WithTags(n note, tags []string) note {
	n.Tags = tags
	return n
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Get(ctx context.Context, id string) (note, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(note), args.Error(1)
}

func (m *mockStore) Create(ctx context.Context, fields note) (note, error) {
	args := m.Called(ctx, fields)
	return args.Get(0).(note), args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, id string, fields note) (note, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(note), args.Error(1)
}

func newConfig(store Store[note]) (Config[note], *notify.Recorder, *route.Recorder) {
	notes := notify.NewRecorder()
	nav := route.NewRecorder("/notes/new")
	return Config[note]{
		Kind:      "Note",
		ListPath:  "/notes",
		Schema:    noteSchema{},
		Store:     store,
		Notifier:  notes,
		Navigator: nav,
		Success: func(n note, editing bool) notify.Notification {
			if editing {
				return notify.Success("Note updated", n.Title+" has been updated successfully.")
			}
			return notify.Success("Note created", n.Title+" has been added successfully.")
		},
	}, notes, nav
}

func TestOpenWithDefaults(t *testing.T) {
	store := &mockStore{}
	cfg, _, _ := newConfig(store)

	s, err := Open(context.Background(), cfg, "")
	require.NoError(t, err)
	require.Equal(t, StateLoaded, s.State())
	require.False(t, s.Editing())
	require.False(t, s.Dirty())
	require.Equal(t, "09:00", s.Values()["start"])
	require.NotNil(t, s.Tags())
	store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestOpenExistingPrefills(t *testing.T) {
	store := &mockStore{}
	existing := note{ID: "1", Title: "Standup", Start: "10:00", End: "11:30", Price: "0", Tags: []string{"daily"}}
	store.On("Get", mock.Anything, "1").Return(existing, nil)
	cfg, _, _ := newConfig(store)

	s, err := Open(context.Background(), cfg, "1")
	require.NoError(t, err)
	require.True(t, s.Editing())
	require.Equal(t, "10:00", s.Values()["start"])
	require.Equal(t, "11:30", s.Values()["end"])
	require.Equal(t, []string{"daily"}, s.Tags().Tags())
}

func TestOpenMissingRecordNotifies(t *testing.T) {
	store := &mockStore{}
	store.On("Get", mock.Anything, "9").Return(note{}, entity.ErrNotFound)
	cfg, notes, nav := newConfig(store)

	s, err := Open(context.Background(), cfg, "9")
	require.Nil(t, s)
	require.ErrorIs(t, err, entity.ErrNotFound)
	got := notes.All()
	require.Len(t, got, 1)
	require.Equal(t, notify.SeverityError, got[0].Severity)
	require.Equal(t, "Note not found", got[0].Title)
	require.False(t, nav.Redirected())
}

func TestSubmitInvalidSkipsStore(t *testing.T) {
	store := &mockStore{}
	cfg, notes, nav := newConfig(store)
	s, err := Open(context.Background(), cfg, "")
	require.NoError(t, err)

	require.NoError(t, s.Set("email", "nope"))
	_, err = s.Submit(context.Background())
	require.ErrorIs(t, err, ErrInvalid)

	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "Title is required.", fe["title"])
	require.Equal(t, "Please enter a valid email address.", fe["email"])
	require.Equal(t, StateInvalid, s.State())
	require.Empty(t, notes.All())
	require.False(t, nav.Redirected())
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitCrossFieldRule(t *testing.T) {
	store := &mockStore{}
	cfg, _, _ := newConfig(store)
	s, err := Open(context.Background(), cfg, "")
	require.NoError(t, err)

	require.NoError(t, s.SetAll(Values{"title": "Late", "start": "11:00", "end": "10:00"}))
	_, err = s.Submit(context.Background())
	require.ErrorIs(t, err, ErrInvalid)
	require.Equal(t, FieldErrors{"end": "End time must be after start time."}, s.Errors())
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitCreates(t *testing.T) {
	store := &mockStore{}
	want := note{Title: "Plan", Start: "09:00", End: "10:00", Price: "12.50", Tags: []string{"a", "b"}}
	store.On("Create", mock.Anything, want).Return(func() note { n := want; n.ID = "n1"; return n }(), nil)
	cfg, notes, nav := newConfig(store)

	s, err := Open(context.Background(), cfg, "")
	require.NoError(t, err)
	require.NoError(t, s.Set("title", "Plan"))
	require.NoError(t, s.Set("price", "12.50"))
	require.NoError(t, s.Tags().Add("a"))
	require.NoError(t, s.Tags().Add("b"))
	require.True(t, s.Dirty())

	saved, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, "n1", saved.ID)
	require.Equal(t, StateSubmitted, s.State())
	require.Equal(t, "/notes", nav.Location())
	require.Equal(t, []notify.Notification{notify.Success("Note created", "Plan has been added successfully.")}, notes.All())
	store.AssertExpectations(t)

	_, err = s.Submit(context.Background())
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, s.Set("title", "x"), ErrClosed)
}

func TestSubmitUpdates(t *testing.T) {
	store := &mockStore{}
	existing := note{ID: "1", Title: "Standup", Start: "10:00", End: "11:30", Price: "0"}
	store.On("Get", mock.Anything, "1").Return(existing, nil)
	updated := note{Title: "Standup v2", Start: "10:00", End: "11:30", Price: "0", Tags: nil}
	store.On("Update", mock.Anything, "1", updated).Return(note{ID: "1", Title: "Standup v2"}, nil)
	cfg, notes, _ := newConfig(store)

	s, err := Open(context.Background(), cfg, "1")
	require.NoError(t, err)
	require.NoError(t, s.Set("title", "Standup v2"))
	_, err = s.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Note updated", notes.All()[0].Title)
	store.AssertExpectations(t)
}

func TestSubmitStoreFailure(t *testing.T) {
	store := &mockStore{}
	store.On("Create", mock.Anything, mock.Anything).Return(note{}, errors.New("disk full"))
	cfg, notes, nav := newConfig(store)

	s, err := Open(context.Background(), cfg, "")
	require.NoError(t, err)
	require.NoError(t, s.Set("title", "Plan"))

	_, err = s.Submit(context.Background())
	require.Error(t, err)
	require.Equal(t, StateFailed, s.State())
	require.Equal(t, notify.SeverityError, notes.All()[0].Severity)
	require.False(t, nav.Redirected())

	require.NoError(t, s.Set("title", "Plan again"))
	require.Equal(t, StateLoaded, s.State())
}

type blockingStore struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingStore) Get(context.Context, string) (note, error) { return note{}, nil }

func (b *blockingStore) Create(_ context.Context, n note) (note, error) {
	close(b.entered)
	<-b.release
	n.ID = "x"
	return n, nil
}

func (b *blockingStore) Update(context.Context, string, note) (note, error) { return note{}, nil }

func TestSubmitWhileSubmittingIsBusy(t *testing.T) {
	store := &blockingStore{entered: make(chan struct{}), release: make(chan struct{})}
	cfg, _, _ := newConfig(store)
	s, err := Open(context.Background(), cfg, "")
	require.NoError(t, err)
	require.NoError(t, s.Set("title", "Plan"))

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = s.Submit(context.Background())
	}()

	<-store.entered
	require.Equal(t, StateSubmitting, s.State())
	_, err = s.Submit(context.Background())
	require.ErrorIs(t, err, ErrBusy)
	require.ErrorIs(t, s.Cancel(), ErrBusy)

	close(store.release)
	wg.Wait()
	require.NoError(t, firstErr)
	require.Equal(t, StateSubmitted, s.State())
}

func TestCancelNavigatesWithoutStore(t *testing.T) {
	store := &mockStore{}
	cfg, notes, nav := newConfig(store)
	s, err := Open(context.Background(), cfg, "")
	require.NoError(t, err)
	require.NoError(t, s.Set("title", "Draft"))

	require.NoError(t, s.Cancel())
	require.Equal(t, StateCancelled, s.State())
	require.Equal(t, "/notes", nav.Location())
	require.Empty(t, notes.All())
	require.ErrorIs(t, s.Cancel(), ErrClosed)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestValidateFieldOnBlur(t *testing.T) {
	cfg, _, _ := newConfig(&mockStore{})
	s, err := Open(context.Background(), cfg, "")
	require.NoError(t, err)

	msg, err := s.ValidateField("title")
	require.NoError(t, err)
	require.Equal(t, "Title is required.", msg)
	require.Contains(t, s.Errors(), "title")

	require.NoError(t, s.Set("title", "OK"))
	require.NotContains(t, s.Errors(), "title")

	_, err = s.ValidateField("nope")
	require.ErrorIs(t, err, ErrUnknownField)
	require.ErrorIs(t, s.Set("nope", "x"), ErrUnknownField)
}

func TestValidateTransitions(t *testing.T) {
	cfg, _, _ := newConfig(&mockStore{})
	s, err := Open(context.Background(), cfg, "")
	require.NoError(t, err)

	require.NotEmpty(t, s.Validate())
	require.Equal(t, StateInvalid, s.State())

	require.NoError(t, s.Set("title", "Good"))
	require.Empty(t, s.Validate())
	require.Equal(t, StateValid, s.State())

	v := s.View()
	require.False(t, v.Editing)
	require.Equal(t, StateValid, v.State)
	require.True(t, v.Dirty)
	require.Len(t, v.Fields, 5)
}

func TestDirtyTracksTags(t *testing.T) {
	cfg, _, _ := newConfig(&mockStore{})
	s, err := Open(context.Background(), cfg, "")
	require.NoError(t, err)

	require.NoError(t, s.Tags().Add("x"))
	require.True(t, s.Dirty())
	require.True(t, s.Tags().Remove("x"))
	require.False(t, s.Dirty())
	require.Empty(t, s.Tags().Tags())
}

// untagged hides noteSchema's tag methods.
type untagged struct{ s noteSchema }

func (u untagged) Fields() []Field               { return u.s.Fields() }
func (u untagged) Defaults(now time.Time) Values { return u.s.Defaults(now) }
func (u untagged) Encode(n note) Values          { return u.s.Encode(n) }
func (u untagged) Decode(v Values) (note, error) { return u.s.Decode(v) }

func TestSetTags(t *testing.T) {
	store := &mockStore{}
	cfg, _, _ := newConfig(store)
	s, err := Open(context.Background(), cfg, "")
	require.NoError(t, err)

	require.NoError(t, s.SetTags([]string{" red ", "blue"}))
	require.Equal(t, []string{"red", "blue"}, s.Tags().Tags())
	require.ErrorIs(t, s.SetTags([]string{"a", "a"}), ErrDuplicateTag)
	require.Equal(t, []string{"red", "blue"}, s.Tags().Tags())

	cfg.Schema = untagged{}
	plain, err := Open(context.Background(), cfg, "")
	require.NoError(t, err)
	require.Nil(t, plain.Tags())
	require.ErrorIs(t, plain.SetTags([]string{"x"}), ErrUnknownField)

	require.NoError(t, plain.Cancel())
	require.ErrorIs(t, plain.SetTags(nil), ErrClosed)
}

package form

import (
	"errors"
	"slices"
	"strings"
	"sync"
)

var (
	ErrEmptyTag     = errors.New("tag is empty")
	ErrDuplicateTag = errors.New("tag already added")
)

// KeyEnter commits the pending tag input.
const KeyEnter = "Enter"

// TagEditor edits an ordered set of tags through a text input buffer.
// Tags compare case-sensitively.
type TagEditor struct {
	mu    sync.Mutex
	input string
	tags  []string
}

// NewTagEditor starts an editor holding tags.
func NewTagEditor(tags []string) *TagEditor {
	return &TagEditor{tags: slices.Clone(tags)}
}

// SetInput replaces the pending input.
func (e *TagEditor) SetInput(s string) {
	e.mu.Lock()
	e.input = s
	e.mu.Unlock()
}

// Input returns the pending input.
func (e *TagEditor) Input() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.input
}

// HandleKey commits the input on Enter and ignores other keys.
func (e *TagEditor) HandleKey(key string) error {
	if key != KeyEnter {
		return nil
	}
	_, err := e.Commit()
	return err
}

// Commit appends the trimmed input and clears it. On error the input is
// left untouched.
func (e *TagEditor) Commit() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tag := strings.TrimSpace(e.input)
	if err := e.check(tag); err != nil {
		return "", err
	}
	e.tags = append(e.tags, tag)
	e.input = ""
	return tag, nil
}

// Add commits tag as if typed and confirmed.
func (e *TagEditor) Add(tag string) error {
	e.SetInput(tag)
	_, err := e.Commit()
	return err
}

// Remove deletes tag and reports whether it was present.
func (e *TagEditor) Remove(tag string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := slices.Index(e.tags, tag)
	if i < 0 {
		return false
	}
	e.tags = slices.Delete(e.tags, i, i+1)
	return true
}

// Replace swaps the whole tag list, rejecting empty or repeated tags.
func (e *TagEditor) Replace(tags []string) error {
	next := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			return ErrEmptyTag
		}
		if slices.Contains(next, t) {
			return ErrDuplicateTag
		}
		next = append(next, t)
	}
	e.mu.Lock()
	e.tags = next
	e.mu.Unlock()
	return nil
}

// Tags returns a copy of the current tags.
func (e *TagEditor) Tags() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.tags)
}

func (e *TagEditor) check(tag string) error {
	if tag == "" {
		return ErrEmptyTag
	}
	if slices.Contains(e.tags, tag) {
		return ErrDuplicateTag
	}
	return nil
}

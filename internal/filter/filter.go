// Package filter derives the visible subset of a record list from a tab
// selection and a free-text query.
package filter

import (
	"fmt"
	"strings"
	"time"
)

// TabAll accepts every record.
const TabAll = "all"

// Query is the user's current filter input.
type Query struct {
	Text string    `json:"q,omitempty"`
	Tab  string    `json:"tab,omitempty"`
	Day  time.Time `json:"day,omitzero"`
}

// Tab is a named predicate. A nil Accept accepts everything.
type Tab[T any] struct {
	Name   string
	Accept func(rec T, q Query) bool
}

// Spec describes how one record kind is filtered.
type Spec[T any] struct {
	// Noun is the plural used in the empty-state message.
	Noun string
	// Hint follows the empty-state sentence.
	Hint       string
	DefaultTab string
	Tabs       []Tab[T]
	// Category is compared exactly against tab names not listed in Tabs.
	// When nil, unlisted tabs match nothing.
	Category func(rec T) string
	// Searchable returns the fields checked for the query text. When nil the
	// text is ignored.
	Searchable func(rec T) []string
}

// Result is the filtered view.
type Result[T any] struct {
	Items        []T    `json:"items"`
	Total        int    `json:"total"`
	Tab          string `json:"tab"`
	Query        string `json:"query,omitempty"`
	EmptyMessage string `json:"emptyMessage,omitempty"`
}

// TabNames lists the tabs of s in display order.
func (s Spec[T]) TabNames() []string {
	names := make([]string, len(s.Tabs))
	for i, t := range s.Tabs {
		names[i] = t.Name
	}
	return names
}

// Match reports whether rec passes both the tab and the text filter.
func (s Spec[T]) Match(rec T, q Query) bool {
	return s.acceptTab(rec, q) && s.acceptText(rec, q.Text)
}

func (s Spec[T]) acceptTab(rec T, q Query) bool {
	tab := s.tab(q)
	for _, t := range s.Tabs {
		if t.Name == tab {
			return t.Accept == nil || t.Accept(rec, q)
		}
	}
	if tab == TabAll {
		return true
	}
	if s.Category == nil {
		return false
	}
	return s.Category(rec) == tab
}

func (s Spec[T]) acceptText(rec T, text string) bool {
	if text == "" || s.Searchable == nil {
		return true
	}
	needle := strings.ToLower(text)
	for _, field := range s.Searchable(rec) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (s Spec[T]) tab(q Query) string {
	if q.Tab != "" {
		return q.Tab
	}
	if s.DefaultTab != "" {
		return s.DefaultTab
	}
	return TabAll
}

// Apply filters recs, preserving their relative order. It never fails.
func Apply[T any](s Spec[T], recs []T, q Query) Result[T] {
	items := make([]T, 0, len(recs))
	for _, rec := range recs {
		if s.Match(rec, q) {
			items = append(items, rec)
		}
	}
	res := Result[T]{
		Items: items,
		Total: len(recs),
		Tab:   s.tab(q),
		Query: q.Text,
	}
	if len(items) == 0 {
		res.EmptyMessage = s.emptyMessage(q)
	}
	return res
}

func (s Spec[T]) emptyMessage(q Query) string {
	noun := s.Noun
	if noun == "" {
		noun = "records"
	}
	msg := fmt.Sprintf("No %s found.", noun)
	if q.Text != "" {
		msg = fmt.Sprintf("No %s found matching %q.", noun, q.Text)
	}
	if s.Hint != "" {
		msg += " " + s.Hint
	}
	return msg
}

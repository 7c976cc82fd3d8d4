// Package i18n looks up interface strings for the active locale.
package i18n

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Locale is a supported language code.
type Locale string

const (
	English    Locale = "en"
	Portuguese Locale = "pt"
)

// DefaultLocale is active until SetLocale is called.
const DefaultLocale = Portuguese

// ErrUnsupportedLocale is returned by SetLocale and ParseLocale.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// ParseLocale validates a locale code.
func ParseLocale(code string) (Locale, error) {
	l := Locale(code)
	if _, ok := dictionaries[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, code)
	}
	return l, nil
}

// Locales lists supported locales in a stable order.
func Locales() []Locale {
	out := make([]Locale, 0, len(dictionaries))
	for l := range dictionaries {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Translator holds the process-wide active locale.
type Translator struct {
	mu     sync.RWMutex
	locale Locale
}

// NewTranslator creates a Translator. An unsupported initial locale falls
// back to DefaultLocale.
func NewTranslator(initial Locale) *Translator {
	if _, ok := dictionaries[initial]; !ok {
		initial = DefaultLocale
	}
	return &Translator{locale: initial}
}

// Locale returns the active locale.
func (t *Translator) Locale() Locale {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.locale
}

// SetLocale switches the active locale.
func (t *Translator) SetLocale(l Locale) error {
	if _, ok := dictionaries[l]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, l)
	}
	t.mu.Lock()
	t.locale = l
	t.mu.Unlock()
	return nil
}

// T returns the string for key in the active locale, or key itself.
func (t *Translator) T(key string) string {
	return Lookup(t.Locale(), key)
}

// Lookup returns the string for key in l, or key itself.
func Lookup(l Locale, key string) string {
	if s, ok := dictionaries[l][key]; ok {
		return s
	}
	return key
}

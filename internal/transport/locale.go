package transport

import (
	"context"
	"net/http"

	"golang.org/x/text/language"

	"github.com/rpggio/bizdesk/internal/i18n"
)

type localeKey struct{}

var (
	locales = i18n.Locales()
	matcher = language.NewMatcher(localeTags(locales))
)

func localeTags(ls []i18n.Locale) []language.Tag {
	tags := make([]language.Tag, len(ls))
	for i, l := range ls {
		tags[i] = language.Make(string(l))
	}
	return tags
}

// LocaleFromContext returns the locale negotiated for the request, if any.
func LocaleFromContext(ctx context.Context) (i18n.Locale, bool) {
	l, ok := ctx.Value(localeKey{}).(i18n.Locale)
	return l, ok
}

// LocaleMiddleware stores the request locale in context. The lang query
// parameter wins over Accept-Language; requests naming no supported locale
// carry none.
func LocaleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l, ok := requestLocale(r); ok {
			ctx := context.WithValue(r.Context(), localeKey{}, l)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLocale(r *http.Request) (i18n.Locale, bool) {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		if l, err := i18n.ParseLocale(lang); err == nil {
			return l, true
		}
	}
	header := r.Header.Get("Accept-Language")
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return locales[idx], true
}

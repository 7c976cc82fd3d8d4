package transport

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

type adminKey struct{}

// Authenticator resolves a bearer token to the admin it was issued to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// AdminFromContext returns the authenticated admin email, if present.
func AdminFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(adminKey{}).(string)
	return email, ok
}

// AuthMiddleware enforces bearer token authentication.
func AuthMiddleware(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}

			email, err := authn.Authenticate(r.Context(), token)
			if err != nil || email == "" {
				writeError(w, http.StatusUnauthorized, "invalid bearer token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), adminKey{}, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

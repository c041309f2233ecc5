package middleware

import (
	"context"
	"net/http"

	"github.com/rogerio-castellano/coffee-maker/internal/auth"
)

type contextKey string

const (
	usernameKey = contextKey("username")
	roleKey     = contextKey("role")
)

// RequireRole rejects requests without a valid bearer token (401) or whose
// token carries a different role (403).
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
			if err != nil {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}

			got, _ := claims["role"].(string)
			if got != role {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			username, _ := claims["username"].(string)
			ctx := context.WithValue(r.Context(), usernameKey, username)
			ctx = context.WithValue(ctx, roleKey, got)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUsername(r *http.Request) string {
	if val, ok := r.Context().Value(usernameKey).(string); ok {
		return val
	}
	return ""
}

func GetRole(r *http.Request) string {
	if val, ok := r.Context().Value(roleKey).(string); ok {
		return val
	}
	return ""
}

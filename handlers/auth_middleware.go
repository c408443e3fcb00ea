package handlers

import (
	"context"
	"net/http"
	"strings"

	"serenespa/auth"
)

type ctxKey string

const UserIDKey ctxKey = "uid"

// RequireAuth guards a route with a bearer token check. Missing header is
// 401, anything wrong with the token itself is 403, with no detail leaked.
func RequireAuth(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw := strings.TrimPrefix(header, "Bearer ")
		if header == "" || raw == header || raw == "" {
			writeError(w, http.StatusUnauthorized, "authorization required")
			return
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			writeError(w, http.StatusForbidden, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next(w, r.WithContext(ctx))
	}
}

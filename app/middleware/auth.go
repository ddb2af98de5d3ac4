package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"microblog/app/auth"
	"microblog/app/models"
	"microblog/app/repositories"
)

type contextKey string

const userContextKey contextKey = "currentUser"

// RequireAuth verifies the bearer token on the request, resolves it to
// a user row and stores the user in the request context. Any failure
// yields a 401 without reaching the wrapped handler.
func RequireAuth(tokens *auth.TokenManager, users repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w)
				return
			}

			email, err := tokens.ParseAccessToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := users.GetByEmail(email)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userContextKey).(*models.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid authentication credentials"})
}

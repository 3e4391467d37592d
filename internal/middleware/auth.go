package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mreyes/gearvault-backend/internal/models"
	"github.com/mreyes/gearvault-backend/internal/services"
)

type contextKey string

const userContextKey contextKey = "auth_user"

// UserLookup resolves a token's user id to a live user record. Injected so
// the middleware can be exercised without a database.
type UserLookup func(ctx context.Context, id string) (*models.User, error)

// Auth guards a route subtree: it requires a valid bearer token, resolves it
// to an existing user, and attaches that user to the request context. Any
// failure short-circuits with a 401 and the handler never runs.
func Auth(secret string, lookup UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r.Header.Get("Authorization"))
			if token == "" {
				unauthorized(w, "Authentication required")
				return
			}

			userID, err := services.VerifyToken(token, secret)
			if err != nil {
				unauthorized(w, "Invalid or expired token")
				return
			}

			user, err := lookup(r.Context(), userID)
			if err != nil {
				// Token subject no longer exists; treat like any bad token.
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the authenticated user attached by Auth, or nil.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

func extractBearerToken(header string) string {
	header = strings.TrimSpace(header)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/it23631960/pearl-logistics-admin/internal/models"
)

type contextKey int

const (
	contextKeyToken contextKey = iota
)

// TokenVerifier validates dashboard session tokens
type TokenVerifier interface {
	VerifyToken(tokenString string) (*models.TokenPayload, error)
}

// Auth verifies the bearer token the dashboard keeps for the session and
// passes its payload down through the request context
func Auth(tv TokenVerifier) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == "" {
				http.Error(w, "bearer token is empty", http.StatusUnauthorized)
				return
			}

			payload, err := tv.VerifyToken(tokenString)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyToken, payload)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromContext extracts the verified token payload from context
func TokenFromContext(ctx context.Context) (*models.TokenPayload, bool) {
	payload, ok := ctx.Value(contextKeyToken).(*models.TokenPayload)
	return payload, ok
}

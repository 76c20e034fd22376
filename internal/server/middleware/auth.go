// Package middleware provides HTTP middleware for authentication and request
// logging.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// profileIDKey is the context key for storing the authenticated profile ID.
const profileIDKey ContextKey = "profileID"

// TokenValidator is an interface for validating JWT tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (ProfileIDGetter, error)
}

// ProfileIDGetter is an interface for extracting the profile ID from token
// claims.
type ProfileIDGetter interface {
	GetProfileID() uuid.UUID
}

// RequireOwner creates middleware that validates JWT bearer tokens and adds
// the authenticated owner's profile ID to the request context.
func RequireOwner(jwtService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Handle case-insensitive "Bearer" prefix
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), profileIDKey, claims.GetProfileID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetProfileID extracts the authenticated profile ID from the request context.
func GetProfileID(r *http.Request) (uuid.UUID, error) {
	profileID, ok := r.Context().Value(profileIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("profile ID not found in request context")
	}
	return profileID, nil
}

// ProfileIDKey returns the context key for the profile ID (for testing purposes).
func ProfileIDKey() ContextKey {
	return profileIDKey
}

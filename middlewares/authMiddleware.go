package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	helper "github.com/kalviumcommunity/s81-Kausiki-CraveCart/helper"
)

// Context keys to store user information
type contextKey string

const (
	EmailKey contextKey = "email"
	RoleKey  contextKey = "role"
	UidKey   contextKey = "uid"
)

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// Authentication middleware for Gorilla Mux
func Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientToken := r.Header.Get("Authorization")
		if clientToken == "" {
			writeAuthError(w, http.StatusUnauthorized, "No Authorization header provided")
			return
		}

		// Token format should be "Bearer <token>"
		tokenParts := strings.Split(clientToken, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			writeAuthError(w, http.StatusUnauthorized, "Invalid Authorization format")
			return
		}

		claims, errMsg := helper.ValidateToken(tokenParts[1])
		if errMsg != "" {
			writeAuthError(w, http.StatusUnauthorized, errMsg)
			return
		}

		// Store user details in the request context
		ctx := context.WithValue(r.Context(), EmailKey, claims.Email)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		ctx = context.WithValue(ctx, UidKey, claims.Uid)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole allows the wrapped handler only for the listed roles.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(RoleKey).(string)
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeAuthError(w, http.StatusForbidden, "Forbidden")
		})
	}
}

// GetUserFromContext retrieves user data from the request context
func GetUserFromContext(r *http.Request) (email, role, uid string) {
	email, _ = r.Context().Value(EmailKey).(string)
	role, _ = r.Context().Value(RoleKey).(string)
	uid, _ = r.Context().Value(UidKey).(string)
	return
}

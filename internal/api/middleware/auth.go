package middleware

import (
	"context"
	"net/http"

	"github.com/parkms/PMS-ParkingService/internal/api/handlers"
	"github.com/parkms/PMS-ParkingService/internal/domain"
)

type contextKey string

const roleContextKey contextKey = "callerRole"

// RoleHeader carries the caller role on protected endpoints.
const RoleHeader = "X-User-Role"

const (
	msgMissingRole = "missing " + RoleHeader + " header"
	msgInvalidRole = "unknown role"
)

// Auth requires a valid X-User-Role header and stores the parsed role
// in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(RoleHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingRole)
			return
		}

		role, err := domain.ParseRole(raw)
		if err != nil {
			handlers.RespondUnauthorized(w, msgInvalidRole)
			return
		}

		ctx := context.WithValue(r.Context(), roleContextKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRole retrieves the caller role stored by Auth.
func GetRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(roleContextKey).(domain.Role)
	return role, ok
}

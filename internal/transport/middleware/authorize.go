package middleware

import (
	"log/slog"
	"net/http"

	"github.com/adiwarna/maintenance-management/internal/auth"
)

// RequireManager gates mutating routes behind the manager/admin capability.
func RequireManager(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := auth.UserFromContext(r.Context())
			if !ok || user == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !user.CanManage() {
				logger.Warn("access denied: manager capability required",
					"user_id", user.ID,
					"role", user.Role)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogem/geoattend/userctx"
)

const (
	// AdminSecretHeader carries the shared administrator secret
	AdminSecretHeader = "X-Admin-Secret"
	// AdminNameHeader optionally names the administrator for audit entries
	AdminNameHeader = "X-Admin-Name"
	// DefaultAdminActor is recorded when no administrator name is given
	DefaultAdminActor = "admin"
)

// RequireAdminSecret ensures the request carries the administrator secret
// matching the bcrypt hash. Without a configured hash every request is refused.
func RequireAdminSecret(secretHash string, log *zap.Logger) func(http.Handler) http.Handler {
	hash := []byte(secretHash)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(hash) == 0 {
				writeAuthError(w, http.StatusServiceUnavailable, "administrator access is not configured")
				return
			}

			secret := r.Header.Get(AdminSecretHeader)
			if secret == "" {
				writeAuthError(w, http.StatusUnauthorized, "administrator secret required")
				return
			}

			if err := bcrypt.CompareHashAndPassword(hash, []byte(secret)); err != nil {
				ip := userctx.GetClientIP(r.Context())
				if ip == "" {
					ip = getIPAddress(r)
				}
				log.Warn("rejected administrator secret",
					zap.String("path", r.URL.Path),
					zap.String("ip", ip),
				)
				writeAuthError(w, http.StatusUnauthorized, "invalid administrator secret")
				return
			}

			actor := strings.TrimSpace(r.Header.Get(AdminNameHeader))
			if actor == "" {
				actor = DefaultAdminActor
			}

			// Add actor to request context for use in handlers
			ctx := userctx.SetActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// HashSecret returns the bcrypt hash to configure as ADMIN_SECRET_HASH
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized", "message": message})
}

package httpapi

import (
	"crypto/subtle"
	"net/http"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/config"
)

// APIKeyAuth requires a configured X-API-Key. With no keys configured every
// request passes.
func APIKeyAuth(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(cfg.APIKeys) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			key := r.Header.Get("X-API-Key")
			if key == "" {
				http.Error(w, "api key required", http.StatusUnauthorized)
				return
			}
			ok := false
			for _, k := range cfg.APIKeys {
				if subtle.ConstantTimeCompare([]byte(k.Key), []byte(key)) == 1 {
					ok = true
					break
				}
			}
			if !ok {
				http.Error(w, "invalid api key", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

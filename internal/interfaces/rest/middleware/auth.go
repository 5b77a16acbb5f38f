package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/eggypro/storefront-gateway/internal/application"
	"github.com/eggypro/storefront-gateway/internal/interfaces/rest"
)

// AdminAuth gates administrative writes behind a static bearer token.
// The comparison is constant-time and failures never echo the expected
// value.
func AdminAuth(token string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			presented, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || presented == "" {
				rest.WriteError(w, application.NewUnauthorizedError(), logger, false)
				return
			}

			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				logger.Warn("admin request with invalid credential",
					"method", r.Method,
					"path", r.URL.Path,
				)
				rest.WriteError(w, application.NewForbiddenError(), logger, false)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

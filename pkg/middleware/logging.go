package middleware

import (
	"net/http"
	"time"

	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/logger"
)

// LoggingMiddleware logs every request with method, path and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		logger.Log.WithFields(map[string]interface{}{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("Request handled")
	})
}

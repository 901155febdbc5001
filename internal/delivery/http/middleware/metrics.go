package middleware

import (
	"net/http"
	"time"

	"offerdirectory/internal/metrics"
)

// Metrics records request count, duration and in-flight requests. Requests are
// labelled with the matched route pattern, not the raw path, so view ids do
// not explode label cardinality.
func Metrics(m *metrics.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		m.RecordHTTPRequest(r.Method, path, wrapped.status, time.Since(start))
	})
}

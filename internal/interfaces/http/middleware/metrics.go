package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/prometheus"
)

// Metrics records request counts, durations and in-flight gauges per
// route.  The chi route pattern is used as the path label so parameterized
// routes do not explode label cardinality.
func Metrics(m *prometheus.AppMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m == nil {
				next.ServeHTTP(w, r)
				return
			}

			// The matched chi pattern is only known after routing, so the
			// in-flight gauge uses the raw path captured up front.
			rawPath := r.URL.Path
			m.HTTPActiveRequests.WithLabelValues(r.Method, rawPath).Inc()
			defer m.HTTPActiveRequests.WithLabelValues(r.Method, rawPath).Dec()

			ww := &wrappedResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(ww, r)

			prometheus.RecordHTTPRequest(m, r.Method, routePattern(r), ww.statusCode, time.Since(start))
		})
	}
}

// routePattern resolves the matched chi pattern after routing; requests
// that matched no route fall back to the raw path.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

//Personal.AI order the ending

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritrav/veritrav/internal/application/discovery"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/prometheus"
	"github.com/veritrav/veritrav/internal/interfaces/http/handlers"
	"github.com/veritrav/veritrav/internal/interfaces/http/middleware"
)

type noopDiscoverer struct{}

func (noopDiscoverer) Discover(context.Context, discovery.Request) (*discovery.Result, error) {
	return &discovery.Result{}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace: "veritrav_router_test",
	}, logging.NewNopLogger())
	require.NoError(t, err)

	return NewRouter(RouterConfig{
		DiscoveryHandler: handlers.NewDiscoveryHandler(noopDiscoverer{}, logging.NewNopLogger()),
		HealthHandler:    handlers.NewHealthHandler("test", nil),
		Logger:           logging.NewNopLogger(),
		Metrics:          prometheus.NewAppMetrics(collector),
		MetricsCollector: collector,
		EnableCORS:       true,
		CORSConfig:       middleware.DefaultCORSConfig(),
	})
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	// Drive one API request so the HTTP metrics have a sample.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/discoveries",
		strings.NewReader(`{"prompt": "맛집", "region": {"label": "서울", "center": {"lat": 37.5, "lng": 127.0}, "radius_km": 5}}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "veritrav_router_test_http_requests_total")
}

func TestRouterCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/discoveries", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nonexistent", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

//Personal.AI order the ending

// Package http wires the chi route tree and the HTTP server for the
// discovery API.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/prometheus"
	"github.com/veritrav/veritrav/internal/interfaces/http/handlers"
	"github.com/veritrav/veritrav/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handlers and middleware dependencies for the
// complete route tree.
type RouterConfig struct {
	DiscoveryHandler    *handlers.DiscoveryHandler
	VerificationHandler *handlers.VerificationHandler
	HealthHandler       *handlers.HealthHandler

	Logger           logging.Logger
	Metrics          *prometheus.AppMetrics
	MetricsCollector prometheus.MetricsCollector

	EnableCORS bool
	CORSConfig middleware.CORSConfig
}

// NewRouter constructs the route tree: public probes, the metrics
// endpoint and the versioned API group.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if cfg.EnableCORS {
		r.Use(middleware.CORS(cfg.CORSConfig))
	}
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogging(cfg.Logger, middleware.DefaultLoggingConfig()))
	}
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsCollector != nil {
		r.Handle("/metrics", cfg.MetricsCollector.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		if cfg.DiscoveryHandler != nil {
			api.Post("/discoveries", cfg.DiscoveryHandler.Discover)
		}
		if cfg.VerificationHandler != nil {
			api.Get("/regions/{region}/verifications", cfg.VerificationHandler.ListByRegion)
		}
	})

	return r
}

//Personal.AI order the ending

package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/prometheus"
)

// HealthChecker is a component that can report its own health.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// HealthCheckerFunc adapts a named function to the HealthChecker interface.
type HealthCheckerFunc struct {
	ComponentName string
	CheckFunc     func(ctx context.Context) error
}

func (f HealthCheckerFunc) Name() string                    { return f.ComponentName }
func (f HealthCheckerFunc) Check(ctx context.Context) error { return f.CheckFunc(ctx) }

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checkers []HealthChecker
	version  string
	startAt  time.Time
	metrics  *prometheus.AppMetrics
}

// NewHealthHandler builds the handler; checkers are probed on readiness.
func NewHealthHandler(version string, metrics *prometheus.AppMetrics, checkers ...HealthChecker) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		version:  version,
		startAt:  time.Now(),
		metrics:  metrics,
	}
}

// LivenessResponse is the body of GET /healthz.
type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// ReadinessResponse is the body of GET /readyz.
type ReadinessResponse struct {
	Status     string                    `json:"status"`
	Components map[string]ComponentCheck `json:"components,omitempty"`
}

// ComponentCheck is the probed state of one dependency.
type ComponentCheck struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Liveness always returns 200 while the process runs.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LivenessResponse{
		Status:  "alive",
		Version: h.version,
		Uptime:  time.Since(h.startAt).Truncate(time.Second).String(),
	})
}

// Readiness probes every registered dependency concurrently and returns
// 503 when any is down.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if len(h.checkers) == 0 {
		writeJSON(w, http.StatusOK, ReadinessResponse{Status: "ready"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var mu sync.Mutex
	components := make(map[string]ComponentCheck, len(h.checkers))
	allHealthy := true

	var wg sync.WaitGroup
	for _, checker := range h.checkers {
		wg.Add(1)
		go func(c HealthChecker) {
			defer wg.Done()
			start := time.Now()
			err := c.Check(ctx)
			latency := time.Since(start)

			check := ComponentCheck{Status: "up", Latency: latency.Truncate(time.Millisecond).String()}
			up := 1.0
			if err != nil {
				check.Status = "down"
				check.Error = err.Error()
				up = 0
			}
			if h.metrics != nil {
				h.metrics.HealthCheckStatus.WithLabelValues(c.Name()).Set(up)
			}

			mu.Lock()
			components[c.Name()] = check
			if err != nil {
				allHealthy = false
			}
			mu.Unlock()
		}(checker)
	}
	wg.Wait()

	resp := ReadinessResponse{Status: "ready", Components: components}
	status := http.StatusOK
	if !allHealthy {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

//Personal.AI order the ending

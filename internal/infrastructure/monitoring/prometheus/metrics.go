package prometheus

import (
	"strconv"
	"time"
)

// AppMetrics holds every metric the service records, grouped by layer.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Discovery pipeline
	DiscoveryRequestsTotal  CounterVec
	DiscoveryStageDuration  HistogramVec
	DiscoveryCandidateCount HistogramVec
	DiscoveryAcceptedCount  HistogramVec
	DiscoveryFallbackTotal  CounterVec

	// Providers
	ProviderRequestsTotal   CounterVec
	ProviderRequestDuration HistogramVec

	// Cache
	CacheHitsTotal   CounterVec
	CacheMissesTotal CounterVec

	// Route construction
	RouteBuildDuration HistogramVec
	RouteClusterCount  HistogramVec

	// Infrastructure
	DBQueryDuration   HistogramVec
	HealthCheckStatus GaugeVec
	ErrorsTotal       CounterVec
}

// Default buckets tuned to the pipeline's latency profile: HTTP and DB in
// sub-second ranges, full discovery runs dominated by external crawls.
var (
	DefaultHTTPDurationBuckets      = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultDiscoveryDurationBuckets = []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120}
	DefaultCountBuckets             = []float64{0, 1, 3, 5, 10, 20, 50, 100}
	DefaultDBDurationBuckets        = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 5}
)

// NewAppMetrics registers every application metric on the collector.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests", "In-flight HTTP requests", "method", "path")

	m.DiscoveryRequestsTotal = collector.RegisterCounter("discovery_requests_total", "Discovery runs", "status")
	m.DiscoveryStageDuration = collector.RegisterHistogram("discovery_stage_duration_seconds", "Duration per pipeline stage", DefaultDiscoveryDurationBuckets, "stage")
	m.DiscoveryCandidateCount = collector.RegisterHistogram("discovery_candidate_count", "Candidates found before filtering", DefaultCountBuckets, "source")
	m.DiscoveryAcceptedCount = collector.RegisterHistogram("discovery_accepted_count", "Places accepted after verification", DefaultCountBuckets)
	m.DiscoveryFallbackTotal = collector.RegisterCounter("discovery_fallback_total", "Fallback list activations", "region")

	m.ProviderRequestsTotal = collector.RegisterCounter("provider_requests_total", "External provider calls", "provider", "status")
	m.ProviderRequestDuration = collector.RegisterHistogram("provider_request_duration_seconds", "External provider call duration", DefaultHTTPDurationBuckets, "provider")

	m.CacheHitsTotal = collector.RegisterCounter("cache_hits_total", "Cache hits", "cache")
	m.CacheMissesTotal = collector.RegisterCounter("cache_misses_total", "Cache misses", "cache")

	m.RouteBuildDuration = collector.RegisterHistogram("route_build_duration_seconds", "Route construction duration", DefaultDBDurationBuckets, "city")
	m.RouteClusterCount = collector.RegisterHistogram("route_cluster_count", "District clusters per route", DefaultCountBuckets)

	m.DBQueryDuration = collector.RegisterHistogram("db_query_duration_seconds", "Database query duration", DefaultDBDurationBuckets, "operation")
	m.HealthCheckStatus = collector.RegisterGauge("health_check_status", "Health status per component (1=up, 0=down)", "component")
	m.ErrorsTotal = collector.RegisterCounter("errors_total", "Errors by component and code", "component", "code")

	return m
}

// Helpers keep call sites to one line.

func RecordHTTPRequest(m *AppMetrics, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordProviderCall(m *AppMetrics, provider string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.ProviderRequestsTotal.WithLabelValues(provider, status).Inc()
	m.ProviderRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

func RecordCacheAccess(m *AppMetrics, cache string, hit bool) {
	if hit {
		m.CacheHitsTotal.WithLabelValues(cache).Inc()
	} else {
		m.CacheMissesTotal.WithLabelValues(cache).Inc()
	}
}

func RecordError(m *AppMetrics, component, code string) {
	m.ErrorsTotal.WithLabelValues(component, code).Inc()
}

//Personal.AI order the ending

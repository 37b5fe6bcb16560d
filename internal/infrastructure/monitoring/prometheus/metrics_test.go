package prometheus

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
)

func newTestCollector(t *testing.T) MetricsCollector {
	t.Helper()
	collector, err := NewMetricsCollector(CollectorConfig{Namespace: "veritrav_test"}, logging.NewNopLogger())
	require.NoError(t, err)
	return collector
}

func scrape(t *testing.T, collector MetricsCollector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewMetricsCollectorRequiresNamespace(t *testing.T) {
	_, err := NewMetricsCollector(CollectorConfig{}, logging.NewNopLogger())
	assert.Error(t, err)
}

func TestCounterRoundTrip(t *testing.T) {
	collector := newTestCollector(t)
	vec := collector.RegisterCounter("events_total", "Test events", "kind")

	vec.WithLabelValues("a").Inc()
	vec.WithLabelValues("a").Add(2)
	vec.WithLabelValues("b").Inc()

	body := scrape(t, collector)
	assert.Contains(t, body, `veritrav_test_events_total{kind="a"} 3`)
	assert.Contains(t, body, `veritrav_test_events_total{kind="b"} 1`)
}

func TestDuplicateRegistrationReturnsExisting(t *testing.T) {
	collector := newTestCollector(t)

	first := collector.RegisterCounter("dup_total", "dup", "kind")
	second := collector.RegisterCounter("dup_total", "dup", "kind")

	first.WithLabelValues("x").Inc()
	second.WithLabelValues("x").Inc()

	body := scrape(t, collector)
	assert.Contains(t, body, `veritrav_test_dup_total{kind="x"} 2`,
		"both handles must feed the same underlying counter")
}

func TestTypeMismatchDegradesToNoop(t *testing.T) {
	collector := newTestCollector(t)

	collector.RegisterCounter("mixed_total", "as counter", "kind")
	gauge := collector.RegisterGauge("mixed_total", "as gauge", "kind")

	// Must not panic; the mismatched registration is inert.
	gauge.WithLabelValues("x").Set(5)
}

func TestAppMetricsRegisterAndRecord(t *testing.T) {
	collector := newTestCollector(t)
	m := NewAppMetrics(collector)

	RecordHTTPRequest(m, "POST", "/api/v1/discovery", 200, 120*time.Millisecond)
	RecordCacheAccess(m, "places", true)
	RecordCacheAccess(m, "places", false)
	RecordProviderCall(m, "websearch", nil, 50*time.Millisecond)
	RecordProviderCall(m, "websearch", errors.New("timeout"), time.Second)
	RecordError(m, "discovery", "DISC_001")
	m.DiscoveryFallbackTotal.WithLabelValues("서울").Inc()

	body := scrape(t, collector)
	assert.Contains(t, body, `veritrav_test_http_requests_total{method="POST",path="/api/v1/discovery",status_code="200"} 1`)
	assert.Contains(t, body, `veritrav_test_cache_hits_total{cache="places"} 1`)
	assert.Contains(t, body, `veritrav_test_cache_misses_total{cache="places"} 1`)
	assert.Contains(t, body, `veritrav_test_provider_requests_total{provider="websearch",status="failure"} 1`)
	assert.Contains(t, body, `veritrav_test_provider_requests_total{provider="websearch",status="success"} 1`)
	assert.Contains(t, body, `veritrav_test_errors_total{code="DISC_001",component="discovery"} 1`)
}

func TestTimerObservesElapsed(t *testing.T) {
	collector := newTestCollector(t)
	vec := collector.RegisterHistogram("op_duration_seconds", "op", nil, "op")

	timer := NewTimer(vec.WithLabelValues("test"))
	timer.ObserveDuration()

	body := scrape(t, collector)
	assert.Contains(t, body, `veritrav_test_op_duration_seconds_count{op="test"} 1`)
}

func TestNilTimerHistogramIsSafe(t *testing.T) {
	timer := NewTimer(nil)
	timer.ObserveDuration()
}

//Personal.AI order the ending

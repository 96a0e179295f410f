package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatherValue(t *testing.T, registry *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := registry.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metrics:
		for _, metric := range family.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if want, ok := labels[pair.GetName()]; ok && want != pair.GetValue() {
					continue metrics
				}
			}
			switch {
			case metric.GetCounter() != nil:
				return metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				return metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				return float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}
	t.Fatalf("metric %s %v not found", name, labels)
	return 0
}

func TestPrometheusMetrics_RecordsKnownNames(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry)

	metrics.IncrementCounter("sync.batch", map[string]string{"status": "success"})
	metrics.IncrementCounter("sync.batch", map[string]string{"status": "success"})
	metrics.IncrementCounter("provider.request", map[string]string{"endpoint": "/transactions/sync", "status": "ok"})
	metrics.IncrementCounter("dashboard.component_error", map[string]string{"component": ComponentForecast})
	metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
	metrics.RecordGauge("sync.accepted", 7, nil)
	metrics.RecordGauge("circuit_breaker.state", float64(StateOpen), map[string]string{"service": "plaid"})
	metrics.RecordProcessingTime("dashboard.compute", 12*time.Millisecond)
	metrics.IncrementCounter("http.panic", map[string]string{"method": "GET", "route": "/api/v1/dashboard"})

	assert.Equal(t, 2.0, gatherValue(t, registry, "budget_sync_batches_total", map[string]string{"status": "success"}))
	assert.Equal(t, 1.0, gatherValue(t, registry, "budget_provider_requests_total", map[string]string{"endpoint": "/transactions/sync"}))
	assert.Equal(t, 1.0, gatherValue(t, registry, "budget_dashboard_component_errors_total", map[string]string{"component": "forecast"}))
	assert.Equal(t, 1.0, gatherValue(t, registry, "authentication_events_total", nil))
	assert.Equal(t, 7.0, gatherValue(t, registry, "budget_sync_transactions_total", map[string]string{"outcome": "accepted"}))
	assert.Equal(t, 1.0, gatherValue(t, registry, "circuit_breaker_state", map[string]string{"service": "plaid"}))
	assert.Equal(t, 1.0, gatherValue(t, registry, "budget_http_panics_total", map[string]string{"route": "/api/v1/dashboard"}))
	assert.Equal(t, 1.0, gatherValue(t, registry, "budget_dashboard_duration_milliseconds", nil))
}

func TestPrometheusMetrics_UnknownNamesAreIgnored(t *testing.T) {
	metrics := NewPrometheusMetrics(prometheus.NewRegistry())

	assert.NotPanics(t, func() {
		metrics.IncrementCounter("nope", nil)
		metrics.RecordGauge("nope", 1, nil)
		metrics.RecordProcessingTime("nope", time.Second)
	})
}

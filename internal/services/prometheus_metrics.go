package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	syncBatches               *prometheus.CounterVec
	syncTransactions          *prometheus.CounterVec
	syncDuration              prometheus.Histogram
	syncAllDuration           prometheus.Histogram
	linkSyncs                 *prometheus.CounterVec
	providerRequests          *prometheus.CounterVec
	providerDuration          prometheus.Histogram
	circuitBreakerState       *prometheus.GaugeVec
	dashboardsComputed        *prometheus.CounterVec
	dashboardDuration         prometheus.Histogram
	dashboardComponentErrors  *prometheus.CounterVec
	authenticationEventsTotal *prometheus.CounterVec
	httpPanics                *prometheus.CounterVec
}

// NewPrometheusMetrics registers collectors with registerer, or with the
// default registry when registerer is nil.
func NewPrometheusMetrics(registerer prometheus.Registerer) MetricsRecorderInterface {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		syncBatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_sync_batches_total",
				Help: "Total number of transaction batches stored",
			},
			[]string{"status"},
		),
		syncTransactions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_sync_transactions_total",
				Help: "Provider records by outcome",
			},
			[]string{"outcome"},
		),
		syncDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_sync_batch_duration_milliseconds",
				Help:    "Time to normalize and store a batch in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		syncAllDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_sync_all_duration_seconds",
				Help:    "Time to sync every bank link in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		linkSyncs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_bank_link_syncs_total",
				Help: "Bank link syncs by status",
			},
			[]string{"status"},
		),
		providerRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_provider_requests_total",
				Help: "Requests to the bank data provider",
			},
			[]string{"endpoint", "status"},
		),
		providerDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_provider_request_duration_seconds",
				Help:    "Bank data provider request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		dashboardsComputed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_dashboards_total",
				Help: "Dashboards computed by status",
			},
			[]string{"status"},
		),
		dashboardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_dashboard_duration_milliseconds",
				Help:    "Dashboard computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		dashboardComponentErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_dashboard_component_errors_total",
				Help: "Dashboard stages that failed",
			},
			[]string{"component"},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		httpPanics: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_http_panics_total",
				Help: "Handler panics recovered by route",
			},
			[]string{"method", "route"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "sync.batch":
		m.syncBatches.WithLabelValues(status).Inc()
	case "sync.link":
		m.linkSyncs.WithLabelValues(status).Inc()
	case "provider.request":
		m.providerRequests.WithLabelValues(tags["endpoint"], status).Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case "dashboard.computed":
		m.dashboardsComputed.WithLabelValues(status).Inc()
	case "dashboard.component_error":
		if component := tags["component"]; component != "" {
			m.dashboardComponentErrors.WithLabelValues(component).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	case "http.panic":
		m.httpPanics.WithLabelValues(tags["method"], tags["route"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "sync.batch":
		m.syncDuration.Observe(float64(duration.Milliseconds()))
	case "sync.all":
		m.syncAllDuration.Observe(duration.Seconds())
	case "provider.request":
		m.providerDuration.Observe(duration.Seconds())
	case "dashboard.compute":
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "sync.accepted":
		m.syncTransactions.WithLabelValues("accepted").Add(value)
	case "sync.skipped":
		m.syncTransactions.WithLabelValues("skipped").Add(value)
	case "sync.duplicates":
		m.syncTransactions.WithLabelValues("duplicate").Add(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}

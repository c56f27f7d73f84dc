package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricListRequest          = "transaction_list_request"
	MetricListDuration         = "transaction_list"
	MetricFilterOptionsRequest = "filter_options_request"
	MetricFilterOptionsRefresh = "filter_options_refresh"
	MetricCircuitBreakerState  = "circuit_breaker_state"
	MetricImportRows           = "import_rows"
	MetricDatasetSize          = "dataset_transactions"
)

type PrometheusMetrics struct {
	listRequests          *prometheus.CounterVec
	listDuration          prometheus.Histogram
	filterOptionsRequests *prometheus.CounterVec
	filterOptionsRefresh  prometheus.Histogram
	circuitBreakerState   *prometheus.GaugeVec
	importRows            *prometheus.CounterVec
	datasetSize           prometheus.Gauge
}

// NewPrometheusMetrics registers the service collectors with reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		listRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_list_requests_total",
				Help: "Total number of transaction listing requests",
			},
			[]string{"status"},
		),
		listDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_list_duration_seconds",
				Help:    "Transaction listing duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		filterOptionsRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filter_options_requests_total",
				Help: "Total number of filter option requests by source",
			},
			[]string{"source", "status"},
		),
		filterOptionsRefresh: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "filter_options_refresh_duration_seconds",
				Help:    "Duration of a full filter options enumeration in seconds",
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
		importRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "import_rows_total",
				Help: "Total number of dataset rows processed by the importer",
			},
			[]string{"status"},
		),
		datasetSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dataset_transactions",
				Help: "Number of transactions in the store after the last import",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricListRequest:
		if status != "" {
			m.listRequests.WithLabelValues(status).Inc()
		}
	case MetricFilterOptionsRequest:
		m.filterOptionsRequests.WithLabelValues(tags["source"], status).Inc()
	case MetricImportRows:
		if status != "" {
			m.importRows.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricListDuration:
		m.listDuration.Observe(duration.Seconds())
	case MetricFilterOptionsRefresh:
		m.filterOptionsRefresh.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricImportRows:
		if status := tags["status"]; status != "" {
			m.importRows.WithLabelValues(status).Add(value)
		}
	case MetricDatasetSize:
		m.datasetSize.Set(value)
	}
}

// NoopMetrics discards every measurement
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string)     {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}

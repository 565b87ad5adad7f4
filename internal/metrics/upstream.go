// Package metrics provides Prometheus metrics for calls to the Open-Meteo upstreams
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Upstream endpoint labels
const (
	EndpointGeocoding      = "geocoding"
	EndpointHourlyForecast = "forecast_hourly"
	EndpointDailyForecast  = "forecast_daily"
)

// Error type labels
const (
	ErrorTypeTransport = "transport"
	ErrorTypeStatus    = "status"
	ErrorTypeDecode    = "decode"
	ErrorTypeShape     = "shape"
)

// UpstreamMetrics contains Prometheus metrics for upstream API calls
type UpstreamMetrics struct {
	requestsTotal   *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewUpstreamMetrics creates and registers upstream metrics on registry
func NewUpstreamMetrics(registry prometheus.Registerer) (*UpstreamMetrics, error) {
	m := &UpstreamMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Total number of requests to Open-Meteo endpoints",
			},
			[]string{"endpoint", "status_code"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_errors_total",
				Help: "Total number of failed Open-Meteo requests",
			},
			[]string{"endpoint", "error_type"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "upstream_request_duration_seconds",
				Help: "Time taken by Open-Meteo requests",
				// 10ms .. ~10s
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"endpoint"},
		),
	}
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Describe implements prometheus.Collector
func (m *UpstreamMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.requestsTotal.Describe(ch)
	m.errorsTotal.Describe(ch)
	m.requestDuration.Describe(ch)
}

// Collect implements prometheus.Collector
func (m *UpstreamMetrics) Collect(ch chan<- prometheus.Metric) {
	m.requestsTotal.Collect(ch)
	m.errorsTotal.Collect(ch)
	m.requestDuration.Collect(ch)
}

// RecordRequest records a completed upstream round trip. Safe on a nil receiver.
func (m *UpstreamMetrics) RecordRequest(endpoint string, statusCode int, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
	m.requestDuration.WithLabelValues(endpoint).Observe(seconds)
}

// RecordError records a failed upstream call. Safe on a nil receiver.
func (m *UpstreamMetrics) RecordError(endpoint, errorType string) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(endpoint, errorType).Inc()
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records state-store activity.
type StoreMetrics struct {
	dispatches  *prometheus.CounterVec
	remoteCalls *prometheus.CounterVec
}

// NewStoreMetrics registers the store metrics on the provided registerer. A
// nil registerer yields a no-op collector, which tests rely on.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	dispatches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_dispatch_total",
		Help: "Actions dispatched to the state store.",
	}, []string{"action"})
	remoteCalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_remote_call_total",
		Help: "Remote call lifecycle outcomes observed by the store.",
	}, []string{"operation", "outcome"})
	reg.MustRegister(dispatches, remoteCalls)
	return &StoreMetrics{
		dispatches:  dispatches,
		remoteCalls: remoteCalls,
	}
}

// IncDispatch counts one dispatched action.
func (m *StoreMetrics) IncDispatch(actionType string) {
	if m == nil || m.dispatches == nil {
		return
	}
	m.dispatches.WithLabelValues(normalizeLabel(actionType)).Inc()
}

// IncRemoteCall counts one terminal remote-call outcome.
func (m *StoreMetrics) IncRemoteCall(operation, outcome string) {
	if m == nil || m.remoteCalls == nil {
		return
	}
	m.remoteCalls.WithLabelValues(normalizeLabel(operation), normalizeLabel(outcome)).Inc()
}

// HTTPMetrics records request metadata for the mock API.
type HTTPMetrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

// NewHTTPMetrics registers the HTTP metrics on the provided registerer.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of handled HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Handled HTTP requests by status class.",
	}, []string{"method", "route", "status"})
	reg.MustRegister(duration, requests)
	return &HTTPMetrics{
		duration: duration,
		requests: requests,
	}
}

// Observe records one handled request.
func (m *HTTPMetrics) Observe(method, route, status string, elapsed time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(method), normalizeLabel(route)).Observe(elapsed.Seconds())
	m.requests.WithLabelValues(normalizeLabel(method), normalizeLabel(route), normalizeLabel(status)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

// Package metrics provides Prometheus observability for the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// HTTP traffic by method, route and status
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Moderation outcomes by resulting status
	Decisions *prometheus.CounterVec

	// Enrollment attempts by outcome ("ok", "full", "duplicate", "error")
	Enrollments *prometheus.CounterVec
}

// New creates a new Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers all metrics on the given registerer. Tests pass a fresh
// registry so repeated setups do not collide.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "socialpizza_http_requests_total",
			Help: "Total HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),

		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "socialpizza_http_request_duration_seconds",
			Help:    "HTTP request duration by method and route",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),

		Decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "socialpizza_event_decisions_total",
			Help: "Total moderation decisions by resulting status",
		}, []string{"status"}),

		Enrollments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "socialpizza_enrollments_total",
			Help: "Total enrollment attempts by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveHTTP records one finished HTTP request.
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m != nil {
		m.HTTPRequests.WithLabelValues(method, route, status).Inc()
		m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
	}
}

// IncrementDecision records a moderation decision outcome.
func (m *Metrics) IncrementDecision(status string) {
	if m != nil {
		m.Decisions.WithLabelValues(status).Inc()
	}
}

// IncrementEnrollment records an enrollment attempt outcome.
func (m *Metrics) IncrementEnrollment(outcome string) {
	if m != nil {
		m.Enrollments.WithLabelValues(outcome).Inc()
	}
}

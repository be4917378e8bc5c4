// Package metrics exposes prometheus collectors for bookings, status
// transitions and HTTP traffic.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
)

type Metrics struct {
	registry *prometheus.Registry

	BookingsCreated    *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	Transitions        *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Appointments created from validated bookings.",
		}, []string{"office", "service_type"}),

		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_validation_failures_total",
			Help:      "Rejected booking fields by reason.",
		}, []string{"field", "reason"}),

		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_transitions_total",
			Help:      "Status transition attempts by outcome.",
		}, []string{"to", "result"}),

		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),

		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.BookingsCreated,
		m.ValidationFailures,
		m.Transitions,
		m.HTTPRequests,
		m.HTTPDuration,
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// The Observe helpers are safe on a nil *Metrics so callers can run
// without metrics wired.

func (m *Metrics) ObserveBooking(ap appointment.Appointment) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(ap.Office.ID, string(ap.ServiceType)).Inc()
}

func (m *Metrics) ObserveValidationFailure(err error) {
	if m == nil {
		return
	}
	var verr *appointment.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for _, f := range verr.Fields {
		m.ValidationFailures.WithLabelValues(f.Field, f.Reason).Inc()
	}
}

func (m *Metrics) ObserveTransition(to appointment.Status, err error) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(string(to), transitionResult(err)).Inc()
}

func transitionResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, appointment.ErrNotFound):
		return "not_found"
	case errors.Is(err, appointment.ErrIllegalTransition):
		return "illegal"
	case errors.Is(err, appointment.ErrBackend):
		return "backend_error"
	default:
		return "error"
	}
}

// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// GenerationDuration tracks provider call duration. Generation is the slow
	// path; buckets extend well past the request histogram's.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_generation_duration_seconds",
			Help:    "Model generation duration in seconds",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"provider"},
	)

	// GenerationsTotal tracks completed provider calls.
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_generations_total",
			Help: "Total model generation calls",
		},
		[]string{"provider", "outcome"},
	)

	// ValidationFailuresTotal tracks rejected request bodies.
	ValidationFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_validation_failures_total",
			Help: "Total requests rejected by schema validation",
		},
	)
)

// RecordRequest records a completed HTTP request.
func RecordRequest(method, path, status string, durationSec float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSec)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordGeneration records a completed provider call.
func RecordGeneration(provider, outcome string, durationSec float64) {
	GenerationDuration.WithLabelValues(provider).Observe(durationSec)
	GenerationsTotal.WithLabelValues(provider, outcome).Inc()
}

// Package metrics exposes Prometheus instruments for the registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"pst-registry/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the registry.
type Metrics struct {
	// Evaluation outcomes: "eligible" or "ineligible"
	EvaluationOutcome *prometheus.CounterVec

	// One increment per reason on every ineligible verdict
	IneligibleReasons *prometheus.CounterVec

	EvaluateLatency prometheus.Histogram

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Requests let through because the rate limit store was unreachable
	RateLimitDegraded prometheus.Counter

	gatherer prometheus.Gatherer
}

// New registers every metric on reg. Pass prometheus.NewRegistry() in tests
// to avoid duplicate registration on the default registry.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EvaluationOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pst_registry_evaluations_total",
			Help: "Eligibility evaluations by outcome",
		}, []string{"outcome"}),

		IneligibleReasons: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pst_registry_ineligible_reasons_total",
			Help: "Reasons reported on ineligible verdicts",
		}, []string{"reason"}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pst_registry_evaluate_duration_seconds",
			Help:    "Duration of eligibility evaluation including input gathering",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pst_registry_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),

		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pst_registry_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		RateLimitDegraded: factory.NewCounter(prometheus.CounterOpts{
			Name: "pst_registry_ratelimit_degraded_total",
			Help: "Requests allowed without a rate limit check because the store failed",
		}),

		gatherer: reg,
	}
}

// RecordEvaluation implements ports.EvaluationRecorder.
func (m *Metrics) RecordEvaluation(v *domain.Verdict) {
	if m == nil || v == nil {
		return
	}
	if v.Eligible {
		m.EvaluationOutcome.WithLabelValues("eligible").Inc()
		return
	}
	m.EvaluationOutcome.WithLabelValues("ineligible").Inc()
	for _, r := range v.Reasons {
		m.IneligibleReasons.WithLabelValues(string(r)).Inc()
	}
}

// ObserveEvaluateLatency implements ports.EvaluationRecorder.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// ObserveHTTPRequest records one served request. route is the matched
// route template, never the raw path.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// IncrementRateLimitDegraded counts a fail-open rate limit decision.
func (m *Metrics) IncrementRateLimitDegraded() {
	if m != nil {
		m.RateLimitDegraded.Inc()
	}
}

// Handler serves the registry's metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

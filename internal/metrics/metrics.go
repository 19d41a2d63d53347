// Package metrics exposes Prometheus collectors for generation and assistant traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dsnpass"

// Assistant request outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeBusy     = "busy"
	OutcomeBadInput = "bad_input"
)

// Metrics holds the app's collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry          *prometheus.Registry
	generated         *prometheus.CounterVec
	strength          *prometheus.HistogramVec
	exports           prometheus.Counter
	assistantRequests *prometheus.CounterVec
	assistantLatency  *prometheus.HistogramVec
	httpRequests      *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passwords_generated_total",
			Help:      "Passwords generated, by mode.",
		}, []string{"mode"}),
		strength: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "password_strength_score",
			Help:      "Strength scores of generated passwords, by mode.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		}, []string{"mode"}),
		exports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Password text files produced.",
		}),
		assistantRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assistant_requests_total",
			Help:      "Assistant requests, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		assistantLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assistant_request_duration_seconds",
			Help:      "Upstream model latency, by kind.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 7),
		}, []string{"kind"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method and status code.",
		}, []string{"method", "code"}),
	}

	reg.MustRegister(m.generated, m.strength, m.exports, m.assistantRequests, m.assistantLatency, m.httpRequests)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveGenerated(mode string, score int) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(mode).Inc()
	m.strength.WithLabelValues(mode).Observe(float64(score))
}

func (m *Metrics) ObserveExport() {
	if m == nil {
		return
	}
	m.exports.Inc()
}

func (m *Metrics) ObserveAssistant(kind, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.assistantRequests.WithLabelValues(kind, outcome).Inc()
	if took > 0 {
		m.assistantLatency.WithLabelValues(kind).Observe(took.Seconds())
	}
}

func (m *Metrics) ObserveHTTP(method string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(methodLabel(method), strconv.Itoa(status)).Inc()
}

// methodLabel bounds the method label to the standard verbs.
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodOptions, http.MethodConnect, http.MethodTrace:
		return method
	}
	return "other"
}

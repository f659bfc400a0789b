package metrics

//go:generate go run go.uber.org/mock/mockgen -source=./metrics.go -destination=./mocks/metrics_mock.go -package=mocks

import (
	"net/http"
	"spa/config"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "spa"

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics records booking decisions made by the scheduling engine.
type Metrics interface {
	RecordDecision(operation, outcome, reason string)
	ObserveDuration(operation string, started time.Time)
	RecordLockContention(resource string)
	RecordRetry(operation string)
	Handler() http.Handler
}

type metricsImpl struct {
	registry       *prometheus.Registry
	decisions      *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	lockContention *prometheus.CounterVec
	retries        *prometheus.CounterVec
}

// New builds collectors on a private registry so repeated construction in tests and
// serverless handlers never panics on duplicate registration.
func New(cfg *config.Config) Metrics {
	labels := prometheus.Labels{"app": cfg.App.Name}

	m := &metricsImpl{
		registry: prometheus.NewRegistry(),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "decisions_total",
			Help:        "Booking decisions by operation, outcome and reason.",
			ConstLabels: labels,
		}, []string{"operation", "outcome", "reason"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "decision_duration_seconds",
			Help:        "Time spent deciding a booking operation, locks and storage included.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		lockContention: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "lock_contention_total",
			Help:        "Resource locks that were already held by another request.",
			ConstLabels: labels,
		}, []string{"resource"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "concurrent_write_retries_total",
			Help:        "Validator passes repeated after losing a concurrent write.",
			ConstLabels: labels,
		}, []string{"operation"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.decisions,
		m.duration,
		m.lockContention,
		m.retries,
	)

	return m
}

func (m *metricsImpl) RecordDecision(operation, outcome, reason string) {
	m.decisions.WithLabelValues(operation, outcome, reason).Inc()
}

func (m *metricsImpl) ObserveDuration(operation string, started time.Time) {
	m.duration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (m *metricsImpl) RecordLockContention(resource string) {
	m.lockContention.WithLabelValues(resource).Inc()
}

func (m *metricsImpl) RecordRetry(operation string) {
	m.retries.WithLabelValues(operation).Inc()
}

func (m *metricsImpl) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

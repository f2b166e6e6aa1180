// Package metrics exposes Prometheus metrics for ingestion, matching, and
// the HTTP layer. A custom registry keeps the default Go collectors out of
// the scrape output.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every metric the service records.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	// Ingestion
	contactsDeleted  prometheus.Counter
	contactsInserted prometheus.Counter
	contactsStored   prometheus.Gauge
	ingestFailures   prometheus.Counter

	// Matching
	matchRequests prometheus.Counter
	matchResults  prometheus.Counter
	matchDuration prometheus.Histogram
	matchScores   prometheus.Histogram
	matchFailures prometheus.Counter

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace overrides the metric namespace.
func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// WithRegistry overrides the registry metrics are registered on.
func WithRegistry(r *prometheus.Registry) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

// NewManager builds a Manager and registers all metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "rolodex",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.contactsDeleted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "contacts_deleted_total",
		Help:      "Contact rows deleted by partition replacements.",
	})
	m.contactsInserted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "contacts_inserted_total",
		Help:      "Contact rows inserted by partition replacements.",
	})
	m.contactsStored = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "contacts_stored",
		Help:      "Contacts currently stored across all partitions.",
	})
	m.ingestFailures = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "ingest_failures_total",
		Help:      "Contact ingestions rejected before mutating the store.",
	})

	m.matchRequests = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "match_requests_total",
		Help:      "Match runs executed.",
	})
	m.matchResults = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "match_results_total",
		Help:      "Match rows emitted above threshold.",
	})
	m.matchDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "match_duration_seconds",
		Help:      "Wall time of match runs.",
		Buckets:   prometheus.DefBuckets,
	})
	m.matchScores = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "match_winning_score",
		Help:      "Scores of emitted matches.",
		Buckets:   prometheus.LinearBuckets(50, 5, 11),
	})
	m.matchFailures = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "match_failures_total",
		Help:      "Match runs that failed (schema errors, empty store).",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method, and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by endpoint and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint", "method"})

	return m
}

var globalManager = NewManager() //nolint:gochecknoglobals // singleton metrics manager

// GetRegistry returns the registry backing the global manager, for the
// /healthz scrape handler.
func GetRegistry() *prometheus.Registry { return globalManager.registry }

// RecordReplace records the outcome of one partition replacement and the
// resulting store size.
func RecordReplace(deleted, inserted, stored int64) {
	globalManager.contactsDeleted.Add(float64(deleted))
	globalManager.contactsInserted.Add(float64(inserted))
	globalManager.contactsStored.Set(float64(stored))
}

// RecordIngestFailure counts a rejected ingestion.
func RecordIngestFailure() { globalManager.ingestFailures.Inc() }

// RecordMatchRun records a completed match run.
func RecordMatchRun(results int, seconds float64) {
	globalManager.matchRequests.Inc()
	globalManager.matchResults.Add(float64(results))
	globalManager.matchDuration.Observe(seconds)
}

// RecordMatchScore records one emitted match score.
func RecordMatchScore(score int) { globalManager.matchScores.Observe(float64(score)) }

// RecordMatchFailure counts a failed match run.
func RecordMatchFailure() { globalManager.matchFailures.Inc() }

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(endpoint, method, status string, seconds float64) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(seconds)
}

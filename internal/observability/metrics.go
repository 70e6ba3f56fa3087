// Package observability holds the service's Prometheus collectors.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "chaindash"

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	registry *prometheus.Registry

	dashboardBuilds   *prometheus.CounterVec
	dashboardDuration prometheus.Histogram
	staleDiscards     prometheus.Counter
	sourceErrors      prometheus.Counter
	factsIngested     *prometheus.CounterVec
	cacheLookups      *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		dashboardBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_builds_total",
			Help:      "Dashboard view-model builds by outcome.",
		}, []string{"outcome"}),
		dashboardDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dashboard_build_seconds",
			Help:      "Time spent fetching and aggregating one dashboard.",
			Buckets:   prometheus.DefBuckets,
		}),
		staleDiscards: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_stale_discards_total",
			Help:      "Results dropped because a newer request superseded them.",
		}),
		sourceErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "row_source_errors_total",
			Help:      "Row source failures seen by the dashboard engine.",
		}),
		factsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "facts_ingested_total",
			Help:      "Fact rows received by result.",
		}, []string{"result"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "row_cache_lookups_total",
			Help:      "Row cache lookups by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.dashboardBuilds,
		m.dashboardDuration,
		m.staleDiscards,
		m.sourceErrors,
		m.factsIngested,
		m.cacheLookups,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveDashboard(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.dashboardBuilds.WithLabelValues(outcome).Inc()
	m.dashboardDuration.Observe(took.Seconds())
}

func (m *Metrics) StaleDiscard() {
	if m == nil {
		return
	}
	m.staleDiscards.Inc()
}

func (m *Metrics) SourceError() {
	if m == nil {
		return
	}
	m.sourceErrors.Inc()
}

// FactIngested counts one fact by result: created, duplicate or rejected.
func (m *Metrics) FactIngested(result string) {
	if m == nil {
		return
	}
	m.factsIngested.WithLabelValues(result).Inc()
}

// CacheLookup counts one cache lookup by result: hit, miss or error.
func (m *Metrics) CacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

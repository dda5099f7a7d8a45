// Package metrics provides Prometheus metrics for the projection engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds the engine's Prometheus collectors.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  prometheus.Registerer

	playersScored     prometheus.Counter
	playersExcluded   prometheus.Counter
	skillupsProjected prometheus.Counter
	simulationLatency prometheus.Histogram
	rosterSize        prometheus.Gauge
	workerCount       prometheus.Gauge
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithSubsystem sets the subsystem for all metrics.
func WithSubsystem(subsystem string) Option {
	return func(m *Manager) {
		if subsystem != "" {
			m.subsystem = subsystem
		}
	}
}

// WithHistogramBuckets sets custom buckets for the latency histogram.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.buckets = buckets
		}
	}
}

// WithPrometheusRegistry sets a custom Prometheus registry.
func WithPrometheusRegistry(registry prometheus.Registerer) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "scouty",
		subsystem: "engine",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)
	m.playersScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_scored_total",
		Help:      "Total number of players scored or simulated successfully",
	})
	m.playersExcluded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_excluded_total",
		Help:      "Total number of players excluded for invalid data",
	})
	m.skillupsProjected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "skillups_projected_total",
		Help:      "Total number of skill-up events projected",
	})
	m.simulationLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "simulation_latency_milliseconds",
		Help:      "Histogram of per-player simulation latency in milliseconds",
		Buckets:   m.buckets,
	})
	m.rosterSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Number of players in the roster under evaluation",
	})
	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Configured parallel evaluation worker count",
	})

	return m
}

// Package-level recording helpers on the global manager.

// RecordPlayerScored counts one successfully evaluated player.
func RecordPlayerScored() { globalManager.playersScored.Inc() }

// RecordPlayerExcluded counts one player excluded for invalid data.
func RecordPlayerExcluded() { globalManager.playersExcluded.Inc() }

// RecordSkillUps counts projected skill-up events.
func RecordSkillUps(n int) {
	if n > 0 {
		globalManager.skillupsProjected.Add(float64(n))
	}
}

// RecordSimulationLatency records one per-player simulation duration.
func RecordSimulationLatency(ms float64) { globalManager.simulationLatency.Observe(ms) }

// UpdateRosterSize sets the roster size gauge.
func UpdateRosterSize(n int) { globalManager.rosterSize.Set(float64(n)) }

// UpdateWorkerCount sets the worker count gauge.
func UpdateWorkerCount(n int) { globalManager.workerCount.Set(float64(n)) }

// Registry exposes the custom registry, e.g. for test gathering.
func Registry() *prometheus.Registry { return customRegistry }

// Package metrics provides Prometheus metrics for medaltable.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the standings pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Load Metrics - Fetching and parsing the results table
	loads         *prometheus.CounterVec
	loadDuration  *prometheus.HistogramVec
	rowsParsed    prometheus.Counter
	parseDuration prometheus.Histogram

	// Data Quality Metrics - Rows and values degraded silently by the core
	rowsSkipped   *prometheus.CounterVec
	invalidValues *prometheus.CounterVec

	// Standings Metrics
	aggregations        *prometheus.CounterVec
	aggregationDuration *prometheus.HistogramVec
	standingsEntries    *prometheus.GaugeVec

	// Error Metrics
	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "medaltable",
		subsystem:        "standings",
		histogramBuckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000},
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.loads = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "loads_total",
			Help:        "Total number of source loads by source kind and outcome",
			ConstLabels: m.constLabels,
		},
		[]string{"kind", "outcome"},
	)

	m.loadDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "load_duration_milliseconds",
			Help:        "Time spent fetching the source text in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: m.constLabels,
		},
		[]string{"kind"},
	)

	m.rowsParsed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "rows_parsed_total",
		Help:        "Total number of row records produced by the parser",
		ConstLabels: m.constLabels,
	})

	m.parseDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "parse_duration_milliseconds",
		Help:        "Time spent parsing the source text in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.rowsSkipped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "rows_skipped_total",
			Help:        "Rows dropped from a view because the group value was empty",
			ConstLabels: m.constLabels,
		},
		[]string{"group_key"},
	)

	m.invalidValues = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "invalid_values_total",
			Help:        "Cells that failed numeric coercion, by column",
			ConstLabels: m.constLabels,
		},
		[]string{"column"},
	)

	m.aggregations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "aggregations_total",
			Help:        "Total number of standings aggregations by sort mode",
			ConstLabels: m.constLabels,
		},
		[]string{"sort_mode"},
	)

	m.aggregationDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "aggregation_duration_milliseconds",
			Help:        "Time spent aggregating and ranking one view in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: m.constLabels,
		},
		[]string{"sort_mode"},
	)

	m.standingsEntries = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "entries",
			Help:        "Number of standing entries in the latest view for a group key",
			ConstLabels: m.constLabels,
		},
		[]string{"group_key"},
	)

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "errors_by_component_total",
			Help:        "Total number of errors by component and error type",
			ConstLabels: m.constLabels,
		},
		[]string{"component", "error_type"},
	)
}

// RecordLoad records one source load with its outcome and duration.
func (m *Manager) RecordLoad(kind, outcome string, durationMs float64) {
	m.loads.WithLabelValues(kind, outcome).Inc()
	m.loadDuration.WithLabelValues(kind).Observe(durationMs)
}

// RecordParse records the rows produced by one parse and its duration.
func (m *Manager) RecordParse(rows int, durationMs float64) {
	m.rowsParsed.Add(float64(rows))
	m.parseDuration.Observe(durationMs)
}

// RecordRowsSkipped adds n rows skipped for groupKey.
func (m *Manager) RecordRowsSkipped(groupKey string, n int) {
	if n > 0 {
		m.rowsSkipped.WithLabelValues(groupKey).Add(float64(n))
	}
}

// RecordInvalidValues adds n cells of column that failed coercion.
func (m *Manager) RecordInvalidValues(column string, n int) {
	if n > 0 {
		m.invalidValues.WithLabelValues(column).Add(float64(n))
	}
}

// RecordAggregation records one aggregation for sortMode.
func (m *Manager) RecordAggregation(sortMode string, durationMs float64) {
	m.aggregations.WithLabelValues(sortMode).Inc()
	m.aggregationDuration.WithLabelValues(sortMode).Observe(durationMs)
}

// UpdateStandingsEntries sets the entry count of the latest view for groupKey.
func (m *Manager) UpdateStandingsEntries(groupKey string, count int) {
	m.standingsEntries.WithLabelValues(groupKey).Set(float64(count))
}

// RecordErrorByComponent records an error with component and type labels.
func (m *Manager) RecordErrorByComponent(component, errorType string) {
	m.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// Package-level recorders delegate to the global manager.

// RecordLoad records one source load on the global manager.
func RecordLoad(kind, outcome string, durationMs float64) {
	globalManager.RecordLoad(kind, outcome, durationMs)
}

// RecordParse records one parse on the global manager.
func RecordParse(rows int, durationMs float64) {
	globalManager.RecordParse(rows, durationMs)
}

// RecordRowsSkipped records skipped rows on the global manager.
func RecordRowsSkipped(groupKey string, n int) {
	globalManager.RecordRowsSkipped(groupKey, n)
}

// RecordInvalidValues records invalid cells on the global manager.
func RecordInvalidValues(column string, n int) {
	globalManager.RecordInvalidValues(column, n)
}

// RecordAggregation records one aggregation on the global manager.
func RecordAggregation(sortMode string, durationMs float64) {
	globalManager.RecordAggregation(sortMode, durationMs)
}

// UpdateStandingsEntries sets the entry gauge on the global manager.
func UpdateStandingsEntries(groupKey string, count int) {
	globalManager.UpdateStandingsEntries(groupKey, count)
}

// RecordErrorByComponent records an error on the global manager.
func RecordErrorByComponent(component, errorType string) {
	globalManager.RecordErrorByComponent(component, errorType)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes the current metrics of the custom registry to path in
// the Prometheus text format, replacing the file atomically.
func WriteTextfile(path string) error {
	return writeTextfile(path, customRegistry)
}

func writeTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
	}
	return nil
}

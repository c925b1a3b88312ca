package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the viewer. There is
// no scrape endpoint; counters are read in-process (and by tests) to audit
// load quality and session activity.
type Metrics struct {
	RecordsLoaded prometheus.Counter
	RowsRejected  prometheus.Counter
	ModeToggles   prometheus.Counter
	DatasetLoaded prometheus.Gauge
	LoadDuration  prometheus.Histogram
}

// NewMetrics creates and registers all viewer metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "temp_matrix",
			Name:      "records_loaded_total",
			Help:      "Daily records accepted from the input file.",
		}),
		RowsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "temp_matrix",
			Name:      "rows_rejected_total",
			Help:      "Input rows rejected as malformed.",
		}),
		ModeToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "temp_matrix",
			Name:      "mode_toggles_total",
			Help:      "View mode toggles performed this session.",
		}),
		DatasetLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "temp_matrix",
			Name:      "dataset_loaded",
			Help:      "1 once the dataset has loaded, 0 before.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "temp_matrix",
			Name:      "load_duration_seconds",
			Help:      "Duration of the one-time dataset load.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}

	prometheus.MustRegister(
		m.RecordsLoaded,
		m.RowsRejected,
		m.ModeToggles,
		m.DatasetLoaded,
		m.LoadDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "temp_matrix", Name: "records_loaded_total"}),
		RowsRejected:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "temp_matrix", Name: "rows_rejected_total"}),
		ModeToggles:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "temp_matrix", Name: "mode_toggles_total"}),
		DatasetLoaded: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "temp_matrix", Name: "dataset_loaded"}),
		LoadDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "temp_matrix", Name: "load_duration_seconds"}),
	}
}

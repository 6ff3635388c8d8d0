package metrics

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes sweep progress for long-running benchmark runs.
type Metrics struct {
	IterationsTotal   *prometheus.CounterVec
	GCAffectedTotal   *prometheus.CounterVec
	IterationDuration prometheus.Histogram
	GridPointIndex    prometheus.Gauge
	GridPointsTotal   prometheus.Gauge

	registry *prometheus.Registry
}

// New creates and registers all metrics on a private registry.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.IterationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchpress_iterations_total",
			Help: "Total benchmark iterations executed",
		},
		[]string{"candidate"},
	)

	m.GCAffectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchpress_gc_affected_iterations_total",
			Help: "Iterations during which a GC cycle completed",
		},
		[]string{"candidate"},
	)

	m.IterationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "benchpress_iteration_duration_seconds",
			Help:    "Wall-clock duration of single benchmark iterations",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 10),
		},
	)

	m.GridPointIndex = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchpress_grid_point_index",
			Help: "Zero-based index of the grid point currently running",
		},
	)

	m.GridPointsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchpress_grid_points_total",
			Help: "Number of grid points in the sweep",
		},
	)

	m.registry.MustRegister(
		m.IterationsTotal,
		m.GCAffectedTotal,
		m.IterationDuration,
		m.GridPointIndex,
		m.GridPointsTotal,
	)

	return m
}

// ObserveIteration records one completed iteration.
func (m *Metrics) ObserveIteration(candidate string, elapsed time.Duration, gcHit bool) {
	m.IterationsTotal.WithLabelValues(candidate).Inc()
	if gcHit {
		m.GCAffectedTotal.WithLabelValues(candidate).Inc()
	}
	m.IterationDuration.Observe(elapsed.Seconds())
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts the metrics endpoint in a background goroutine. The
// listener is bound before returning so an occupied port fails loudly
// instead of silently serving nothing.
func (m *Metrics) Serve(port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to bind metrics port %d: %w", port, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	go func() {
		_ = http.Serve(ln, mux)
	}()
	return nil
}

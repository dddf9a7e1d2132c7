// Package metrics instruments msbfs runs, triangle counts and benchmark
// iterations with prometheus collectors held in a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/msbfs/msbfs"
	"github.com/katalvlaran/msbfs/tc"
)

// Registry holds all msbfs collectors.
type Registry struct {
	// Runs
	RunsTotal     *prometheus.CounterVec
	RunDuration   *prometheus.HistogramVec
	SourcesPerRun prometheus.Histogram

	// Levels
	LevelsTotal     prometheus.Counter
	FrontierSize    prometheus.Histogram
	CandidatesTotal prometheus.Counter
	SurvivorsTotal  prometheus.Counter

	// Triangle counting
	TriangleRunsTotal   *prometheus.CounterVec
	TriangleRunDuration *prometheus.HistogramVec

	// Benchmark harness
	BenchIterationsTotal *prometheus.CounterVec
	BenchDuration        *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every collector registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.RunsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "msbfs_runs_total",
			Help: "Total number of multi-source searches",
		},
		[]string{"status"}, // ok, error
	)
	r.RunDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "msbfs_run_duration_seconds",
			Help:    "Wall time of a multi-source search",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"tie_break"},
	)
	r.SourcesPerRun = f.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "msbfs_run_sources",
			Help:    "Number of sources per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 7),
		},
	)

	r.LevelsTotal = f.NewCounter(
		prometheus.CounterOpts{
			Name: "msbfs_levels_total",
			Help: "Total number of frontier expansions across all sources",
		},
	)
	r.FrontierSize = f.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "msbfs_frontier_size",
			Help:    "Number of vertices expanded per level",
			Buckets: prometheus.ExponentialBuckets(1, 8, 8),
		},
	)
	r.CandidatesTotal = f.NewCounter(
		prometheus.CounterOpts{
			Name: "msbfs_candidates_total",
			Help: "Distinct vertices reached by expansions before masking",
		},
	)
	r.SurvivorsTotal = f.NewCounter(
		prometheus.CounterOpts{
			Name: "msbfs_survivors_total",
			Help: "Vertices committed after masking",
		},
	)

	r.TriangleRunsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "msbfs_triangle_runs_total",
			Help: "Total number of triangle counts",
		},
		[]string{"variant", "status"},
	)
	r.TriangleRunDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "msbfs_triangle_run_duration_seconds",
			Help:    "Wall time of one triangle count",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"variant"},
	)

	r.BenchIterationsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "msbfs_bench_iterations_total",
			Help: "Timed benchmark iterations",
		},
		[]string{"dataset"},
	)
	r.BenchDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "msbfs_bench_duration_seconds",
			Help:    "Duration of one timed benchmark iteration",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"dataset", "n_start_vert"},
	)

	return r
}

// GetPrometheusRegistry returns the underlying prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// RecordRun records one msbfs.Run call.
func (r *Registry) RecordRun(tb msbfs.TieBreak, sources int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.RunsTotal.WithLabelValues(status).Inc()
	if err != nil {
		return
	}
	r.RunDuration.WithLabelValues(tb.String()).Observe(duration.Seconds())
	r.SourcesPerRun.Observe(float64(sources))
}

// ObserveLevel records one expansion. Safe for concurrent use.
func (r *Registry) ObserveLevel(ls msbfs.LevelStats) {
	r.LevelsTotal.Inc()
	r.FrontierSize.Observe(float64(ls.Frontier))
	r.CandidatesTotal.Add(float64(ls.Candidates))
	r.SurvivorsTotal.Add(float64(ls.Survivors))
}

// LevelHook returns an msbfs option that feeds ObserveLevel.
func (r *Registry) LevelHook() msbfs.Option {
	return msbfs.WithOnLevel(r.ObserveLevel)
}

// RecordTriangles records one tc.Count call.
func (r *Registry) RecordTriangles(v tc.Variant, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.TriangleRunsTotal.WithLabelValues(v.String(), status).Inc()
	if err == nil {
		r.TriangleRunDuration.WithLabelValues(v.String()).Observe(duration.Seconds())
	}
}

// RecordBench records one timed benchmark iteration.
func (r *Registry) RecordBench(dataset string, nStart int, duration time.Duration) {
	r.BenchIterationsTotal.WithLabelValues(dataset).Inc()
	r.BenchDuration.WithLabelValues(dataset, strconv.Itoa(nStart)).Observe(duration.Seconds())
}

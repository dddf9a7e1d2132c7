package bench

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/msbfs/matrix"
	"github.com/katalvlaran/msbfs/metrics"
	"github.com/katalvlaran/msbfs/msbfs"
	"github.com/katalvlaran/msbfs/tc"
)

// ErrBadOption is returned by New for an invalid Option.
var ErrBadOption = errors.New("bench: invalid option")

// Defaults of the harness.
const (
	DefaultAlgo       = "GO_MSBFS"
	DefaultIterations = 10
	DefaultSeed       = 42
)

// DefaultStartCounts are the source counts tried per dataset.
var DefaultStartCounts = []int{2, 8, 32, 128, 512}

// Option configures a Harness.
type Option func(*Options)

// Options holds the harness parameters.
type Options struct {
	Algo          string
	Iterations    int
	StartCounts   []int
	Seed          int64
	Undirected    bool
	MatrixOptions []matrix.Option
	SearchOptions []msbfs.Option
	CountOptions  []tc.Option
	Logger        *slog.Logger
	Metrics       *metrics.Registry

	err error
}

// DefaultOptions returns the harness defaults. Edge files load as directed
// graphs unless WithUndirected is given.
func DefaultOptions() Options {
	return Options{
		Algo:        DefaultAlgo,
		Iterations:  DefaultIterations,
		StartCounts: append([]int(nil), DefaultStartCounts...),
		Seed:        DefaultSeed,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// WithAlgo sets the label written in the algo column.
func WithAlgo(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: empty algo label", ErrBadOption)
			return
		}
		o.Algo = name
	}
}

// WithIterations sets the timed runs per (dataset, start count); n ≥ 1.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: iterations must be >= 1 (%d)", ErrBadOption, n)
			return
		}
		o.Iterations = n
	}
}

// WithStartCounts replaces the source counts; each must be ≥ 1.
func WithStartCounts(counts ...int) Option {
	return func(o *Options) {
		if len(counts) == 0 {
			o.err = fmt.Errorf("%w: no start counts", ErrBadOption)
			return
		}
		for _, c := range counts {
			if c < 1 {
				o.err = fmt.Errorf("%w: start count %d < 1", ErrBadOption, c)
				return
			}
		}
		o.StartCounts = append([]int(nil), counts...)
	}
}

// WithSeed seeds the source sampler.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithUndirected loads datasets as undirected graphs.
func WithUndirected(undirected bool) Option {
	return func(o *Options) { o.Undirected = undirected }
}

// WithMatrixOptions passes extra options to every dataset load.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.MatrixOptions = append(o.MatrixOptions, opts...) }
}

// WithSearchOptions passes options to every timed msbfs.Run.
func WithSearchOptions(opts ...msbfs.Option) Option {
	return func(o *Options) { o.SearchOptions = append(o.SearchOptions, opts...) }
}

// WithCountOptions passes options to every timed tc.Count.
func WithCountOptions(opts ...tc.Option) Option {
	return func(o *Options) { o.CountOptions = append(o.CountOptions, opts...) }
}

// WithLogger routes progress logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records every timed run into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *Options) { o.Metrics = r }
}

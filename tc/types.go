package tc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// Sentinel errors for triangle counting.
var (
	// ErrGraphNotLoaded is returned when Count is invoked without a graph.
	ErrGraphNotLoaded = errors.New("tc: graph not loaded")

	// ErrDirectedGraph is returned for a directed matrix; triangles are
	// only defined here over the symmetric relation.
	ErrDirectedGraph = errors.New("tc: graph must be undirected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tc: invalid option supplied")
)

// Variant selects the counting formulation.
type Variant int

const (
	// Burkhardt masks A·A with A and divides the sum by 6.
	Burkhardt Variant = iota
	// Sandia masks L·L with L, L being the strict lower triangle.
	Sandia
)

var variantNames = [...]string{
	Burkhardt: "burkhardt",
	Sandia:    "sandia",
}

// String returns the configuration name of v.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}

	return variantNames[v]
}

// ParseVariant maps "burkhardt" or "sandia" (case-insensitive) to a Variant.
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if strings.EqualFold(s, name) {
			return Variant(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown variant %q", ErrOptionViolation, s)
}

// Variants lists every formulation in declaration order.
func Variants() []Variant { return []Variant{Burkhardt, Sandia} }

// Option configures Count.
type Option func(*Options)

// Options holds the counting parameters.
type Options struct {
	// Ctx is checked before every row chunk.
	Ctx context.Context

	// Workers bounds how many row chunks run concurrently.
	Workers int

	// Logger receives a per-count summary.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with a background context, GOMAXPROCS
// workers and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.DiscardHandler),
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds concurrency: n > 0 goroutines, 0 for GOMAXPROCS,
// negative is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithLogger routes the summary record to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Package msbfs provides tunable options and error definitions
// for multi-source breadth-first search.
package msbfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// Sentinel errors for MSBFS execution.
var (
	// ErrGraphNotLoaded is returned when Run is invoked without a graph.
	ErrGraphNotLoaded = errors.New("msbfs: graph not loaded")

	// ErrInvalidSource is returned when a source id lies outside [0, n).
	ErrInvalidSource = errors.New("msbfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("msbfs: invalid option supplied")

	// ErrIndexOutOfRange is returned by ParentTable accessors for a bad row or vertex.
	ErrIndexOutOfRange = errors.New("msbfs: table index out of range")

	// ErrNoPath is returned by PathTo for a vertex the source never reached.
	ErrNoPath = errors.New("msbfs: no path")

	// ErrDepthNotRecorded is returned by Depth when WithDepth was not set.
	ErrDepthNotRecorded = errors.New("msbfs: depth not recorded")
)

// TieBreak selects the predecessor kept when several frontier vertices
// reach the same vertex within one level.
type TieBreak int

const (
	// TieBreakMinID keeps the smallest predecessor id.
	TieBreakMinID TieBreak = iota
	// TieBreakFirstScan keeps the predecessor with the lowest frontier position.
	TieBreakFirstScan
	// TieBreakAny keeps whichever predecessor is written first.
	TieBreakAny
)

var tieBreakNames = [...]string{
	TieBreakMinID:     "min-id",
	TieBreakFirstScan: "first-scan",
	TieBreakAny:       "any",
}

// String returns the configuration name of t.
func (t TieBreak) String() string {
	if t < 0 || int(t) >= len(tieBreakNames) {
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}

	return tieBreakNames[t]
}

// ParseTieBreak maps "min-id", "first-scan" or "any" (case-insensitive) to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	for i, name := range tieBreakNames {
		if strings.EqualFold(s, name) {
			return TieBreak(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown tie-break %q", ErrOptionViolation, s)
}

// LevelStats describes one expansion of one source.
type LevelStats struct {
	// Index is the source's row in the ParentTable.
	Index int
	// Source is the source vertex id.
	Source int
	// Level is 1 for the first expansion out of the source.
	Level int
	// Frontier is the number of vertices expanded.
	Frontier int
	// Candidates is the number of distinct vertices reached before masking.
	Candidates int
	// Survivors is the number of candidates not visited before; zero ends the search.
	Survivors int
}

// Option configures MSBFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds parameters and callbacks to customize MSBFS execution.
type Options struct {
	// Ctx is checked between levels; cancellation aborts the whole run.
	Ctx context.Context

	// Workers bounds how many sources are searched concurrently, and how
	// many chunks a large frontier is split into.
	Workers int

	// ParallelThreshold is the frontier size from which one source's
	// expansion is split across Workers goroutines.
	ParallelThreshold int

	// TieBreak selects the predecessor policy.
	TieBreak TieBreak

	// RecordDepth also stores the BFS level of every visited vertex.
	RecordDepth bool

	// MaxDepth, if > 0, stops each source after that many levels.
	MaxDepth int

	// OnLevel is called after every expansion. It runs concurrently for
	// different sources and must be safe for that.
	OnLevel func(LevelStats)

	// Logger receives per-level debug records and a per-run summary.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultParallelThreshold is the frontier size that triggers chunked expansion.
const DefaultParallelThreshold = 4096

// DefaultOptions returns Options with:
//   - context.Background()
//   - Workers = GOMAXPROCS
//   - ParallelThreshold = DefaultParallelThreshold
//   - TieBreakMinID, no depth table, no depth limit
//   - no-op hook and a discarding logger
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: DefaultParallelThreshold,
		TieBreak:          TieBreakMinID,
		OnLevel:           func(LevelStats) {},
		Logger:            slog.New(slog.DiscardHandler),
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

// WithWorkers bounds concurrency.
//
//	n > 0: at most n goroutines
//	n == 0: GOMAXPROCS
//	n < 0: invalid option → ErrOptionViolation
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

// WithParallelThreshold sets the frontier size that enables chunked expansion.
// n must be ≥ 1.
func WithParallelThreshold(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: ParallelThreshold must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.ParallelThreshold = n
	}
}

// WithTieBreak selects the predecessor policy.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		if t < TieBreakMinID || t > TieBreakAny {
			o.err = fmt.Errorf("%w: unknown tie-break %d", ErrOptionViolation, int(t))
			return
		}
		o.TieBreak = t
	}
}

// WithDepth records the level of every visited vertex (see ParentTable.Depth).
func WithDepth() Option {
	return func(o *Options) { o.RecordDepth = true }
}

// WithMaxDepth stops each source after d levels.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnLevel registers a per-expansion callback.
func WithOnLevel(fn func(LevelStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithLogger routes driver logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

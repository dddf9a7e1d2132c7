package bench

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/msbfs/graphio"
	"github.com/katalvlaran/msbfs/matrix"
	"github.com/katalvlaran/msbfs/msbfs"
)

// ErrNoDatasets is returned when a directory holds no *.txt file.
var ErrNoDatasets = errors.New("bench: no datasets")

// Header is the CSV header row.
var Header = []string{"algo", "dataset", "n_start_vert", "time"}

// Record is one timed search.
type Record struct {
	Algo    string
	Dataset string
	NStart  int
	Time    time.Duration
}

func (r Record) row() []string {
	return []string{r.Algo, r.Dataset, strconv.Itoa(r.NStart), strconv.FormatFloat(r.Time.Seconds(), 'g', 6, 64)}
}

// Harness runs the benchmark. One Harness owns one RNG; it is not safe for
// concurrent use.
type Harness struct {
	opts  Options
	rng   *rand.Rand
	runID uuid.UUID
	tb    msbfs.TieBreak
}

// New validates opts and returns a Harness with a fresh run id.
func New(opts ...Option) (*Harness, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}

	// resolve the tie-break once so metrics can label runs
	so := msbfs.DefaultOptions()
	for _, opt := range o.SearchOptions {
		if opt != nil {
			opt(&so)
		}
	}

	return &Harness{
		opts:  o,
		rng:   rand.New(rand.NewSource(o.Seed)),
		runID: uuid.New(),
		tb:    so.TieBreak,
	}, nil
}

// RunID identifies this harness invocation in logs.
func (h *Harness) RunID() uuid.UUID { return h.runID }

// Datasets lists the *.txt files of dir sorted by name.
func Datasets(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("bench: read %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".txt") {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(out)

	return out, nil
}

// Run benchmarks every dataset of dir and streams the CSV to w.
// It returns all records written.
func (h *Harness) Run(ctx context.Context, dir string, w io.Writer) ([]Record, error) {
	paths, err := Datasets(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDatasets, dir)
	}

	log := h.opts.Logger.With(slog.String("run_id", h.runID.String()))
	log.Info("bench start", slog.String("dir", dir), slog.Int("datasets", len(paths)),
		slog.Int("iterations", h.opts.Iterations), slog.Any("start_counts", h.opts.StartCounts))

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return nil, fmt.Errorf("bench: write header: %w", err)
	}

	var all []Record
	for _, path := range paths {
		recs, err := h.RunDataset(ctx, path, func(r Record) error { return cw.Write(r.row()) })
		all = append(all, recs...)
		cw.Flush()
		if err != nil {
			return all, err
		}
		if err := cw.Error(); err != nil {
			return all, fmt.Errorf("bench: write csv: %w", err)
		}
	}
	log.Info("bench done", slog.Int("records", len(all)))

	return all, nil
}

// RunDataset loads one edge file and times every (start count, iteration)
// pair, calling emit after each run. Start counts above n are skipped.
func (h *Harness) RunDataset(ctx context.Context, path string, emit func(Record) error) ([]Record, error) {
	dataset := filepath.Base(path)
	log := h.opts.Logger.With(slog.String("run_id", h.runID.String()), slog.String("dataset", dataset))

	g, err := graphio.Load(path, h.opts.Undirected, h.opts.MatrixOptions...)
	if err != nil {
		return nil, err
	}
	log.Info("dataset loaded", slog.Int("vertices", g.RowCount()), slog.Int("nnz", g.NNZ()))

	return h.runGraph(ctx, dataset, g, emit, log)
}

func (h *Harness) runGraph(ctx context.Context, dataset string, g *matrix.AdjacencyMatrix,
	emit func(Record) error, log *slog.Logger) ([]Record, error) {
	n := g.RowCount()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	searchOpts := append([]msbfs.Option{msbfs.WithContext(ctx)}, h.opts.SearchOptions...)

	var out []Record
	for _, k := range h.opts.StartCounts {
		if k > n {
			log.Debug("start count exceeds vertex count", slog.Int("n_start_vert", k), slog.Int("vertices", n))
			continue
		}
		for it := 0; it < h.opts.Iterations; it++ {
			sources := SampleSources(h.rng, perm, k)

			start := time.Now()
			_, err := msbfs.Run(g, sources, searchOpts...)
			elapsed := time.Since(start)
			if h.opts.Metrics != nil {
				h.opts.Metrics.RecordRun(h.tb, k, elapsed, err)
			}
			if err != nil {
				return out, fmt.Errorf("bench: %s n_start=%d: %w", dataset, k, err)
			}
			if h.opts.Metrics != nil {
				h.opts.Metrics.RecordBench(dataset, k, elapsed)
			}

			rec := Record{Algo: h.opts.Algo, Dataset: dataset, NStart: k, Time: elapsed}
			out = append(out, rec)
			if emit != nil {
				if err := emit(rec); err != nil {
					return out, fmt.Errorf("bench: emit: %w", err)
				}
			}
		}
		log.Debug("start count done", slog.Int("n_start_vert", k))
	}

	return out, nil
}

// SampleSources shuffles perm in place with rng and returns a copy of its
// first k entries: k distinct vertex ids drawn without replacement.
func SampleSources(rng *rand.Rand, perm []int, k int) []int {
	rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	return slices.Clone(perm[:min(k, len(perm))])
}

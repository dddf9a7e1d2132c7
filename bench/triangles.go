package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/katalvlaran/msbfs/graphio"
	"github.com/katalvlaran/msbfs/matrix"
	"github.com/katalvlaran/msbfs/tc"
)

// TriangleHeader is the CSV header row of RunTriangles.
var TriangleHeader = []string{"algo", "dataset", "time_of_iter"}

// TriangleAlgo maps a counting variant to its algo column label.
var TriangleAlgo = map[tc.Variant]string{
	tc.Burkhardt: "GO_Burkhardt",
	tc.Sandia:    "GO_Sandia",
}

// TriangleRecord is one timed triangle count.
type TriangleRecord struct {
	Algo      string
	Dataset   string
	Triangles uint64
	Time      time.Duration
}

func (r TriangleRecord) row() []string {
	return []string{r.Algo, r.Dataset, strconv.FormatFloat(r.Time.Seconds(), 'g', 6, 64)}
}

// RunTriangles times both triangle counting variants Iterations times on
// every dataset of dir and streams the CSV to w. Datasets always load as
// undirected graphs.
func (h *Harness) RunTriangles(ctx context.Context, dir string, w io.Writer) ([]TriangleRecord, error) {
	paths, err := Datasets(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDatasets, dir)
	}

	log := h.opts.Logger.With(slog.String("run_id", h.runID.String()))
	log.Info("triangle bench start", slog.String("dir", dir), slog.Int("datasets", len(paths)),
		slog.Int("iterations", h.opts.Iterations))

	cw := csv.NewWriter(w)
	if err := cw.Write(TriangleHeader); err != nil {
		return nil, fmt.Errorf("bench: write header: %w", err)
	}

	var all []TriangleRecord
	for _, path := range paths {
		dataset := filepath.Base(path)
		mopts := append(slices.Clone(h.opts.MatrixOptions), matrix.WithUndirected())
		g, err := graphio.Load(path, true, mopts...)
		if err != nil {
			return all, err
		}
		recs, err := h.countGraph(ctx, dataset, g, func(r TriangleRecord) error { return cw.Write(r.row()) },
			log.With(slog.String("dataset", dataset)))
		all = append(all, recs...)
		cw.Flush()
		if err != nil {
			return all, err
		}
		if err := cw.Error(); err != nil {
			return all, fmt.Errorf("bench: write csv: %w", err)
		}
	}
	log.Info("triangle bench done", slog.Int("records", len(all)))

	return all, nil
}

func (h *Harness) countGraph(ctx context.Context, dataset string, g *matrix.AdjacencyMatrix,
	emit func(TriangleRecord) error, log *slog.Logger) ([]TriangleRecord, error) {
	countOpts := append([]tc.Option{tc.WithContext(ctx)}, h.opts.CountOptions...)

	var out []TriangleRecord
	for _, v := range tc.Variants() {
		for it := 0; it < h.opts.Iterations; it++ {
			start := time.Now()
			n, err := tc.Count(g, v, countOpts...)
			elapsed := time.Since(start)
			if h.opts.Metrics != nil {
				h.opts.Metrics.RecordTriangles(v, elapsed, err)
			}
			if err != nil {
				return out, fmt.Errorf("bench: %s %s: %w", dataset, v, err)
			}

			rec := TriangleRecord{Algo: TriangleAlgo[v], Dataset: dataset, Triangles: n, Time: elapsed}
			out = append(out, rec)
			if emit != nil {
				if err := emit(rec); err != nil {
					return out, fmt.Errorf("bench: emit: %w", err)
				}
			}
		}
		log.Debug("variant done", slog.String("variant", v.String()), slog.Uint64("triangles", out[len(out)-1].Triangles))
	}

	return out, nil
}

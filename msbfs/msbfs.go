package msbfs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/msbfs/matrix"
)

// driver holds what every walker of one Run shares.
type driver struct {
	g     *matrix.AdjacencyMatrix
	opts  Options
	table *ParentTable
	pool  *sync.Pool
}

// Run searches g from every vertex in sources and returns the s×n ParentTable.
//
// Validation happens before any level executes:
//   - nil graph → ErrGraphNotLoaded
//   - invalid option → ErrOptionViolation
//   - source outside [0, n) → ErrInvalidSource
//
// An empty sources slice yields a table with zero rows. Cancellation of the
// configured context is checked between levels and returned as ctx.Err();
// no partial table is returned on failure.
func Run(g *matrix.AdjacencyMatrix, sources []int, opts ...Option) (*ParentTable, error) {
	if g == nil {
		return nil, ErrGraphNotLoaded
	}
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	n := g.RowCount()
	for i, s := range sources {
		if err := g.CheckVertex(s); err != nil {
			return nil, fmt.Errorf("%w: sources[%d]: %w", ErrInvalidSource, i, err)
		}
	}

	d := &driver{
		g:     g,
		opts:  o,
		table: newParentTable(n, sources, o.RecordDepth),
		pool:  newScratchPool(n),
	}
	start := time.Now()

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(max(o.Workers, 1))
	for i, s := range sources {
		eg.Go(func() error { return d.search(ctx, i, s) })
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	o.Logger.LogAttrs(o.Ctx, slog.LevelInfo, "msbfs run complete",
		slog.Int("sources", len(sources)),
		slog.Int("vertices", n),
		slog.Int("nnz", g.NNZ()),
		slog.String("tie_break", o.TieBreak.String()),
		slog.Duration("elapsed", time.Since(start)),
	)

	return d.table, nil
}

// search runs the level loop of source index i to completion.
//
// Init → Expand → Check-empty → Mask-and-commit → Advance, until the
// candidate set or the survivor set is empty, or MaxDepth is reached.
func (d *driver) search(ctx context.Context, i, source int) error {
	d.table.allocRow(i)

	sc := d.pool.Get().(*scratch)
	defer d.pool.Put(sc)
	sc.reset()

	w := &walker{
		d:      d,
		index:  i,
		source: source,
		sc:     sc,
		parent: d.table.rows[i],
	}
	if d.table.depth != nil {
		w.depth = d.table.depth[i]
	}
	w.seed()

	debug := d.opts.Logger.Enabled(ctx, slog.LevelDebug)
	for level := 1; d.opts.MaxDepth == 0 || level <= d.opts.MaxDepth; level++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		frontier := len(sc.frontier)
		parts := w.expand()
		w.stats.Expansions++

		ls := LevelStats{Index: i, Source: source, Level: level, Frontier: frontier}
		if w.pending(parts) {
			ls.Candidates, ls.Survivors = w.commit(parts, level)
		}
		if ls.Survivors > 0 {
			w.stats.Levels++
			w.stats.Reached += ls.Survivors
		}

		d.opts.OnLevel(ls)
		if debug {
			d.opts.Logger.LogAttrs(ctx, slog.LevelDebug, "msbfs level",
				slog.Int("index", i),
				slog.Int("source", source),
				slog.Int("level", level),
				slog.Int("frontier", ls.Frontier),
				slog.Int("candidates", ls.Candidates),
				slog.Int("survivors", ls.Survivors),
			)
		}

		if ls.Survivors == 0 {
			break
		}
	}
	d.table.stats[i] = w.stats

	return nil
}

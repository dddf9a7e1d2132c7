package tc

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/msbfs/matrix"
)

// chunksPerWorker oversplits the rows so skewed degree distributions
// still balance across workers.
const chunksPerWorker = 4

// Count returns the number of triangles of g using variant v.
//
// Errors:
//   - nil graph → ErrGraphNotLoaded
//   - directed graph → ErrDirectedGraph
//   - invalid option or variant → ErrOptionViolation
//   - cancelled context → ctx.Err()
func Count(g *matrix.AdjacencyMatrix, v Variant, opts ...Option) (uint64, error) {
	if g == nil {
		return 0, ErrGraphNotLoaded
	}
	o := gatherOptions(opts...)
	if o.err != nil {
		return 0, o.err
	}
	if g.Directed() {
		return 0, ErrDirectedGraph
	}

	var rowCount func(*matrix.AdjacencyMatrix, int) uint64
	switch v {
	case Burkhardt:
		rowCount = burkhardtRow
	case Sandia:
		rowCount = sandiaRow
	default:
		return 0, fmt.Errorf("%w: unknown variant %d", ErrOptionViolation, int(v))
	}

	start := time.Now()
	n := g.RowCount()
	workers := max(o.Workers, 1)
	size := max((n+workers*chunksPerWorker-1)/(workers*chunksPerWorker), 1)

	var total atomic.Uint64
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(workers)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var sum uint64
			for i := lo; i < hi; i++ {
				sum += rowCount(g, i)
			}
			total.Add(sum)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	count := total.Load()
	if v == Burkhardt {
		count /= 6
	}
	o.Logger.LogAttrs(o.Ctx, slog.LevelInfo, "triangle count complete",
		slog.String("variant", v.String()),
		slog.Int("vertices", n),
		slog.Int("nnz", g.NNZ()),
		slog.Uint64("triangles", count),
		slog.Duration("elapsed", time.Since(start)),
	)

	return count, nil
}

// burkhardtRow sums (A·A)[i][j] over the non-loop entries j of row i.
func burkhardtRow(g *matrix.AdjacencyMatrix, i int) uint64 {
	var sum uint64
	row := g.Neighbors(i)
	for _, j := range row {
		if j == i {
			continue
		}
		sum += intersect(row, g.Neighbors(j), i, j, -1)
	}

	return sum
}

// sandiaRow sums (L·L)[i][j] over the entries j < i of row i, counting
// only middle vertices k < j.
func sandiaRow(g *matrix.AdjacencyMatrix, i int) uint64 {
	var sum uint64
	row := g.Neighbors(i)
	for _, j := range row {
		if j >= i {
			break
		}
		sum += intersect(row, g.Neighbors(j), i, j, j)
	}

	return sum
}

// intersect counts common entries of the sorted rows a and b, skipping
// the endpoints i and j. bound >= 0 stops the merge at the first entry
// not below bound.
func intersect(a, b []int, i, j, bound int) uint64 {
	var c uint64
	p, q := 0, 0
	for p < len(a) && q < len(b) {
		x, y := a[p], b[q]
		if bound >= 0 && (x >= bound || y >= bound) {
			break
		}
		switch {
		case x < y:
			p++
		case x > y:
			q++
		default:
			if x != i && x != j {
				c++
			}
			p++
			q++
		}
	}

	return c
}

package msbfs

import (
	"fmt"
	"slices"
)

// Unset marks a vertex the source never reached.
const Unset = -1

// SourceStats summarizes the search of one source.
type SourceStats struct {
	// Levels counts expansions that committed at least one new vertex.
	Levels int
	// Expansions counts all expansions, including the final empty one.
	Expansions int
	// Reached counts visited vertices, the source included.
	Reached int
}

// ParentTable is the s×n result of a multi-source search.
// Row i belongs to the i-th source in call order.
type ParentTable struct {
	n       int
	sources []int
	rows    [][]int
	depth   [][]int // nil unless WithDepth
	stats   []SourceStats
}

func newParentTable(n int, sources []int, withDepth bool) *ParentTable {
	pt := &ParentTable{
		n:       n,
		sources: slices.Clone(sources),
		rows:    make([][]int, len(sources)),
		stats:   make([]SourceStats, len(sources)),
	}
	if withDepth {
		pt.depth = make([][]int, len(sources))
	}

	return pt
}

// allocRow creates row i (and its depth row) filled with Unset.
func (pt *ParentTable) allocRow(i int) {
	row := make([]int, pt.n)
	for v := range row {
		row[v] = Unset
	}
	pt.rows[i] = row
	if pt.depth != nil {
		pt.depth[i] = slices.Clone(row)
	}
}

// Len returns the number of rows (sources).
func (pt *ParentTable) Len() int { return len(pt.rows) }

// VertexCount returns n, the number of columns.
func (pt *ParentTable) VertexCount() int { return pt.n }

// Sources returns a copy of the source ids in row order.
func (pt *ParentTable) Sources() []int { return slices.Clone(pt.sources) }

func (pt *ParentTable) check(i, v int) error {
	if i < 0 || i >= len(pt.rows) {
		return fmt.Errorf("%w: row %d not in [0,%d)", ErrIndexOutOfRange, i, len(pt.rows))
	}
	if v < 0 || v >= pt.n {
		return fmt.Errorf("%w: vertex %d not in [0,%d)", ErrIndexOutOfRange, v, pt.n)
	}

	return nil
}

// Parent returns parent[i][v], or Unset if source i never reached v.
func (pt *ParentTable) Parent(i, v int) (int, error) {
	if err := pt.check(i, v); err != nil {
		return Unset, err
	}

	return pt.rows[i][v], nil
}

// Visited reports whether source i reached v. Out-of-range indices report false.
func (pt *ParentTable) Visited(i, v int) bool {
	if pt.check(i, v) != nil {
		return false
	}

	return pt.rows[i][v] != Unset
}

// Row returns a copy of row i, or nil if i is out of range.
func (pt *ParentTable) Row(i int) []int {
	if i < 0 || i >= len(pt.rows) {
		return nil
	}

	return slices.Clone(pt.rows[i])
}

// Dense returns a copy of the whole table as s rows of n entries.
func (pt *ParentTable) Dense() [][]int {
	out := make([][]int, len(pt.rows))
	for i, row := range pt.rows {
		out[i] = slices.Clone(row)
	}

	return out
}

// Reached returns the vertices source i visited, ascending.
func (pt *ParentTable) Reached(i int) []int {
	if i < 0 || i >= len(pt.rows) {
		return nil
	}
	out := make([]int, 0, pt.stats[i].Reached)
	for v, p := range pt.rows[i] {
		if p != Unset {
			out = append(out, v)
		}
	}

	return out
}

// Depth returns the BFS level of v from source i, or Unset if unreached.
// It fails with ErrDepthNotRecorded unless the run used WithDepth.
func (pt *ParentTable) Depth(i, v int) (int, error) {
	if pt.depth == nil {
		return Unset, ErrDepthNotRecorded
	}
	if err := pt.check(i, v); err != nil {
		return Unset, err
	}

	return pt.depth[i][v], nil
}

// PathTo reconstructs the tree path from source i to v by following parents.
// Returns [source ... v], or ErrNoPath if v was not reached.
func (pt *ParentTable) PathTo(i, v int) ([]int, error) {
	if err := pt.check(i, v); err != nil {
		return nil, err
	}
	row := pt.rows[i]
	if row[v] == Unset {
		return nil, fmt.Errorf("%w: %d from source %d", ErrNoPath, v, pt.sources[i])
	}

	var path []int
	for cur := v; ; cur = row[cur] {
		path = append(path, cur)
		if row[cur] == cur || len(path) > pt.n {
			break
		}
	}
	slices.Reverse(path)

	return path, nil
}

// Stats returns the search summary of source i.
func (pt *ParentTable) Stats(i int) SourceStats {
	if i < 0 || i >= len(pt.stats) {
		return SourceStats{}
	}

	return pt.stats[i]
}

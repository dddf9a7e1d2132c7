package msbfs

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// scratch holds the O(n) buffers a walker needs while searching one source.
// Buffers are pooled per run and reused across sources; cand is all-zero
// between levels and visited is cleared before each source.
type scratch struct {
	// cand[k] == 0: k not reached this level; otherwise key+1 of its chosen predecessor.
	cand []int64
	// visited is the per-source VisitedSet used as the complement mask.
	visited *bitset.BitSet
	// frontier and next swap roles after every commit.
	frontier []int
	next     []int
	// lists[c] collects the columns chunk c wrote into cand.
	lists [][]int
}

func newScratchPool(n int) *sync.Pool {
	return &sync.Pool{
		New: func() any {
			return &scratch{
				cand:    make([]int64, n),
				visited: bitset.New(uint(n)),
				lists:   make([][]int, 1),
			}
		},
	}
}

// reset prepares s for a new source.
func (s *scratch) reset() {
	s.visited.ClearAll()
	s.frontier = s.frontier[:0]
	s.next = s.next[:0]
}

// ensureLists grows lists to at least parts entries and truncates the first parts.
func (s *scratch) ensureLists(parts int) {
	for len(s.lists) < parts {
		s.lists = append(s.lists, nil)
	}
	for c := 0; c < parts; c++ {
		s.lists[c] = s.lists[c][:0]
	}
}

// walker encapsulates the mutable state of one source's search.
type walker struct {
	d      *driver
	index  int
	source int
	sc     *scratch
	parent []int
	depth  []int // nil unless RecordDepth
	stats  SourceStats
}

// seed marks the source visited, makes it its own parent, and sets the initial frontier.
func (w *walker) seed() {
	w.sc.visited.Set(uint(w.source))
	w.parent[w.source] = w.source
	if w.depth != nil {
		w.depth[w.source] = 0
	}
	w.sc.frontier = append(w.sc.frontier, w.source)
	w.stats.Reached = 1
}

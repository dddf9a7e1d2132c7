package msbfs

import (
	"sync"
	"sync/atomic"
)

// offer proposes val for cell under policy tb and reports whether this call
// changed the cell. Values are key+1 so that zero means "unset".
//
// TieBreakAny only accepts the first write; the other policies keep the
// minimum with a compare-and-set loop.
func offer(cell *int64, val int64, tb TieBreak) bool {
	for {
		old := atomic.LoadInt64(cell)
		if old != 0 && (tb == TieBreakAny || old <= val) {
			return false
		}
		if atomic.CompareAndSwapInt64(cell, old, val) {
			return true
		}
	}
}

// expand computes the candidate relation frontier × adj for one level.
// It returns the number of chunks whose lists in w.sc hold the written columns.
//
// A column appears in the list of every chunk that changed its cell, so the
// lists may repeat a column; commit consumes each cell once. Because a chunk
// scans its positions in order, the earliest chunk listing a column is the
// one holding its lowest frontier position, which keeps TieBreakFirstScan
// and the next frontier order identical to a single sequential scan.
func (w *walker) expand() int {
	f := w.sc.frontier
	if len(f) == 0 {
		return 0
	}
	parts := 1
	if w.d.opts.Workers > 1 && len(f) >= w.d.opts.ParallelThreshold {
		parts = w.d.opts.Workers
	}
	size := (len(f) + parts - 1) / parts
	parts = (len(f) + size - 1) / size
	w.sc.ensureLists(parts)

	if parts == 1 {
		w.sc.lists[0] = w.scan(0, len(f), w.sc.lists[0])
		return 1
	}

	var wg sync.WaitGroup
	for c := 0; c < parts; c++ {
		lo := c * size
		hi := min(lo+size, len(f))
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.sc.lists[c] = w.scan(lo, hi, w.sc.lists[c])
		}()
	}
	wg.Wait()

	return parts
}

// scan expands frontier positions [lo, hi) and appends every column whose
// cell it changed to out.
func (w *walker) scan(lo, hi int, out []int) []int {
	g := w.d.g
	tb := w.d.opts.TieBreak
	cand := w.sc.cand
	for p := lo; p < hi; p++ {
		j := w.sc.frontier[p]
		key := int64(j) + 1
		if tb == TieBreakFirstScan {
			key = int64(p) + 1
		}
		for _, k := range g.Neighbors(j) {
			if offer(&cand[k], key, tb) {
				out = append(out, k)
			}
		}
	}

	return out
}

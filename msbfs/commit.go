package msbfs

// commit applies the complement-of-visited mask to the candidates written by
// expand, records survivors in the parent (and depth) rows, and swaps them in
// as the next frontier. Every touched cand cell is reset to zero.
//
// It returns the number of distinct candidates and of survivors.
func (w *walker) commit(parts, level int) (candidates, survivors int) {
	sc := w.sc
	sc.next = sc.next[:0]
	firstScan := w.d.opts.TieBreak == TieBreakFirstScan

	for c := 0; c < parts; c++ {
		for _, k := range sc.lists[c] {
			val := sc.cand[k]
			if val == 0 {
				// already consumed through an earlier list
				continue
			}
			sc.cand[k] = 0
			candidates++

			if sc.visited.Test(uint(k)) {
				continue
			}
			sc.visited.Set(uint(k))

			pred := int(val - 1)
			if firstScan {
				pred = sc.frontier[pred]
			}
			w.parent[k] = pred
			if w.depth != nil {
				w.depth[k] = level
			}
			sc.next = append(sc.next, k)
		}
	}

	survivors = len(sc.next)
	sc.frontier, sc.next = sc.next, sc.frontier

	return candidates, survivors
}

// pending reports whether any chunk wrote a candidate this level.
func (w *walker) pending(parts int) bool {
	for c := 0; c < parts; c++ {
		if len(w.sc.lists[c]) > 0 {
			return true
		}
	}

	return false
}

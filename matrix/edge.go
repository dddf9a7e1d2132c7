package matrix

import (
	"fmt"
	"math"
)

// MaxVertices bounds every vertex id and explicit vertex count so that
// n+1 row offsets always fit and stay allocatable.
const MaxVertices = math.MaxInt32

// Edge is one input pair u→v of the relation.
type Edge struct {
	From int
	To   int
}

// String renders the edge as "u→v".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d", e.From, e.To)
}

// validateEdges checks endpoints and returns the inferred vertex count
// (max endpoint + 1). Endpoints must lie in [0, MaxVertices); limit > 0
// additionally bounds every endpoint.
func validateEdges(edges []Edge, limit int) (int, error) {
	maxID := -1
	for i, e := range edges {
		if e.From < 0 || e.To < 0 {
			return 0, fmt.Errorf("%w: edge #%d %s has a negative endpoint", ErrMalformedEdge, i, e)
		}
		if e.From >= MaxVertices || e.To >= MaxVertices {
			return 0, fmt.Errorf("%w: edge #%d %s exceeds vertex id limit %d", ErrMalformedEdge, i, e, MaxVertices-1)
		}
		if limit > 0 && (e.From >= limit || e.To >= limit) {
			return 0, fmt.Errorf("%w: edge #%d %s outside [0,%d)", ErrMalformedEdge, i, e, limit)
		}
		if e.From > maxID {
			maxID = e.From
		}
		if e.To > maxID {
			maxID = e.To
		}
	}

	return maxID + 1, nil
}

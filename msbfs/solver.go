package msbfs

import (
	"sync"

	"github.com/katalvlaran/msbfs/graphio"
	"github.com/katalvlaran/msbfs/matrix"
)

// Solver keeps one loaded graph and default options for repeated runs.
// It is safe for concurrent use; runs share the graph read-only.
type Solver struct {
	mu    sync.RWMutex
	graph *matrix.AdjacencyMatrix
	opts  []Option
}

// NewSolver returns a Solver without a graph. opts apply to every Run.
func NewSolver(opts ...Option) *Solver {
	return &Solver{opts: opts}
}

// LoadFile reads an edge file and replaces the current graph.
// undirected inserts both directions of every edge.
func (s *Solver) LoadFile(path string, undirected bool, opts ...matrix.Option) error {
	g, err := graphio.Load(path, undirected, opts...)
	if err != nil {
		return err
	}
	s.SetGraph(g)

	return nil
}

// SetGraph replaces the current graph. A nil g unloads it.
func (s *Solver) SetGraph(g *matrix.AdjacencyMatrix) {
	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()
}

// Graph returns the current graph, or nil.
func (s *Solver) Graph() *matrix.AdjacencyMatrix {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph
}

// Run searches the loaded graph from sources. Per-call opts override the
// Solver defaults. Fails with ErrGraphNotLoaded before LoadFile or SetGraph.
func (s *Solver) Run(sources []int, opts ...Option) (*ParentTable, error) {
	g := s.Graph()
	if g == nil {
		return nil, ErrGraphNotLoaded
	}
	all := make([]Option, 0, len(s.opts)+len(opts))
	all = append(all, s.opts...)
	all = append(all, opts...)

	return Run(g, sources, all...)
}

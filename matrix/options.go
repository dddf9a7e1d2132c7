// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for adjacency construction.
//
// Defaults: undirected relation, vertex
// count inferred from the edge list. Option constructors never panic;
// a nonsensical value is recorded and reported by Build as a sentinel.
package matrix

import "fmt"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultDirected controls whether edges keep their orientation.
	// false ⇒ undirected (mirror (u,v) into (v,u)).
	DefaultDirected = false

	// DefaultVertexCount of 0 means "infer n as max endpoint + 1".
	DefaultVertexCount = 0
)

// Option mutates build options. Safe to apply repeatedly; last write wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	directed    bool
	vertexCount int

	// err records the first invalid option; surfaced by Build.
	err error
}

// DefaultOptions returns Options populated with the documented defaults.
func DefaultOptions() Options {
	return Options{
		directed:    DefaultDirected,
		vertexCount: DefaultVertexCount,
	}
}

// NewOptions resolves opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Directed reports whether the options keep edge orientation.
func (o Options) Directed() bool { return o.directed }

// VertexCount returns the explicit vertex count, or 0 when inferred.
func (o Options) VertexCount() int { return o.vertexCount }

// WithDirected keeps each input edge (u,v) as the single entry adj[u][v].
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithUndirected mirrors each input edge (u,v) into adj[u][v] and adj[v][u].
func WithUndirected() Option {
	return func(o *Options) { o.directed = false }
}

// WithSymmetrize is the boolean form used by loaders: true ⇒ undirected.
func WithSymmetrize(symmetrize bool) Option {
	return func(o *Options) { o.directed = !symmetrize }
}

// WithVertexCount fixes n instead of inferring it from the largest endpoint.
// Every endpoint must then lie in [0, n); n <= 0 or n > MaxVertices is
// reported as ErrBadVertexCount when Build runs.
func WithVertexCount(n int) Option {
	return func(o *Options) {
		if n <= 0 || n > MaxVertices {
			o.err = fmt.Errorf("%w: got %d", ErrBadVertexCount, n)
			return
		}
		o.vertexCount = n
	}
}

// Package builder_test contains functional tests for every Constructor,
// verifying topology, counts, determinism and sentinel errors.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/msbfs/builder"
	"github.com/katalvlaran/msbfs/matrix"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, edges []matrix.Edge)
	}{
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			check: func(t *testing.T, edges []matrix.Edge) {
				require.Equal(t, []matrix.Edge{{0, 1}, {1, 2}, {2, 3}}, edges)
			},
		},
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			check: func(t *testing.T, edges []matrix.Edge) {
				require.Equal(t, matrix.Edge{From: 4, To: 0}, edges[4])
			},
		},
		{
			name:  "Star(6)",
			ctor:  builder.Star(6),
			wantV: 6, wantE: 5,
			check: func(t *testing.T, edges []matrix.Edge) {
				for i, e := range edges {
					require.Equal(t, matrix.Edge{From: 0, To: i + 1}, e)
				}
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 12,
		},
		{
			name:  "Grid(2,3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7,
			check: func(t *testing.T, edges []matrix.Edge) {
				require.Contains(t, edges, matrix.Edge{From: 2, To: 5})
				require.NotContains(t, edges, matrix.Edge{From: 2, To: 3})
			},
		},
		{
			name:  "RandomSparse(p=1)",
			ctor:  builder.RandomSparse(5, 1),
			wantV: 5, wantE: 10,
		},
		{
			name:  "RandomSparse(p=0)",
			ctor:  builder.RandomSparse(5, 0),
			wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			el, err := builder.BuildEdges(nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, el.VertexCount())
			require.Len(t, el.Edges(), tc.wantE)
			if tc.check != nil {
				tc.check(t, el.Edges())
			}
		})
	}
}

// TestBuilders_Errors asserts sentinel errors via errors.Is.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"PathTooSmall", builder.Path(1), builder.ErrTooFewVertices},
		{"CycleTooSmall", builder.Cycle(2), builder.ErrTooFewVertices},
		{"StarTooSmall", builder.Star(1), builder.ErrTooFewVertices},
		{"CompleteTooSmall", builder.Complete(0), builder.ErrTooFewVertices},
		{"GridTooSmall", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"SparseBadP", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"SparseNoRNG", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"EdgesNoRNG", builder.RandomEdges(3, 2), builder.ErrNeedRandSource},
		{"NilConstructor", nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			el, err := builder.BuildEdges(nil, tc.ctor)
			require.Nil(t, el)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBuilders_Deterministic: same seed ⇒ same edges.
func TestBuilders_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	b, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	require.Equal(t, a.Edges(), b.Edges())

	c, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomEdges(100, 250))
	require.NoError(t, err)
	require.Len(t, c.Edges(), 250)
}

// TestBuilders_OrderedPairs doubles the trial space.
func TestBuilders_OrderedPairs(t *testing.T) {
	t.Parallel()

	el, err := builder.BuildEdges([]builder.BuilderOption{builder.WithOrderedPairs()}, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	require.Len(t, el.Edges(), 12)
}

// TestBuildGraph_OffsetComponents composes two disjoint components.
func TestBuildGraph_OffsetComponents(t *testing.T) {
	t.Parallel()

	first, err := builder.BuildEdges(nil, builder.Path(3))
	require.NoError(t, err)
	second, err := builder.BuildEdges([]builder.BuilderOption{builder.WithOffset(3)}, builder.Cycle(3))
	require.NoError(t, err)
	require.Equal(t, 6, second.VertexCount())
	require.Equal(t, matrix.Edge{From: 3, To: 4}, second.Edges()[0])

	edges := append(append([]matrix.Edge{}, first.Edges()...), second.Edges()...)
	am, err := matrix.Build(edges)
	require.NoError(t, err)
	require.Equal(t, 6, am.RowCount())
	require.False(t, am.Has(2, 3))
}

// TestBuildGraph_KeepsIsolatedVertices relies on the generated vertex count.
func TestBuildGraph_KeepsIsolatedVertices(t *testing.T) {
	t.Parallel()

	am, err := builder.BuildGraph(nil, nil, builder.Path(2), builder.Complete(1), builder.RandomSparse(4, 0))
	require.NoError(t, err)
	require.Equal(t, 4, am.RowCount())
	require.Empty(t, am.Neighbors(3))

	am, err = builder.BuildGraph([]matrix.Option{matrix.WithVertexCount(10)}, nil, builder.Path(2))
	require.NoError(t, err)
	require.Equal(t, 10, am.RowCount())

	_, err = builder.BuildGraph(nil, nil, builder.Complete(1))
	require.ErrorIs(t, err, matrix.ErrEmptyGraph)
}

// TestWithRand_NilPanics guards the option-constructor contract.
func TestWithRand_NilPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithOffset(-1) })
}

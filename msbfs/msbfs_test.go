package msbfs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/msbfs/builder"
	"github.com/katalvlaran/msbfs/matrix"
	"github.com/katalvlaran/msbfs/msbfs"
)

func mustBuild(t *testing.T, edges []matrix.Edge, opts ...matrix.Option) *matrix.AdjacencyMatrix {
	t.Helper()
	g, err := matrix.Build(edges, opts...)
	require.NoError(t, err)

	return g
}

func e(u, v int) matrix.Edge { return matrix.Edge{From: u, To: v} }

// TestRun_Errors verifies that invalid inputs and options are rejected
// before any level runs and no table is returned.
func TestRun_Errors(t *testing.T) {
	t.Parallel()
	g := mustBuild(t, []matrix.Edge{e(0, 1), e(1, 2), e(2, 3)})

	cases := []struct {
		name    string
		g       *matrix.AdjacencyMatrix
		sources []int
		opts    []msbfs.Option
		want    error
	}{
		{"NilGraph", nil, []int{0}, nil, msbfs.ErrGraphNotLoaded},
		{"SourceTooLarge", g, []int{10}, nil, msbfs.ErrInvalidSource},
		{"SourceNegative", g, []int{0, -1}, nil, msbfs.ErrInvalidSource},
		{"SourceEqualsN", g, []int{4}, nil, msbfs.ErrInvalidSource},
		{"NegativeWorkers", g, []int{0}, []msbfs.Option{msbfs.WithWorkers(-1)}, msbfs.ErrOptionViolation},
		{"ZeroThreshold", g, []int{0}, []msbfs.Option{msbfs.WithParallelThreshold(0)}, msbfs.ErrOptionViolation},
		{"NegativeDepth", g, []int{0}, []msbfs.Option{msbfs.WithMaxDepth(-1)}, msbfs.ErrOptionViolation},
		{"UnknownTieBreak", g, []int{0}, []msbfs.Option{msbfs.WithTieBreak(msbfs.TieBreak(9))}, msbfs.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			pt, err := msbfs.Run(tc.g, tc.sources, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			if errors.Is(tc.want, msbfs.ErrInvalidSource) {
				assert.ErrorIs(t, err, matrix.ErrOutOfRange)
			}
			assert.Nil(t, pt)
		})
	}
}

// Scenario: path 0-1-2-3 undirected from 0.
func TestRun_Path(t *testing.T) {
	t.Parallel()
	g := mustBuild(t, []matrix.Edge{e(0, 1), e(1, 2), e(2, 3)})

	pt, err := msbfs.Run(g, []int{0})
	require.NoError(t, err)
	require.Equal(t, 1, pt.Len())
	assert.Equal(t, []int{0, 0, 1, 2}, pt.Row(0))
	assert.Equal(t, []int{0, 1, 2, 3}, pt.Reached(0))
	assert.Equal(t, msbfs.SourceStats{Levels: 3, Expansions: 4, Reached: 4}, pt.Stats(0))
}

// Scenario: vertex 5 has no edges but n=6.
func TestRun_IsolatedVertex(t *testing.T) {
	t.Parallel()
	g := mustBuild(t, []matrix.Edge{e(0, 1), e(1, 2)}, matrix.WithVertexCount(6))

	pt, err := msbfs.Run(g, []int{0})
	require.NoError(t, err)
	p, err := pt.Parent(0, 5)
	require.NoError(t, err)
	assert.Equal(t, msbfs.Unset, p)
	assert.False(t, pt.Visited(0, 5))
	assert.Equal(t, []int{0, 0, 1, -1, -1, -1}, pt.Row(0))
}

// Scenario: two sources on a triangle.
func TestRun_CycleTwoSources(t *testing.T) {
	t.Parallel()
	g := mustBuild(t, []matrix.Edge{e(0, 1), e(1, 2), e(2, 0)})

	for _, tb := range []msbfs.TieBreak{msbfs.TieBreakMinID, msbfs.TieBreakFirstScan, msbfs.TieBreakAny} {
		pt, err := msbfs.Run(g, []int{0, 2}, msbfs.WithTieBreak(tb))
		require.NoError(t, err, tb.String())
		for i := 0; i < 2; i++ {
			assert.Equal(t, []int{0, 1, 2}, pt.Reached(i), tb.String())
			for v := 0; v < 3; v++ {
				p, _ := pt.Parent(i, v)
				assert.True(t, g.Has(p, v) || p == v, "%s: parent[%d][%d]=%d", tb, i, v, p)
			}
		}
		p, _ := pt.Parent(0, 1)
		assert.Equal(t, 0, p)
		p, _ = pt.Parent(1, 2)
		assert.Equal(t, 2, p)
	}

	pt, err := msbfs.Run(g, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0, 0}, {2, 2, 2}}, pt.Dense())
}

// Scenario: empty source list.
func TestRun_NoSources(t *testing.T) {
	t.Parallel()
	g := mustBuild(t, []matrix.Edge{e(0, 1)})

	for _, sources := range [][]int{nil, {}} {
		pt, err := msbfs.Run(g, sources)
		require.NoError(t, err)
		assert.Equal(t, 0, pt.Len())
		assert.Empty(t, pt.Dense())
		assert.Equal(t, 2, pt.VertexCount())
	}
}

// Scenario: star graph terminates after one committing level.
func TestRun_Star(t *testing.T) {
	t.Parallel()
	for _, directed := range []bool{false, true} {
		g, err := builder.BuildGraph(
			[]matrix.Option{matrix.WithSymmetrize(!directed)}, nil, builder.Star(8))
		require.NoError(t, err)

		var levels []msbfs.LevelStats
		pt, err := msbfs.Run(g, []int{0}, msbfs.WithOnLevel(func(ls msbfs.LevelStats) {
			levels = append(levels, ls)
		}))
		require.NoError(t, err)
		for leaf := 1; leaf < 8; leaf++ {
			p, _ := pt.Parent(0, leaf)
			assert.Equal(t, 0, p)
		}

		st := pt.Stats(0)
		assert.Equal(t, 1, st.Levels)
		assert.Equal(t, 2, st.Expansions)
		assert.Equal(t, 8, st.Reached)
		require.Len(t, levels, 2)
		assert.Equal(t, msbfs.LevelStats{Source: 0, Level: 1, Frontier: 1, Candidates: 7, Survivors: 7}, levels[0])
		assert.Equal(t, 0, levels[1].Survivors)
		if directed {
			assert.Equal(t, 0, levels[1].Candidates)
		} else {
			assert.Equal(t, 1, levels[1].Candidates)
		}
	}
}

// tieGraph puts 4 before 3 in the level-2 frontier; both reach 6.
func tieGraph(t *testing.T) *matrix.AdjacencyMatrix {
	return mustBuild(t, []matrix.Edge{e(0, 1), e(0, 2), e(1, 4), e(2, 3), e(3, 6), e(4, 6)},
		matrix.WithDirected())
}

func TestRun_TieBreakPolicies(t *testing.T) {
	t.Parallel()
	g := tieGraph(t)

	cases := []struct {
		tb   msbfs.TieBreak
		want int
	}{
		{msbfs.TieBreakMinID, 3},
		{msbfs.TieBreakFirstScan, 4},
		{msbfs.TieBreakAny, 4}, // single goroutine: first scanned write wins
	}
	for _, tc := range cases {
		pt, err := msbfs.Run(g, []int{0}, msbfs.WithTieBreak(tc.tb), msbfs.WithWorkers(1))
		require.NoError(t, err)
		p, _ := pt.Parent(0, 6)
		assert.Equal(t, tc.want, p, tc.tb.String())
	}
}

func TestParseTieBreak(t *testing.T) {
	t.Parallel()
	for _, tb := range []msbfs.TieBreak{msbfs.TieBreakMinID, msbfs.TieBreakFirstScan, msbfs.TieBreakAny} {
		got, err := msbfs.ParseTieBreak(tb.String())
		require.NoError(t, err)
		assert.Equal(t, tb, got)
	}
	got, err := msbfs.ParseTieBreak("MIN-ID")
	require.NoError(t, err)
	assert.Equal(t, msbfs.TieBreakMinID, got)

	_, err = msbfs.ParseTieBreak("smallest")
	assert.ErrorIs(t, err, msbfs.ErrOptionViolation)
	assert.Equal(t, "TieBreak(7)", msbfs.TieBreak(7).String())
}

// Source independence: on a directed path each source must reach only its
// own suffix, which would not hold if visited sets leaked between rows.
func TestRun_SourceIndependence(t *testing.T) {
	t.Parallel()
	g := mustBuild(t, []matrix.Edge{e(0, 1), e(1, 2), e(2, 3), e(3, 4)}, matrix.WithDirected())

	pt, err := msbfs.Run(g, []int{2, 0, 2, 4}, msbfs.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{-1, -1, 2, 2, 3},
		{0, 0, 1, 2, 3},
		{-1, -1, 2, 2, 3},
		{-1, -1, -1, -1, 4},
	}, pt.Dense())
	assert.Equal(t, []int{2, 0, 2, 4}, pt.Sources())
}

func TestRun_DepthAndPath(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	require.NoError(t, err)

	pt, err := msbfs.Run(g, []int{0, 8}, msbfs.WithDepth())
	require.NoError(t, err)

	d, err := pt.Depth(0, 8)
	require.NoError(t, err)
	assert.Equal(t, 4, d)
	d, err = pt.Depth(1, 8)
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	path, err := pt.PathTo(0, 8)
	require.NoError(t, err)
	require.Len(t, path, 5)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, 8, path[4])
	for k := 1; k < len(path); k++ {
		assert.True(t, g.Has(path[k-1], path[k]))
	}

	path, err = pt.PathTo(1, 8)
	require.NoError(t, err)
	assert.Equal(t, []int{8}, path)
}

func TestParentTable_Errors(t *testing.T) {
	t.Parallel()
	g := mustBuild(t, []matrix.Edge{e(0, 1)}, matrix.WithVertexCount(3))
	pt, err := msbfs.Run(g, []int{0})
	require.NoError(t, err)

	_, err = pt.Depth(0, 0)
	assert.ErrorIs(t, err, msbfs.ErrDepthNotRecorded)
	_, err = pt.Parent(1, 0)
	assert.ErrorIs(t, err, msbfs.ErrIndexOutOfRange)
	_, err = pt.Parent(0, 3)
	assert.ErrorIs(t, err, msbfs.ErrIndexOutOfRange)
	_, err = pt.PathTo(0, 2)
	assert.ErrorIs(t, err, msbfs.ErrNoPath)
	assert.Nil(t, pt.Row(5))
	assert.Nil(t, pt.Reached(-1))
	assert.False(t, pt.Visited(0, -1))
	assert.Equal(t, msbfs.SourceStats{}, pt.Stats(3))

	row := pt.Row(0)
	row[2] = 99
	assert.Equal(t, []int{0, 0, -1}, pt.Row(0), "Row must return a copy")
}

func TestRun_MaxDepth(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil, nil, builder.Path(6))
	require.NoError(t, err)

	pt, err := msbfs.Run(g, []int{0}, msbfs.WithMaxDepth(2), msbfs.WithDepth())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, -1, -1, -1}, pt.Row(0))
	assert.Equal(t, 2, pt.Stats(0).Levels)
	d, _ := pt.Depth(0, 2)
	assert.Equal(t, 2, d)
	d, _ = pt.Depth(0, 3)
	assert.Equal(t, msbfs.Unset, d)
}

func TestRun_ContextCanceled(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil, nil, builder.Path(10))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pt, err := msbfs.Run(g, []int{0, 1, 2}, msbfs.WithContext(ctx))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, pt)
}

// A large frontier split across goroutines must commit exactly what a single
// sequential scan commits under the deterministic policies.
func TestRun_ParallelExpansionMatchesSequential(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomSparse(1500, 0.004))
	require.NoError(t, err)
	sources := []int{0, 17, 512, 1499, 17}

	for _, tb := range []msbfs.TieBreak{msbfs.TieBreakMinID, msbfs.TieBreakFirstScan} {
		seq, err := msbfs.Run(g, sources, msbfs.WithTieBreak(tb), msbfs.WithWorkers(1), msbfs.WithDepth())
		require.NoError(t, err)
		par, err := msbfs.Run(g, sources, msbfs.WithTieBreak(tb), msbfs.WithWorkers(8),
			msbfs.WithParallelThreshold(1), msbfs.WithDepth())
		require.NoError(t, err)
		assert.Equal(t, seq.Dense(), par.Dense(), tb.String())
		for i := range sources {
			assert.Equal(t, seq.Stats(i), par.Stats(i))
		}
	}

	// any: reachability and depths match, parents may not
	seq, err := msbfs.Run(g, sources, msbfs.WithTieBreak(msbfs.TieBreakAny), msbfs.WithWorkers(1), msbfs.WithDepth())
	require.NoError(t, err)
	par, err := msbfs.Run(g, sources, msbfs.WithTieBreak(msbfs.TieBreakAny), msbfs.WithWorkers(8),
		msbfs.WithParallelThreshold(1), msbfs.WithDepth())
	require.NoError(t, err)
	for i := range sources {
		assert.Equal(t, seq.Reached(i), par.Reached(i))
		for _, v := range par.Reached(i) {
			ds, _ := seq.Depth(i, v)
			dp, _ := par.Depth(i, v)
			assert.Equal(t, ds, dp)
		}
	}
}

func TestRun_OnLevelConcurrentSources(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(12))
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		count = map[int]int{}
	)
	sources := []int{0, 3, 6, 9}
	_, err = msbfs.Run(g, sources, msbfs.WithWorkers(4), msbfs.WithOnLevel(func(ls msbfs.LevelStats) {
		mu.Lock()
		count[ls.Index]++
		mu.Unlock()
	}))
	require.NoError(t, err)
	for i := range sources {
		// 6 committing levels around a 12-cycle plus the final empty one
		assert.Equal(t, 7, count[i])
	}
}

func TestSolver(t *testing.T) {
	t.Parallel()
	s := msbfs.NewSolver(msbfs.WithTieBreak(msbfs.TieBreakMinID))

	_, err := s.Run([]int{0})
	require.ErrorIs(t, err, msbfs.ErrGraphNotLoaded)

	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n1 2\n2 3\n"), 0o600))
	require.NoError(t, s.LoadFile(path, true))
	require.NotNil(t, s.Graph())

	pt, err := s.Run([]int{0, 3})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0, 1, 2}, {1, 2, 3, 3}}, pt.Dense())

	require.NoError(t, os.WriteFile(path, []byte("0 1\n1 2\n2 3\n"), 0o600))
	require.NoError(t, s.LoadFile(path, false))
	pt, err = s.Run([]int{3})
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -1, -1, 3}, pt.Row(0))

	require.Error(t, s.LoadFile(filepath.Join(t.TempDir(), "missing.txt"), true))
	assert.NotNil(t, s.Graph(), "failed load keeps previous graph")

	s.SetGraph(nil)
	_, err = s.Run([]int{0})
	require.ErrorIs(t, err, msbfs.ErrGraphNotLoaded)
}

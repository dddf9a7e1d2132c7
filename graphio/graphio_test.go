package graphio_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/msbfs/graphio"
	"github.com/katalvlaran/msbfs/matrix"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Undirected(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "0 1\n1 2\n\n2 3\n")

	g, err := graphio.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, 4, g.RowCount())
	assert.Equal(t, 6, g.NNZ())
	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
	assert.False(t, g.Directed())
}

func TestLoad_Directed(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "0 1\n1 2\n2 3\n")

	g, err := graphio.Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NNZ())
	assert.Equal(t, []int{2}, g.Neighbors(1))
	assert.Empty(t, g.Neighbors(3))
}

func TestLoad_VertexCountOption(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "0 1\n")

	g, err := graphio.Load(path, true, matrix.WithVertexCount(6))
	require.NoError(t, err)
	assert.Equal(t, 6, g.RowCount())
	assert.Empty(t, g.Neighbors(5))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := graphio.Load(filepath.Join(t.TempDir(), "nope.txt"), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		body string
		want error
		line string
	}{
		{"Empty", "", matrix.ErrEmptyGraph, ""},
		{"OnlyBlank", "\n  \n\t\n", matrix.ErrEmptyGraph, ""},
		{"OneField", "0 1\n2\n", matrix.ErrMalformedEdge, "line 2"},
		{"ThreeFields", "0 1 2\n", matrix.ErrMalformedEdge, "line 1"},
		{"NotInteger", "0 1\n1 x\n", matrix.ErrMalformedEdge, "line 2"},
		{"Negative", "0 -1\n", matrix.ErrMalformedEdge, "line 1"},
		{"Header", "src dst\n0 1\n", matrix.ErrMalformedEdge, "line 1"},
		{"IDOverflowsInt", "0 1\n0 9223372036854775807\n", matrix.ErrMalformedEdge, "line 2"},
		{"IDBeyondLimit", "0 10000000000\n", matrix.ErrMalformedEdge, "line 1"},
		{"IDAtLimit", "2147483647 0\n", matrix.ErrMalformedEdge, "line 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := graphio.Parse(strings.NewReader(tc.body), true)
			require.ErrorIs(t, err, tc.want)
			if tc.line != "" {
				assert.Contains(t, err.Error(), tc.line)
			}
		})
	}
}

func TestParse_OutOfRangeWithExplicitN(t *testing.T) {
	t.Parallel()
	_, err := graphio.Parse(strings.NewReader("0 1\n1 7\n"), true, matrix.WithVertexCount(4))
	require.ErrorIs(t, err, matrix.ErrMalformedEdge)
}

func TestParse_ToleratesSpacing(t *testing.T) {
	t.Parallel()
	g, err := graphio.Parse(strings.NewReader("  0\t1  \r\n1    2\n"), false)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, edgePairs(g))
}

func edgePairs(g *matrix.AdjacencyMatrix) [][2]int {
	var out [][2]int
	for _, e := range g.Edges() {
		out = append(out, [2]int{e.From, e.To})
	}

	return out
}

func TestParseSources(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want []int
	}{
		{"0", []int{0}},
		{"0,2,5", []int{0, 2, 5}},
		{" 3 , 3 ,1 ", []int{3, 3, 1}},
		{"", []int{}},
		{"10", []int{10}},
	}
	for _, tc := range cases {
		got, err := graphio.ParseSources(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"a", "1,,2", "1,", "1;2", "0x1"} {
		_, err := graphio.ParseSources(bad)
		assert.ErrorIs(t, err, graphio.ErrBadSourceList, bad)
	}
}

func TestWriteTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteTable(&buf, [][]int{{0, 0, 1, 2}, {-1, 1, -1, 3}}))
	assert.Equal(t, "0 0 1 2\n-1 1 -1 3\n", buf.String())

	buf.Reset()
	require.NoError(t, graphio.WriteTable(&buf, nil))
	assert.Empty(t, buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestWriteTable_PropagatesError(t *testing.T) {
	t.Parallel()
	err := graphio.WriteTable(failWriter{}, [][]int{{0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

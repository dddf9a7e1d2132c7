package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/msbfs/matrix"
)

// ErrBadSourceList is returned by ParseSources for an unparsable list.
var ErrBadSourceList = errors.New("graphio: malformed source list")

// maxLineBytes bounds a single edge line.
const maxLineBytes = 1 << 20

// Load opens path and parses it with Parse.
func Load(path string, undirected bool, opts ...matrix.Option) (*matrix.AdjacencyMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f, undirected, opts...)
	if err != nil {
		return nil, fmt.Errorf("graphio: load %s: %w", path, err)
	}

	return g, nil
}

// Parse reads an edge list from r and builds the adjacency matrix.
// undirected is applied before opts, so an explicit matrix.WithDirected in
// opts takes precedence.
func Parse(r io.Reader, undirected bool, opts ...matrix.Option) (*matrix.AdjacencyMatrix, error) {
	edges, err := ReadEdges(r)
	if err != nil {
		return nil, err
	}
	all := make([]matrix.Option, 0, len(opts)+1)
	all = append(all, matrix.WithSymmetrize(undirected))
	all = append(all, opts...)

	return matrix.Build(edges, all...)
}

// ReadEdges parses every non-blank line of r as "u v".
func ReadEdges(r io.Reader) ([]matrix.Edge, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var edges []matrix.Edge
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		e, err := parseEdge(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", matrix.ErrMalformedEdge, line, err)
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return edges, nil
}

func parseEdge(text string) (matrix.Edge, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return matrix.Edge{}, fmt.Errorf("want 2 fields, got %d in %q", len(fields), text)
	}
	u, err := parseVertex(fields[0])
	if err != nil {
		return matrix.Edge{}, err
	}
	v, err := parseVertex(fields[1])
	if err != nil {
		return matrix.Edge{}, err
	}

	return matrix.Edge{From: u, To: v}, nil
}

func parseVertex(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("vertex %q is not an integer", s)
	}
	if id < 0 {
		return 0, fmt.Errorf("vertex %d is negative", id)
	}
	if id >= matrix.MaxVertices {
		return 0, fmt.Errorf("vertex %d exceeds id limit %d", id, matrix.MaxVertices-1)
	}

	return id, nil
}

// ParseSources parses a comma-separated id list such as "0,2,5".
// Whitespace around ids is ignored; an empty string yields no sources.
// Range checks are left to msbfs.Run.
func ParseSources(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for i, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: item %d %q", ErrBadSourceList, i, p)
		}
		out = append(out, id)
	}

	return out, nil
}

// WriteTable prints rows one per line, entries separated by a single space.
func WriteTable(w io.Writer, rows [][]int) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, row := range rows {
		buf = buf[:0]
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("graphio: write table: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write table: %w", err)
	}

	return nil
}

// Package graphio reads whitespace-separated edge files into a
// matrix.AdjacencyMatrix and writes dense parent tables as text.
//
// Edge file format: one edge "u v" per line, two non-negative integers, no
// header. Blank lines are skipped; anything else is rejected with
// matrix.ErrMalformedEdge naming the line.
package graphio

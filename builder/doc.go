// Package builder provides deterministic edge-list generators for the
// multi-source BFS test-suite, examples and synthetic benchmarks.
//
// Each generator is a Constructor that appends vertices and edges to an
// EdgeList. BuildEdges composes constructors in order; BuildGraph goes one
// step further and hands the result to matrix.Build.
//
// The package offers:
//
//   - Topologies: Path, Cycle, Star, Complete, Grid, RandomSparse, RandomEdges.
//   - Options: WithOffset (shift vertex ids, for disjoint components),
//     WithSeed / WithRand (stochastic generators), WithOrderedPairs
//     (RandomSparse trials over ordered pairs).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical edges.
//   - Constructors validate parameters first and return sentinel errors
//     wrapped with the method name; option constructors panic only on
//     programmer error (nil RNG).
package builder

// Package msbfs is the root of a multi-source breadth-first search toolkit:
// one shortest-path parent tree per source vertex, computed level by level
// over a sparse boolean adjacency matrix.
//
// 🚀 What is in the box?
//
//	• matrix/   - CSR adjacency relation built once from an edge list, read-only afterwards
//	• msbfs/    - the search: frontier expansion, visited masking, parent/depth tables
//	• graphio/  - "u v" edge files in, dense parent grids out
//	• builder/  - deterministic generators (path, cycle, star, grid, complete, random)
//	• tc/       - triangle counting, Burkhardt and Sandia formulations
//	• bench/    - dataset sweeps writing algo,dataset,n_start_vert,time CSV
//	• metrics/  - prometheus collectors for runs, levels and benchmark iterations
//	• config/   - YAML settings validated with struct tags
//	• cmd/msbfs - the command line front end
//
// ✨ Guarantees
//
//   - Level-synchronous: a level commits fully before the next one expands,
//     so every tree edge lies on a shortest path from its source.
//   - Independent sources: rows share only the read-only adjacency matrix.
//   - Explicit tie-break: smallest predecessor id by default, first frontier
//     position or first writer on request.
//
// Quick example, path 0─1─2─3 searched from 0 and 3:
//
//	0 0 1 2
//	1 2 3 3
//
//	go install github.com/katalvlaran/msbfs/cmd/msbfs@latest
package msbfs

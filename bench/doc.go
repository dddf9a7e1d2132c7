// Package bench times msbfs.Run over a directory of edge files and writes
// one CSV row per timed search:
//
//	algo,dataset,n_start_vert,time
//
// For every dataset (*.txt, sorted by name) and every start count that does
// not exceed the vertex count, the harness runs Iterations searches. Each
// iteration reshuffles all vertex ids with a single RNG seeded once per
// harness and takes the first n_start ids as sources, so a fixed seed
// reproduces the same source sets. time is wall-clock seconds.
//
// RunTriangles times both tc variants instead and writes
//
//	algo,dataset,time_of_iter
//
// with algo GO_Burkhardt or GO_Sandia. Datasets load undirected for it.
//
// ReadCSV and Summarize (ReadTriangleCSV and SummarizeTriangles) turn a
// results file back into per-group mean and sample standard deviation.
package bench

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/msbfs/graphio"
	"github.com/katalvlaran/msbfs/matrix"
	"github.com/katalvlaran/msbfs/msbfs"
)

// searchFlags override the search section of the configuration.
type searchFlags struct {
	directed bool
	tieBreak string
	workers  int
	depth    bool
}

func (a *app) newRunCmd() *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "run <edge_file> <sources>",
		Short: "Print the parent grid for comma-separated sources",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, args[0], args[1], f)
		},
	}
	cmd.Flags().BoolVarP(&f.directed, "directed", "d", false, "Do not mirror edges")
	cmd.Flags().StringVarP(&f.tieBreak, "tie-break", "t", "", "Predecessor policy (min-id, first-scan, any)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "Concurrent sources (0 = config or GOMAXPROCS)")
	cmd.Flags().BoolVar(&f.depth, "depth", false, "Also print the depth grid after the parent grid")

	return cmd
}

// runSearch loads edgeFile, searches from the listed sources and prints the
// dense parent table (and depth table with --depth) to stdout.
func (a *app) runSearch(cmd *cobra.Command, edgeFile, sourceList string, f searchFlags) error {
	sources, err := graphio.ParseSources(sourceList)
	if err != nil {
		return err
	}

	mopts := a.cfg.MatrixOptions()
	if f.directed {
		mopts = append(mopts, matrix.WithDirected())
	}
	solver := msbfs.NewSolver(a.cfg.SearchOptions()...)
	if err := solver.LoadFile(edgeFile, a.cfg.Graph.Undirected, mopts...); err != nil {
		return err
	}

	name := a.cfg.Search.TieBreak
	if f.tieBreak != "" {
		name = f.tieBreak
	}
	tb, err := msbfs.ParseTieBreak(name)
	if err != nil {
		return err
	}
	opts := []msbfs.Option{
		msbfs.WithContext(cmd.Context()),
		msbfs.WithLogger(a.log),
		msbfs.WithTieBreak(tb),
		a.reg.LevelHook(),
	}
	if f.workers > 0 {
		opts = append(opts, msbfs.WithWorkers(f.workers))
	}
	if f.depth {
		opts = append(opts, msbfs.WithDepth())
	}

	stop, err := a.serveMetrics(cmd.Context())
	if err != nil {
		return err
	}
	defer stop()

	start := time.Now()
	pt, err := solver.Run(sources, opts...)
	a.reg.RecordRun(tb, len(sources), time.Since(start), err)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := graphio.WriteTable(out, pt.Dense()); err != nil {
		return err
	}
	if !f.depth && !a.cfg.Search.RecordDepth {
		return nil
	}

	depths := make([][]int, pt.Len())
	for i := range depths {
		depths[i] = make([]int, pt.VertexCount())
		for v := range depths[i] {
			depths[i][v], _ = pt.Depth(i, v)
		}
	}

	return graphio.WriteTable(out, depths)
}

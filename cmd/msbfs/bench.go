package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/msbfs/bench"
)

// Default output files when neither flag nor config names one.
const (
	DefaultBenchOutput    = "msbfs_bench.csv"
	DefaultTriangleOutput = "msbfs_tc.csv"
)

func (a *app) newBenchCmd() *cobra.Command {
	var (
		output string
		algo   string
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "bench <datasets_dir> <num_iters>",
		Short: "Time searches over every *.txt dataset and write a CSV",
		Long: `bench loads every *.txt edge file of a directory and, for each start
count of the configuration that does not exceed the vertex count, times
num_iters searches from randomly sampled sources.

Use "-o -" to write the CSV to stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			iters, err := parseIters(args[1])
			if err != nil {
				return err
			}

			bc := a.cfg.Bench
			if cmd.Flags().Changed("algo") {
				bc.Algo = algo
			}
			if cmd.Flags().Changed("seed") {
				bc.Seed = seed
			}
			if output == "" {
				output = bc.Output
			}
			if output == "" {
				output = DefaultBenchOutput
			}

			h, err := bench.New(
				bench.WithAlgo(bc.Algo),
				bench.WithIterations(iters),
				bench.WithStartCounts(bc.StartCounts...),
				bench.WithSeed(bc.Seed),
				bench.WithUndirected(a.cfg.Graph.Undirected),
				bench.WithMatrixOptions(a.cfg.MatrixOptions()...),
				bench.WithSearchOptions(a.cfg.SearchOptions()...),
				bench.WithLogger(a.log),
				bench.WithMetrics(a.reg),
			)
			if err != nil {
				return err
			}

			stop, err := a.serveMetrics(cmd.Context())
			if err != nil {
				return err
			}
			defer stop()

			w, closeOut, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			defer closeOut()

			_, err = h.Run(cmd.Context(), args[0], w)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV path (default msbfs_bench.csv, - for stdout)")
	cmd.Flags().StringVar(&algo, "algo", bench.DefaultAlgo, "Label of the algo column")
	cmd.Flags().Int64Var(&seed, "seed", bench.DefaultSeed, "Source sampling seed")
	cmd.AddCommand(a.newBenchTrianglesCmd())

	return cmd
}

func (a *app) newBenchTrianglesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tc <datasets_dir> <num_iters>",
		Short: "Time both triangle counting variants over every *.txt dataset",
		Long: `tc loads every *.txt edge file of a directory as an undirected graph
and times num_iters Burkhardt and num_iters Sandia triangle counts,
writing algo,dataset,time_of_iter rows.

Use "-o -" to write the CSV to stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			iters, err := parseIters(args[1])
			if err != nil {
				return err
			}
			if output == "" {
				output = DefaultTriangleOutput
			}

			h, err := bench.New(
				bench.WithIterations(iters),
				bench.WithMatrixOptions(a.cfg.MatrixOptions()...),
				bench.WithCountOptions(a.cfg.CountOptions()...),
				bench.WithLogger(a.log),
				bench.WithMetrics(a.reg),
			)
			if err != nil {
				return err
			}

			stop, err := a.serveMetrics(cmd.Context())
			if err != nil {
				return err
			}
			defer stop()

			w, closeOut, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			defer closeOut()

			_, err = h.RunTriangles(cmd.Context(), args[0], w)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV path (default msbfs_tc.csv, - for stdout)")

	return cmd
}

func parseIters(s string) (int, error) {
	iters, err := strconv.Atoi(s)
	if err != nil || iters < 1 {
		return 0, fmt.Errorf("num_iters must be a positive integer, got %q", s)
	}

	return iters, nil
}

// openOutput returns stdout for "-" and a created file otherwise.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "-" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

func (a *app) newSummaryCmd() *cobra.Command {
	var triangles bool

	cmd := &cobra.Command{
		Use:   "summary <results.csv>",
		Short: "Print mean and standard deviation per algo, dataset and start count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			if triangles {
				recs, err := bench.ReadTriangleCSV(f)
				if err != nil {
					return err
				}
				return bench.WriteTriangleSummary(cmd.OutOrStdout(), bench.SummarizeTriangles(recs))
			}

			recs, err := bench.ReadCSV(f)
			if err != nil {
				return err
			}

			return bench.WriteSummary(cmd.OutOrStdout(), bench.Summarize(recs))
		},
	}
	cmd.Flags().BoolVar(&triangles, "tc", false, "Read a triangle counting results file")

	return cmd
}

// Command msbfs runs multi-source breadth-first search over edge files and
// benchmarks it.
//
//	msbfs <edge_file> <sources>          print the s×n parent grid
//	msbfs bench <datasets_dir> <iters>   write algo,dataset,n_start_vert,time CSV
//	msbfs summary <results.csv>          mean and std per group
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

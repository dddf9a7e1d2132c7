package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/msbfs/config"
	"github.com/katalvlaran/msbfs/metrics"
)

// app is the state shared by all subcommands after flag parsing.
type app struct {
	configPath  string
	logLevel    string
	logFormat   string
	metricsAddr string

	cfg *config.Config
	log *slog.Logger
	reg *metrics.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "msbfs <edge_file> <sources>",
		Short: "Multi-source BFS parent trees",
		Long: `msbfs computes one breadth-first parent tree per source vertex.

The edge file holds one "u v" pair per line. Sources are comma separated.
The result is one line per source with the parent of every vertex, -1 where
the source never reached the vertex.

Examples:
  msbfs graph.txt 0
  msbfs --config msbfs.yaml graph.txt 0,5,9
  msbfs bench ./datasets 10`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, args[0], args[1], searchFlags{})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "", "Override log format (text, json)")
	pf.StringVar(&a.metricsAddr, "metrics-addr", "", "Serve prometheus metrics on host:port while running")

	root.AddCommand(a.newRunCmd(), a.newBenchCmd(), a.newSummaryCmd())

	return root
}

// init loads configuration, applies flag overrides, and builds the logger
// and metrics registry.
func (a *app) init(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if a.metricsAddr != "" {
		cfg.Metrics.Addr = a.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = cfg.NewLogger(cmd.ErrOrStderr())
	a.reg = metrics.NewRegistry()

	return nil
}

// serveMetrics exposes the registry on cfg.Metrics.Addr until the returned
// stop function is called. Without an address it does nothing.
func (a *app) serveMetrics(ctx context.Context) (stop func(), err error) {
	if a.cfg.Metrics.Addr == "" {
		return func() {}, nil
	}
	ln, err := net.Listen("tcp", a.cfg.Metrics.Addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", a.reg.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server", slog.Any("error", err))
		}
	}()
	a.log.Info("metrics listening", slog.String("addr", ln.Addr().String()))

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}, nil
}

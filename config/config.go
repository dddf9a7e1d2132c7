// Package config loads the YAML settings shared by the msbfs command and
// benchmark harness, and turns them into library options.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/msbfs/matrix"
	"github.com/katalvlaran/msbfs/msbfs"
	"github.com/katalvlaran/msbfs/tc"
)

// ErrInvalidConfig wraps every decoding or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the root of the YAML document.
type Config struct {
	Graph   GraphConfig   `yaml:"graph"`
	Search  SearchConfig  `yaml:"search"`
	Bench   BenchConfig   `yaml:"bench"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// GraphConfig controls how edge files become adjacency matrices.
type GraphConfig struct {
	Undirected  bool `yaml:"undirected"`
	VertexCount int  `yaml:"vertex_count" validate:"gte=0"` // 0 = infer from max id
}

// SearchConfig maps onto msbfs options.
type SearchConfig struct {
	Workers           int    `yaml:"workers" validate:"gte=0"` // 0 = GOMAXPROCS
	TieBreak          string `yaml:"tie_break" validate:"oneof=min-id first-scan any"`
	ParallelThreshold int    `yaml:"parallel_threshold" validate:"gte=1"`
	MaxDepth          int    `yaml:"max_depth" validate:"gte=0"`
	RecordDepth       bool   `yaml:"record_depth"`
}

// BenchConfig drives the benchmark harness.
type BenchConfig struct {
	Algo        string `yaml:"algo" validate:"required"`
	Iterations  int    `yaml:"iterations" validate:"gte=1"`
	StartCounts []int  `yaml:"start_counts" validate:"min=1,dive,gte=1"`
	Seed        int64  `yaml:"seed"`
	Output      string `yaml:"output"` // empty = stdout
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig enables the prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Graph: GraphConfig{Undirected: true},
		Search: SearchConfig{
			TieBreak:          msbfs.TieBreakMinID.String(),
			ParallelThreshold: msbfs.DefaultParallelThreshold,
		},
		Bench: BenchConfig{
			Algo:        "GO_MSBFS",
			Iterations:  10,
			StartCounts: []int{2, 8, 32, 128, 512},
			Seed:        42,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over Default and validates the result.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads YAML from r over Default and validates the result.
// An empty document yields Default.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every struct tag and reports all failing fields at once.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// MatrixOptions returns the matrix.Build options of the graph section.
func (c *Config) MatrixOptions() []matrix.Option {
	opts := []matrix.Option{matrix.WithSymmetrize(c.Graph.Undirected)}
	if c.Graph.VertexCount > 0 {
		opts = append(opts, matrix.WithVertexCount(c.Graph.VertexCount))
	}

	return opts
}

// SearchOptions returns the msbfs options of the search section.
// The tie-break name has been validated, so parsing cannot fail here.
func (c *Config) SearchOptions() []msbfs.Option {
	tb, _ := msbfs.ParseTieBreak(c.Search.TieBreak)
	opts := []msbfs.Option{
		msbfs.WithWorkers(c.Search.Workers),
		msbfs.WithTieBreak(tb),
		msbfs.WithParallelThreshold(c.Search.ParallelThreshold),
		msbfs.WithMaxDepth(c.Search.MaxDepth),
	}
	if c.Search.RecordDepth {
		opts = append(opts, msbfs.WithDepth())
	}

	return opts
}

// CountOptions returns the tc options of the search section.
func (c *Config) CountOptions() []tc.Option {
	return []tc.Option{tc.WithWorkers(c.Search.Workers)}
}

// NewLogger builds a text or JSON slog.Logger writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	ho := &slog.HandlerOptions{Level: c.LogLevel()}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, ho))
	}

	return slog.New(slog.NewTextHandler(w, ho))
}

// LogLevel maps the log section's level name to a slog.Level.
func (c *Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}

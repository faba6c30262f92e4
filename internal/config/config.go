// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// Package config loads the sortbench configuration: a YAML file whose
// defaults reproduce the reference sweep, overridden by SORTBENCH_*
// environment variables and finally by command-line flags.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/gravitational/trace"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/arrays"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/bench"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/montecarlo"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/sweep"
)

// Config holds all sortbench configuration.
type Config struct {
	// Array source
	Source SourceConfig `yaml:"source"`

	// Benchmark harness
	Bench BenchConfig `yaml:"bench"`

	// Size/threshold grid
	Sweep SweepConfig `yaml:"sweep"`

	// Where rows go
	Output OutputConfig `yaml:"output"`

	// Monte-Carlo area sweep
	Area AreaConfig `yaml:"area"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig configures the deterministic array source.
type SourceConfig struct {
	MaxN    int    `yaml:"max_n"`
	ValueLo int64  `yaml:"value_lo"`
	ValueHi int64  `yaml:"value_hi"`
	Seed    uint64 `yaml:"seed"`
	// Swaps overrides max(1, max_n/100) when set.
	Swaps *int `yaml:"swaps,omitempty"`
}

// BenchConfig configures the harness.
type BenchConfig struct {
	Repeats   int    `yaml:"repeats"`
	Averaging string `yaml:"averaging"` // truncated, precise
	Check     bool   `yaml:"check"`     // verify sortedness after every repeat
}

// SweepConfig configures the grid.
type SweepConfig struct {
	MinN       int      `yaml:"min_n"`
	MaxN       int      `yaml:"max_n"`
	Step       int      `yaml:"step"`
	Thresholds []int    `yaml:"thresholds"`
	Shapes     []string `yaml:"shapes"`
}

// OutputConfig configures result sinks.
type OutputConfig struct {
	Format   string `yaml:"format"`   // csv, table
	Database string `yaml:"database"` // optional SQLite path
}

// AreaConfig configures the area estimator sweep.
type AreaConfig struct {
	Seed uint64 `yaml:"seed"`
	From int    `yaml:"from"`
	To   int    `yaml:"to"`
	Step int    `yaml:"step"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`   // optional extra output path
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() *Config {
	plan := sweep.DefaultPlan()
	return &Config{
		Source: SourceConfig{
			MaxN:    100000,
			ValueLo: 0,
			ValueHi: 6000,
			Seed:    arrays.DefaultSeed,
		},
		Bench: BenchConfig{
			Repeats:   5,
			Averaging: bench.Truncated.String(),
		},
		Sweep: SweepConfig{
			MinN:       plan.MinN,
			MaxN:       plan.MaxN,
			Step:       plan.Step,
			Thresholds: plan.Thresholds,
			Shapes:     []string{"random", "reverse", "almost"},
		},
		Output: OutputConfig{
			Format: "csv",
		},
		Area: AreaConfig{
			Seed: montecarlo.DefaultSeed,
			From: 100,
			To:   100000,
			Step: 500,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from path. A missing file or an empty path
// yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, trace.ConvertSystemError(err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, trace.BadParameter("failed to parse config %v: %v", path, err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, trace.Wrap(err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return trace.ConvertSystemError(err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return trace.Wrap(err)
	}
	return trace.ConvertSystemError(os.WriteFile(path, data, 0o644))
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SORTBENCH_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return trace.BadParameter("invalid SORTBENCH_SEED %q: %v", v, err)
		}
		c.Source.Seed = seed
	}
	if v := os.Getenv("SORTBENCH_REPEATS"); v != "" {
		repeats, err := strconv.Atoi(v)
		if err != nil {
			return trace.BadParameter("invalid SORTBENCH_REPEATS %q: %v", v, err)
		}
		c.Bench.Repeats = repeats
	}
	if v := os.Getenv("SORTBENCH_MAX_N"); v != "" {
		maxN, err := strconv.Atoi(v)
		if err != nil {
			return trace.BadParameter("invalid SORTBENCH_MAX_N %q: %v", v, err)
		}
		c.Source.MaxN = maxN
		c.Sweep.MaxN = maxN
	}
	if v := os.Getenv("SORTBENCH_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("SORTBENCH_DB"); v != "" {
		c.Output.Database = v
	}
	if v := os.Getenv("SORTBENCH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks the configuration. Values are never clamped.
func (c *Config) Validate() error {
	if c.Source.MaxN < 1 {
		return trace.BadParameter("source.max_n must be positive, got %d", c.Source.MaxN)
	}
	if c.Source.ValueLo > c.Source.ValueHi {
		return trace.BadParameter("source.value_lo %d exceeds source.value_hi %d", c.Source.ValueLo, c.Source.ValueHi)
	}
	if c.Source.Swaps != nil && *c.Source.Swaps < 0 {
		return trace.BadParameter("source.swaps must not be negative, got %d", *c.Source.Swaps)
	}
	if c.Bench.Repeats < 1 {
		return trace.BadParameter("bench.repeats must be at least 1, got %d", c.Bench.Repeats)
	}
	if _, err := bench.ParseAveraging(c.Bench.Averaging); err != nil {
		return trace.Wrap(err)
	}
	plan, err := c.Plan()
	if err != nil {
		return trace.Wrap(err)
	}
	if err := plan.Validate(); err != nil {
		return trace.Wrap(err)
	}
	if plan.MaxN > c.Source.MaxN {
		return trace.BadParameter("sweep.max_n %d exceeds source.max_n %d", plan.MaxN, c.Source.MaxN)
	}
	switch c.Output.Format {
	case "csv", "table":
	default:
		return trace.BadParameter("unknown output format %q, want csv or table", c.Output.Format)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return trace.BadParameter("unknown logging format %q, want json or console", c.Logging.Format)
	}
	if c.Area.Step < 1 || c.Area.From < 1 || c.Area.From > c.Area.To {
		return trace.BadParameter("invalid area sweep %d..%d step %d", c.Area.From, c.Area.To, c.Area.Step)
	}
	return nil
}

// Plan converts the sweep section into a sweep.Plan.
func (c *Config) Plan() (sweep.Plan, error) {
	shapes := make([]arrays.Shape, 0, len(c.Sweep.Shapes))
	for _, name := range c.Sweep.Shapes {
		shape, err := arrays.ParseShape(name)
		if err != nil {
			return sweep.Plan{}, trace.Wrap(err)
		}
		shapes = append(shapes, shape)
	}
	return sweep.Plan{
		MinN:       c.Sweep.MinN,
		MaxN:       c.Sweep.MaxN,
		Step:       c.Sweep.Step,
		Thresholds: c.Sweep.Thresholds,
		Shapes:     shapes,
	}, nil
}

// SourceOptions returns the arrays.New options the source section implies.
func (c *Config) SourceOptions() []arrays.Option {
	var opts []arrays.Option
	if c.Source.Swaps != nil {
		opts = append(opts, arrays.WithSwapCount(*c.Source.Swaps))
	}
	return opts
}

// NewSource builds the array source described by the configuration.
func (c *Config) NewSource() (*arrays.Source, error) {
	src, err := arrays.New(c.Source.MaxN, c.Source.ValueLo, c.Source.ValueHi, c.Source.Seed, c.SourceOptions()...)
	return src, trace.Wrap(err)
}

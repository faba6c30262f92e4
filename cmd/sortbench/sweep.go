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
package main

import (
	"io"

	"github.com/gravitational/trace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortbench/sortbench"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/bench"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/sweep"
)

type sweepOptions struct {
	grid      gridFlags
	repeats   int
	averaging string
	format    string
	db        string
	check     bool
}

func newSweepCmd(a *app) *cobra.Command {
	o := &sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Time both sorts over the size grid and print one row per size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.apply(cmd, a); err != nil {
				return trace.Wrap(err)
			}
			return runSweep(cmd, a)
		},
	}
	o.grid.register(cmd)
	f := cmd.Flags()
	f.IntVar(&o.repeats, "repeats", 5, "Timed runs averaged per measurement")
	f.StringVar(&o.averaging, "averaging", "truncated", "Averaging mode: truncated or precise")
	f.StringVar(&o.format, "format", "csv", "Output format: csv or table")
	f.StringVar(&o.db, "db", "", "Also record the run in this SQLite database")
	f.BoolVar(&o.check, "check", false, "Verify sortedness after every timed run")
	return cmd
}

func (o *sweepOptions) apply(cmd *cobra.Command, a *app) error {
	f := cmd.Flags()
	if f.Changed("repeats") {
		a.cfg.Bench.Repeats = o.repeats
	}
	if f.Changed("averaging") {
		a.cfg.Bench.Averaging = o.averaging
	}
	if f.Changed("format") {
		a.cfg.Output.Format = o.format
	}
	if f.Changed("db") {
		a.cfg.Output.Database = o.db
	}
	if f.Changed("check") {
		a.cfg.Bench.Check = o.check
	}
	return trace.Wrap(o.grid.apply(cmd, a.cfg))
}

func runSweep(cmd *cobra.Command, a *app) error {
	ctx := cmd.Context()
	cfg := a.cfg

	plan, err := cfg.Plan()
	if err != nil {
		return trace.Wrap(err)
	}
	averaging, err := bench.ParseAveraging(cfg.Bench.Averaging)
	if err != nil {
		return trace.Wrap(err)
	}
	src, err := cfg.NewSource()
	if err != nil {
		return trace.Wrap(err)
	}
	harness, err := bench.New(src, cfg.Bench.Repeats,
		bench.WithAveraging(averaging),
		bench.WithSortCheck(cfg.Bench.Check),
		bench.WithLogger(a.log),
	)
	if err != nil {
		return trace.Wrap(err)
	}
	runner, err := sweep.NewRunner(harness, plan, a.log)
	if err != nil {
		return trace.Wrap(err)
	}

	platform := sortbench.Describe()
	a.log.Info("Starting sweep",
		zap.Uint64("seed", cfg.Source.Seed),
		zap.Int("max_n", cfg.Source.MaxN),
		zap.Int("repeats", cfg.Bench.Repeats),
		zap.Stringer("averaging", averaging),
		zap.Ints("thresholds", plan.Thresholds),
		zap.Int("sizes", len(plan.Sizes())),
		zap.Stringer("platform", platform),
	)

	sink, err := newSink(cmd.OutOrStdout(), cfg.Output.Format)
	if err != nil {
		return trace.Wrap(err)
	}
	if cfg.Output.Database != "" {
		lo, hi := src.Bounds()
		db, err := sweep.OpenSQLiteSink(ctx, cfg.Output.Database, sweep.RunInfo{
			Seed:      cfg.Source.Seed,
			MaxN:      cfg.Source.MaxN,
			ValueLo:   lo,
			ValueHi:   hi,
			Repeats:   cfg.Bench.Repeats,
			Averaging: averaging.String(),
			Platform:  platform.String(),
		})
		if err != nil {
			return trace.Wrap(err)
		}
		defer func() {
			a.log.Info("Recorded run", zap.String("run_id", db.RunID()), zap.String("database", cfg.Output.Database))
		}()
		sink = sweep.MultiSink{sink, db}
	}

	runErr := runner.Run(ctx, sink)
	closeErr := sink.Close()
	if runErr != nil {
		return trace.NewAggregate(runErr, closeErr)
	}
	return trace.Wrap(closeErr)
}

func newSink(out io.Writer, format string) (sweep.Sink, error) {
	switch format {
	case "csv":
		return sweep.NewCSVSink(out), nil
	case "table":
		return sweep.NewTableSink(out), nil
	}
	return nil, trace.BadParameter("unknown output format %q, want csv or table", format)
}

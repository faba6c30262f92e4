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
// Command sortbench measures merge sort against hybrid merge/insertion sort
// over deterministic arrays and prints one CSV (or table) row per size.
//
// Usage:
//
//	sortbench sweep > results.csv
//	sortbench sweep --max-n 20000 --thresholds 8,16,32 --format table
//	sortbench sweep --db runs.db
//	sortbench verify --workers 8
//	sortbench area
//	sortbench env
//
// Result rows go to stdout; logs go to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gravitational/trace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortbench/internal/config"
	"github.com/ajroetker/go-sortbench/internal/logging"
)

// app carries state shared by the subcommands once the root command has
// loaded configuration and built the logger.
type app struct {
	cfgFile string
	verbose bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "sortbench",
		Short: "Benchmark merge sort against hybrid merge/insertion sort",
		Long: `sortbench times a top-down merge sort and a hybrid merge/insertion sort
on random, reverse-sorted and almost-sorted arrays drawn from a seeded
generator, so results are reproducible across runs and machines.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return trace.Wrap(err)
			}
			log, err := logging.New(cfg.Logging, a.verbose)
			if err != nil {
				return trace.Wrap(err)
			}
			a.cfg, a.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log every measurement")

	root.AddCommand(
		newSweepCmd(a),
		newVerifyCmd(a),
		newAreaCmd(a),
		newEnvCmd(a),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", trace.UserMessage(err))
		stop()
		os.Exit(1)
	}
}

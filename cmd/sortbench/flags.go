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
	"github.com/gravitational/trace"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortbench/internal/config"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/arrays"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/sweep"
)

// gridFlags are the source and grid flags shared by sweep and verify.
// Only flags the user set override the configuration.
type gridFlags struct {
	seed       uint64
	minN       int
	maxN       int
	step       int
	thresholds string
	shapes     string
}

func (g *gridFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Uint64Var(&g.seed, "seed", arrays.DefaultSeed, "Generator seed")
	f.IntVar(&g.minN, "min-n", 500, "Smallest array size")
	f.IntVar(&g.maxN, "max-n", 100000, "Largest array size (also the source capacity)")
	f.IntVar(&g.step, "step", 100, "Size increment")
	f.StringVar(&g.thresholds, "thresholds", "5,10,15,20,30,50", "Comma-separated hybrid thresholds")
	f.StringVar(&g.shapes, "shapes", "random,reverse,almost", "Comma-separated array shapes")
}

func (g *gridFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Source.Seed = g.seed
	}
	if f.Changed("min-n") {
		cfg.Sweep.MinN = g.minN
	}
	if f.Changed("max-n") {
		cfg.Sweep.MaxN = g.maxN
		cfg.Source.MaxN = g.maxN
	}
	if f.Changed("step") {
		cfg.Sweep.Step = g.step
	}
	if f.Changed("thresholds") {
		thresholds, err := sweep.ParseThresholds(g.thresholds)
		if err != nil {
			return trace.Wrap(err)
		}
		cfg.Sweep.Thresholds = thresholds
	}
	if f.Changed("shapes") {
		shapes, err := sweep.ParseShapes(g.shapes)
		if err != nil {
			return trace.Wrap(err)
		}
		cfg.Sweep.Shapes = make([]string, len(shapes))
		for i, s := range shapes {
			cfg.Sweep.Shapes[i] = s.String()
		}
	}
	return trace.Wrap(cfg.Validate())
}

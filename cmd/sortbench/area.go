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
	"bytes"
	"fmt"
	"strconv"

	"github.com/gravitational/trace"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/montecarlo"
)

func newAreaCmd(a *app) *cobra.Command {
	var (
		seed           uint64
		from, to, step int
		format         string
	)
	cmd := &cobra.Command{
		Use:   "area",
		Short: "Estimate the three-circle intersection area by Monte-Carlo sampling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			f := cmd.Flags()
			if f.Changed("seed") {
				cfg.Area.Seed = seed
			}
			if f.Changed("from") {
				cfg.Area.From = from
			}
			if f.Changed("to") {
				cfg.Area.To = to
			}
			if f.Changed("step") {
				cfg.Area.Step = step
			}
			if f.Changed("format") {
				cfg.Output.Format = format
			}
			if err := cfg.Validate(); err != nil {
				return trace.Wrap(err)
			}

			est := montecarlo.NewEstimator(cfg.Area.Seed)
			points, err := est.Sweep(montecarlo.ReferenceCircles(), cfg.Area.From, cfg.Area.To, cfg.Area.Step)
			if err != nil {
				return trace.Wrap(err)
			}
			exact := montecarlo.ReferenceArea()
			a.log.Info("Estimated area",
				zap.Int("points", len(points)),
				zap.Float64("exact", exact),
				zap.Float64("last", points[len(points)-1].Area))

			out := cmd.OutOrStdout()
			if cfg.Output.Format == "table" {
				var buf bytes.Buffer
				table := tablewriter.NewWriter(&buf)
				table.SetHeader([]string{"samples", "area", "error"})
				table.SetAutoFormatHeaders(false)
				table.SetAlignment(tablewriter.ALIGN_RIGHT)
				for _, p := range points {
					table.Append([]string{
						strconv.Itoa(p.Samples),
						strconv.FormatFloat(p.Area, 'f', 15, 64),
						strconv.FormatFloat(p.Area-exact, 'f', 6, 64),
					})
				}
				table.Render()
				_, err := buf.WriteTo(out)
				return trace.ConvertSystemError(err)
			}
			// One "samples area" line per estimate.
			for _, p := range points {
				if _, err := fmt.Fprintf(out, "%d %.15f\n", p.Samples, p.Area); err != nil {
					return trace.ConvertSystemError(err)
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Uint64Var(&seed, "seed", montecarlo.DefaultSeed, "Generator seed")
	f.IntVar(&from, "from", 100, "Smallest sample count")
	f.IntVar(&to, "to", 100000, "Largest sample count")
	f.IntVar(&step, "step", 500, "Sample count increment")
	f.StringVar(&format, "format", "csv", "Output format: csv (plain \"samples area\" lines) or table")
	return cmd
}

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
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gravitational/trace"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortbench/sortbench"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/arrays"
)

func newEnvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Describe the platform and the configured source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := sortbench.Describe()
			cfg := a.cfg

			// Three base arrays of int64.
			sourceBytes := uint64(len(arrays.Shapes())) * uint64(cfg.Source.MaxN) * 8
			swaps := arrays.DefaultSwapCount(cfg.Source.MaxN)
			if cfg.Source.Swaps != nil {
				swaps = *cfg.Source.Swaps
			}

			var buf bytes.Buffer
			table := tablewriter.NewWriter(&buf)
			table.SetHeader([]string{"key", "value"})
			table.SetAutoFormatHeaders(false)
			table.AppendBulk([][]string{
				{"os/arch", p.GOOS + "/" + p.GOARCH},
				{"go", p.GoVersion},
				{"cpus", strconv.Itoa(p.NumCPU)},
				{"gomaxprocs", strconv.Itoa(p.GOMAXPROCS)},
				{"level", p.Level},
				{"features", strings.Join(p.Features, " ")},
				{"seed", strconv.FormatUint(cfg.Source.Seed, 10)},
				{"max_n", humanize.Comma(int64(cfg.Source.MaxN))},
				{"values", strconv.FormatInt(cfg.Source.ValueLo, 10) + ".." + strconv.FormatInt(cfg.Source.ValueHi, 10)},
				{"swaps", humanize.Comma(int64(swaps))},
				{"source memory", humanize.Bytes(sourceBytes)},
				{"repeats", strconv.Itoa(cfg.Bench.Repeats)},
				{"averaging", cfg.Bench.Averaging},
			})
			table.Render()
			_, err := buf.WriteTo(cmd.OutOrStdout())
			return trace.ConvertSystemError(err)
		},
	}
}

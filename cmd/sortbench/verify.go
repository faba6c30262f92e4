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
	"fmt"

	"github.com/gravitational/trace"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/sweep"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/workerpool"
)

func newVerifyCmd(a *app) *cobra.Command {
	var (
		grid    gridFlags
		workers int
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that both sorts agree with the standard library over the grid",
		Long: `verify sorts every (size, shape) point of the grid with merge sort and with
hybrid sort at every threshold, comparing each result with slices.Sort.
Points are checked in parallel; nothing is timed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := grid.apply(cmd, a.cfg); err != nil {
				return trace.Wrap(err)
			}
			plan, err := a.cfg.Plan()
			if err != nil {
				return trace.Wrap(err)
			}
			src, err := a.cfg.NewSource()
			if err != nil {
				return trace.Wrap(err)
			}
			pool := workerpool.New(workers)
			defer pool.Close()

			if err := sweep.Verify(cmd.Context(), src, plan, pool, a.log); err != nil {
				return trace.Wrap(err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return trace.ConvertSystemError(err)
		},
	}
	grid.register(cmd)
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker goroutines (0 means GOMAXPROCS)")
	return cmd
}

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
package sweep

import (
	"context"
	"time"

	"github.com/gravitational/trace"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/arrays"
)

// Measurer times the two sorts. *bench.Harness implements it.
type Measurer interface {
	MeasureMerge(n int, shape arrays.Shape) (time.Duration, error)
	MeasureHybrid(n int, shape arrays.Shape, threshold int) (time.Duration, error)
}

// Runner measures every point of a plan, in order, on the calling
// goroutine.
type Runner struct {
	m    Measurer
	plan Plan
	log  *zap.Logger
}

// NewRunner validates plan and returns a Runner. A nil logger is replaced
// by a no-op logger.
func NewRunner(m Measurer, plan Plan, log *zap.Logger) (*Runner, error) {
	if m == nil {
		return nil, trace.BadParameter("missing measurer")
	}
	if err := plan.Validate(); err != nil {
		return nil, trace.Wrap(err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{m: m, plan: plan, log: log}, nil
}

// Plan returns the runner's plan.
func (r *Runner) Plan() Plan {
	return r.plan
}

// Run measures the plan and hands each row to sink as soon as it is
// complete. ctx is checked between sizes; a measurement in progress always
// runs to completion. The sink is not closed.
func (r *Runner) Run(ctx context.Context, sink Sink) error {
	if err := sink.Begin(ctx, r.plan); err != nil {
		return trace.Wrap(err)
	}
	sizes := r.plan.Sizes()
	r.log.Info("Starting sweep",
		zap.Int("min_n", r.plan.MinN),
		zap.Int("max_n", r.plan.MaxN),
		zap.Int("step", r.plan.Step),
		zap.Int("rows", len(sizes)),
		zap.Ints("thresholds", r.plan.Thresholds))

	started := time.Now()
	for i, n := range sizes {
		if err := ctx.Err(); err != nil {
			r.log.Warn("Sweep interrupted", zap.Int("n", n), zap.Int("rows_done", i))
			return trace.Wrap(err)
		}
		row, err := r.MeasureRow(n)
		if err != nil {
			return trace.Wrap(err)
		}
		if err := sink.Write(ctx, row); err != nil {
			return trace.Wrap(err)
		}
		r.log.Debug("Row complete", zap.Int("n", n), zap.Int("row", i+1), zap.Int("rows", len(sizes)))
	}
	r.log.Info("Sweep complete", zap.Int("rows", len(sizes)), zap.Duration("elapsed", time.Since(started)))
	return nil
}

// MeasureRow measures one size: for each shape the merge sort, then the
// hybrid sort for each threshold in plan order. Nothing is cached between
// points.
func (r *Runner) MeasureRow(n int) (Row, error) {
	row := Row{N: n, Cells: make([]ShapeTimings, 0, len(r.plan.Shapes))}
	for _, shape := range r.plan.Shapes {
		cell := ShapeTimings{Shape: shape, Hybrid: make([]time.Duration, len(r.plan.Thresholds))}
		d, err := r.m.MeasureMerge(n, shape)
		if err != nil {
			return Row{}, trace.Wrap(err)
		}
		cell.Merge = d
		for i, th := range r.plan.Thresholds {
			d, err := r.m.MeasureHybrid(n, shape, th)
			if err != nil {
				return Row{}, trace.Wrap(err)
			}
			cell.Hybrid[i] = d
		}
		row.Cells = append(row.Cells, cell)
	}
	return row, nil
}

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
// Package sweep drives the benchmark harness over a grid of array sizes,
// shapes and hybrid thresholds, and emits one Row per size.
//
// The reference output is one CSV record per size with no header:
//
//	n, merge_random, hybrid_random[t...], merge_reverse, hybrid_reverse[t...], merge_almost, hybrid_almost[t...]
//
// with thresholds in plan order ({5, 10, 15, 20, 30, 50} by default).
// Rows can also go to an aligned text table or a SQLite database through
// the Sink implementations in this package.
//
// Verify runs the same grid as a correctness check instead of a timing run.
package sweep

import (
	"strconv"
	"strings"

	"github.com/gravitational/trace"
	"github.com/samber/lo"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/arrays"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/sort"
)

// DefaultThresholds are the hybrid thresholds of the reference sweep.
func DefaultThresholds() []int {
	return []int{5, 10, 15, 20, 30, 50}
}

// Plan is the grid a sweep covers.
type Plan struct {
	MinN       int
	MaxN       int
	Step       int
	Thresholds []int
	Shapes     []arrays.Shape
}

// DefaultPlan returns the reference sweep: n = 500..100000 step 100 over
// every shape with the default thresholds.
func DefaultPlan() Plan {
	return Plan{
		MinN:       500,
		MaxN:       100000,
		Step:       100,
		Thresholds: DefaultThresholds(),
		Shapes:     arrays.Shapes(),
	}
}

// Validate checks the plan. Nothing is clamped.
func (p Plan) Validate() error {
	if p.MinN < 1 {
		return trace.BadParameter("sweep min_n must be at least 1, got %d", p.MinN)
	}
	if p.MaxN < p.MinN {
		return trace.BadParameter("sweep max_n %d is below min_n %d", p.MaxN, p.MinN)
	}
	if p.Step < 1 {
		return trace.BadParameter("sweep step must be at least 1, got %d", p.Step)
	}
	if len(p.Thresholds) == 0 {
		return trace.BadParameter("at least one hybrid threshold is required")
	}
	for _, th := range p.Thresholds {
		if err := sort.CheckThreshold(th); err != nil {
			return trace.Wrap(err)
		}
	}
	if len(lo.Uniq(p.Thresholds)) != len(p.Thresholds) {
		return trace.BadParameter("duplicate hybrid thresholds in %v", p.Thresholds)
	}
	if len(p.Shapes) == 0 {
		return trace.BadParameter("at least one array shape is required")
	}
	for _, s := range p.Shapes {
		if !s.Valid() {
			return trace.BadParameter("unknown array shape %d", int(s))
		}
	}
	if len(lo.Uniq(p.Shapes)) != len(p.Shapes) {
		return trace.BadParameter("duplicate array shapes in %v", p.Shapes)
	}
	return nil
}

// Sizes enumerates MinN, MinN+Step, ... up to and including MaxN.
func (p Plan) Sizes() []int {
	if p.MinN < 1 || p.Step < 1 || p.MaxN < p.MinN {
		return nil
	}
	// Sizes are derived from the index so MaxN near math.MaxInt cannot wrap.
	sizes := make([]int, (p.MaxN-p.MinN)/p.Step+1)
	for i := range sizes {
		sizes[i] = p.MinN + i*p.Step
	}
	return sizes
}

// Columns returns a header for Row.Record, e.g. "merge_random",
// "hybrid5_random".
func (p Plan) Columns() []string {
	cols := []string{"n"}
	for _, shape := range p.Shapes {
		cols = append(cols, "merge_"+shape.String())
		cols = append(cols, lo.Map(p.Thresholds, func(th int, _ int) string {
			return "hybrid" + strconv.Itoa(th) + "_" + shape.String()
		})...)
	}
	return cols
}

// ParseThresholds parses a comma-separated threshold list such as
// "5,10,15". Every entry must be a positive integer.
func ParseThresholds(s string) ([]int, error) {
	parts := lo.Compact(lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))
	if len(parts) == 0 {
		return nil, trace.BadParameter("empty threshold list %q", s)
	}
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		th, err := strconv.Atoi(part)
		if err != nil {
			return nil, trace.BadParameter("invalid threshold %q: %v", part, err)
		}
		if err := sort.CheckThreshold(th); err != nil {
			return nil, trace.Wrap(err)
		}
		out = append(out, th)
	}
	return out, nil
}

// ParseShapes parses a comma-separated shape list such as
// "random,reverse".
func ParseShapes(s string) ([]arrays.Shape, error) {
	parts := lo.Compact(lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))
	if len(parts) == 0 {
		return nil, trace.BadParameter("empty shape list %q", s)
	}
	out := make([]arrays.Shape, 0, len(parts))
	for _, part := range parts {
		shape, err := arrays.ParseShape(part)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		out = append(out, shape)
	}
	return out, nil
}

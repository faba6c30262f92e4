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
	"slices"
	"time"

	"github.com/gravitational/trace"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/arrays"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/bench"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/sort"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/workerpool"
)

// Verify checks, for every (size, shape) of plan, that merge sort output is
// the sorted permutation of its input and that hybrid sort with every
// plan threshold produces the same sequence. Tasks run on pool; each task
// draws its own slices and owns its merge buffer. All failures are
// returned as one aggregate error.
func Verify(ctx context.Context, src bench.Slicer, plan Plan, pool *workerpool.Pool, log *zap.Logger) error {
	if src == nil || pool == nil {
		return trace.BadParameter("Verify needs an array source and a worker pool")
	}
	if err := plan.Validate(); err != nil {
		return trace.Wrap(err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	type task struct {
		n     int
		shape arrays.Shape
	}
	var tasks []task
	for _, n := range plan.Sizes() {
		for _, shape := range plan.Shapes {
			tasks = append(tasks, task{n: n, shape: shape})
		}
	}

	log.Info("Verifying sorts",
		zap.Int("tasks", len(tasks)),
		zap.Int("workers", pool.NumWorkers()),
		zap.Ints("thresholds", plan.Thresholds))
	started := time.Now()

	err := pool.Run(ctx, len(tasks), func(ctx context.Context, i int) error {
		t := tasks[i]
		return verifyPoint(src, t.n, t.shape, plan.Thresholds)
	})
	if err != nil {
		log.Warn("Verification failed", zap.Error(err))
		return trace.Wrap(err)
	}
	log.Info("Verification passed", zap.Int("tasks", len(tasks)), zap.Duration("elapsed", time.Since(started)))
	return nil
}

func verifyPoint(src bench.Slicer, n int, shape arrays.Shape, thresholds []int) error {
	input, err := src.Slice(shape, n)
	if err != nil {
		return trace.Wrap(err)
	}
	want := slices.Clone(input)
	slices.Sort(want)

	buf := make([]int64, n)
	merged := slices.Clone(input)
	if err := sort.MergeSortBuffer(merged, buf); err != nil {
		return trace.Wrap(err)
	}
	if !slices.Equal(merged, want) {
		return trace.CompareFailed("merge sort of %v n=%d is not the sorted permutation of its input", shape, n)
	}

	for _, th := range thresholds {
		hybrid, err := src.Slice(shape, n)
		if err != nil {
			return trace.Wrap(err)
		}
		if err := sort.HybridSortBuffer(hybrid, buf, th); err != nil {
			return trace.Wrap(err)
		}
		if !slices.Equal(hybrid, merged) {
			return trace.CompareFailed("hybrid sort of %v n=%d threshold=%d differs from merge sort", shape, n, th)
		}
	}
	return nil
}

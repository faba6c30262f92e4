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
// Package bench times the merge and hybrid sorts over arrays drawn from an
// arrays.Source.
//
// Every repeat of a measurement draws a fresh, unsorted slice; the timer
// brackets only the sort call. Repeats are averaged according to an
// Averaging mode. Truncated, the default, truncates each repeat to whole
// milliseconds and integer-divides the sum, which reproduces the historic
// CSV output. Precise averages full-resolution durations.
//
// A Harness keeps no state between calls besides its Slicer, and runs on
// the calling goroutine.
package bench

import (
	"strings"
	"time"

	"github.com/gravitational/trace"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/arrays"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/sort"
)

// Slicer hands out independent array copies. *arrays.Source implements it.
type Slicer interface {
	Slice(shape arrays.Shape, n int) ([]int64, error)
}

// Clock is the time source used to bracket sort calls.
type Clock interface {
	Now() time.Time
	Since(start time.Time) time.Duration
}

type wallClock struct{}

func (wallClock) Now() time.Time                      { return time.Now() }
func (wallClock) Since(start time.Time) time.Duration { return time.Since(start) }

// Averaging selects how repeat durations are combined.
type Averaging int

const (
	// Truncated truncates every repeat to whole milliseconds before an
	// integer average. Small measurements are biased toward zero.
	Truncated Averaging = iota

	// Precise averages full-resolution durations.
	Precise
)

// String returns the config/flag name of the mode.
func (a Averaging) String() string {
	switch a {
	case Truncated:
		return "truncated"
	case Precise:
		return "precise"
	default:
		return "unknown"
	}
}

// ParseAveraging parses an averaging mode name.
func ParseAveraging(name string) (Averaging, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "truncated", "truncate", "ms":
		return Truncated, nil
	case "precise", "full":
		return Precise, nil
	}
	return 0, trace.BadParameter("unknown averaging mode %q", name)
}

// Algorithm names the sort a measurement ran.
type Algorithm string

const (
	Merge  Algorithm = "merge"
	Hybrid Algorithm = "hybrid"
)

// Harness runs timed, repeated sorts.
type Harness struct {
	src       Slicer
	repeats   int
	averaging Averaging
	clock     Clock
	check     bool
	log       *zap.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithAveraging sets the averaging mode. The default is Truncated.
func WithAveraging(a Averaging) Option {
	return func(h *Harness) { h.averaging = a }
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(h *Harness) { h.clock = c }
}

// WithLogger attaches a logger; measurements are logged at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(h *Harness) { h.log = log }
}

// WithSortCheck makes every repeat verify, after the timer stops, that the
// sort produced non-decreasing output.
func WithSortCheck(enabled bool) Option {
	return func(h *Harness) { h.check = enabled }
}

// New returns a Harness drawing from src. repeats must be at least 1.
func New(src Slicer, repeats int, opts ...Option) (*Harness, error) {
	if src == nil {
		return nil, trace.BadParameter("missing array source")
	}
	if repeats < 1 {
		return nil, trace.BadParameter("repeats must be at least 1, got %d", repeats)
	}
	h := &Harness{
		src:     src,
		repeats: repeats,
		clock:   wallClock{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.averaging != Truncated && h.averaging != Precise {
		return nil, trace.BadParameter("unknown averaging mode %d", int(h.averaging))
	}
	if h.clock == nil {
		h.clock = wallClock{}
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	return h, nil
}

// Repeats returns the number of timed runs per measurement.
func (h *Harness) Repeats() int {
	return h.repeats
}

// Averaging returns the averaging mode.
func (h *Harness) Averaging() Averaging {
	return h.averaging
}

// MeasureMerge returns the mean time MergeSort takes on fresh slices of
// length n and the given shape.
func (h *Harness) MeasureMerge(n int, shape arrays.Shape) (time.Duration, error) {
	d, err := h.measure(n, shape, Merge, 0, func(data []int64) error {
		sort.MergeSort(data)
		return nil
	})
	return d, trace.Wrap(err)
}

// MeasureHybrid returns the mean time HybridSort takes with the given
// threshold. An invalid threshold fails before any slice is drawn.
func (h *Harness) MeasureHybrid(n int, shape arrays.Shape, threshold int) (time.Duration, error) {
	if err := sort.CheckThreshold(threshold); err != nil {
		return 0, trace.Wrap(err)
	}
	d, err := h.measure(n, shape, Hybrid, threshold, func(data []int64) error {
		return sort.HybridSort(data, threshold)
	})
	return d, trace.Wrap(err)
}

func (h *Harness) measure(n int, shape arrays.Shape, algo Algorithm, threshold int, run func([]int64) error) (time.Duration, error) {
	var (
		totalMillis int64
		total       time.Duration
	)
	for rep := range h.repeats {
		data, err := h.src.Slice(shape, n)
		if err != nil {
			return 0, trace.Wrap(err)
		}

		start := h.clock.Now()
		err = run(data)
		elapsed := h.clock.Since(start)
		if err != nil {
			return 0, trace.Wrap(err)
		}

		if h.check && !sort.IsSorted(data) {
			return 0, trace.CompareFailed("%s sort of %v n=%d threshold=%d left repeat %d unsorted",
				algo, shape, n, threshold, rep)
		}
		totalMillis += elapsed.Milliseconds()
		total += elapsed
	}

	var mean time.Duration
	switch h.averaging {
	case Precise:
		mean = total / time.Duration(h.repeats)
	default:
		mean = time.Duration(totalMillis/int64(h.repeats)) * time.Millisecond
	}

	h.log.Debug("Measured sort",
		zap.String("algorithm", string(algo)),
		zap.Stringer("shape", shape),
		zap.Int("n", n),
		zap.Int("threshold", threshold),
		zap.Int("repeats", h.repeats),
		zap.Stringer("averaging", h.averaging),
		zap.Duration("mean", mean))
	return mean, nil
}

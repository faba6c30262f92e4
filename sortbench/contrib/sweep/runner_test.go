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
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gravitational/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/arrays"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/bench"
)

// scriptedMeasurer records calls and returns n/100 ms (+ threshold ms for
// hybrid) so rows are predictable.
type scriptedMeasurer struct {
	calls  []string
	failAt int
}

func (s *scriptedMeasurer) MeasureMerge(n int, shape arrays.Shape) (time.Duration, error) {
	s.calls = append(s.calls, fmt.Sprintf("merge %v %d", shape, n))
	if s.failAt > 0 && n >= s.failAt {
		return 0, trace.LimitExceeded("n=%d too large", n)
	}
	return time.Duration(n/100) * time.Millisecond, nil
}

func (s *scriptedMeasurer) MeasureHybrid(n int, shape arrays.Shape, threshold int) (time.Duration, error) {
	s.calls = append(s.calls, fmt.Sprintf("hybrid %v %d %d", shape, n, threshold))
	return time.Duration(n/100+threshold) * time.Millisecond, nil
}

type memorySink struct {
	begun  bool
	rows   []Row
	closed bool
}

func (m *memorySink) Begin(context.Context, Plan) error { m.begun = true; return nil }
func (m *memorySink) Write(_ context.Context, row Row) error {
	m.rows = append(m.rows, row)
	return nil
}
func (m *memorySink) Close() error        { m.closed = true; return nil }

func smallPlan() Plan {
	return Plan{MinN: 100, MaxN: 300, Step: 100, Thresholds: []int{5, 10}, Shapes: arrays.Shapes()}
}

func TestNewRunnerInvalid(t *testing.T) {
	_, err := NewRunner(nil, smallPlan(), nil)
	assert.True(t, trace.IsBadParameter(err))

	p := smallPlan()
	p.Step = 0
	_, err = NewRunner(&scriptedMeasurer{}, p, nil)
	assert.True(t, trace.IsBadParameter(err))
}

func TestRunnerOrder(t *testing.T) {
	m := &scriptedMeasurer{}
	r, err := NewRunner(m, smallPlan(), nil)
	require.NoError(t, err)

	sink := &memorySink{}
	require.NoError(t, r.Run(context.Background(), sink))
	assert.True(t, sink.begun)
	assert.False(t, sink.closed, "Run must not close the sink")

	require.Len(t, sink.rows, 3)
	assert.Equal(t, []string{
		"merge random 100", "hybrid random 100 5", "hybrid random 100 10",
		"merge reverse 100", "hybrid reverse 100 5", "hybrid reverse 100 10",
		"merge almost 100", "hybrid almost 100 5", "hybrid almost 100 10",
	}, m.calls[:9])
	assert.Len(t, m.calls, 27)

	assert.Equal(t, []string{"200", "2", "7", "12", "2", "7", "12", "2", "7", "12"}, sink.rows[1].Record())
}

func TestRunnerPropagatesOutOfRange(t *testing.T) {
	m := &scriptedMeasurer{failAt: 300}
	r, err := NewRunner(m, smallPlan(), nil)
	require.NoError(t, err)

	sink := &memorySink{}
	err = r.Run(context.Background(), sink)
	assert.True(t, trace.IsLimitExceeded(err), "%v", err)
	assert.Len(t, sink.rows, 2)
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := &scriptedMeasurer{}
	r, err := NewRunner(m, smallPlan(), nil)
	require.NoError(t, err)

	err = r.Run(ctx, &memorySink{})
	assert.True(t, errors.Is(trace.Unwrap(err), context.Canceled), "%v", err)
	assert.Empty(t, m.calls)
}

// TestRunnerWithHarness runs a tiny real sweep end to end into CSV.
func TestRunnerWithHarness(t *testing.T) {
	src, err := arrays.New(1000, 0, 6000, arrays.DefaultSeed)
	require.NoError(t, err)
	h, err := bench.New(src, 2, bench.WithSortCheck(true))
	require.NoError(t, err)

	plan := Plan{MinN: 500, MaxN: 1000, Step: 250, Thresholds: DefaultThresholds(), Shapes: arrays.Shapes()}
	r, err := NewRunner(h, plan, nil)
	require.NoError(t, err)

	var out strings.Builder
	sink := NewCSVSink(&out)
	require.NoError(t, r.Run(context.Background(), sink))
	require.NoError(t, sink.Close())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		fields := strings.Split(line, ",")
		assert.Len(t, fields, 1+3*(1+6), "line %d", i)
		assert.Equal(t, fmt.Sprint(500+250*i), fields[0])
	}

	plan.MaxN = 1250
	r, err = NewRunner(h, plan, nil)
	require.NoError(t, err)
	err = r.Run(context.Background(), &memorySink{})
	assert.True(t, trace.IsLimitExceeded(err), "%v", err)
}

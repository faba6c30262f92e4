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
package sort

import (
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gravitational/trace"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/arrays"
)

var testThresholds = []int{1, 2, 3, 5, 10, 15, 20, 30, 50, 1000}

// sortFunc adapts both sorts to one signature for table tests.
type sortFunc struct {
	name string
	fn   func([]int64)
}

func allSorts(t *testing.T) []sortFunc {
	fns := []sortFunc{{"merge", MergeSort[int64]}}
	for _, th := range testThresholds {
		fns = append(fns, sortFunc{
			name: "hybrid/" + strconv.Itoa(th),
			fn: func(data []int64) {
				if err := HybridSort(data, th); err != nil {
					t.Fatalf("HybridSort(threshold=%d) failed: %v", th, err)
				}
			},
		})
	}
	return fns
}

// TestSortEmpty tests sorting empty slices
func TestSortEmpty(t *testing.T) {
	for _, s := range allSorts(t) {
		var empty []int64
		s.fn(empty)
		if len(empty) != 0 {
			t.Errorf("%s(empty) should not modify empty slice", s.name)
		}
		s.fn([]int64{})
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	for _, s := range allSorts(t) {
		data := []int64{42}
		s.fn(data)
		if data[0] != 42 {
			t.Errorf("%s([42]) = %v, want [42]", s.name, data)
		}
	}
}

func TestSortSmallCases(t *testing.T) {
	cases := []struct {
		name string
		data []int64
	}{
		{"two ordered", []int64{1, 2}},
		{"two swapped", []int64{2, 1}},
		{"three", []int64{3, 1, 2}},
		{"already sorted", []int64{1, 2, 3, 4, 5, 6, 7, 8}},
		{"reverse", []int64{8, 7, 6, 5, 4, 3, 2, 1}},
		{"duplicates", []int64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}},
		{"all same", []int64{5, 5, 5, 5, 5, 5, 5, 5}},
		{"negatives", []int64{0, -1, math.MaxInt64, math.MinInt64, 7, -7}},
	}
	for _, s := range allSorts(t) {
		for _, c := range cases {
			data := slices.Clone(c.data)
			want := slices.Clone(c.data)
			slices.Sort(want)
			s.fn(data)
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("%s(%s) mismatch (-want +got):\n%s", s.name, c.name, diff)
			}
		}
	}
}

// TestSortMatchesStdlib verifies both sorts produce the same result as
// slices.Sort on random data.
func TestSortMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewPCG(12345, 0))
	sizes := []int{7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000, 4097}
	for _, n := range sizes {
		ref := make([]int64, n)
		for i := range ref {
			ref[i] = rng.Int64N(10000) - 5000
		}
		want := slices.Clone(ref)
		slices.Sort(want)
		for _, s := range allSorts(t) {
			data := slices.Clone(ref)
			s.fn(data)
			if !slices.Equal(data, want) {
				t.Errorf("%s(random, n=%d) does not match slices.Sort", s.name, n)
			}
		}
	}
}

// TestSortShapes runs every sort over every array shape and checks
// sortedness, the permutation invariant and hybrid/merge equivalence.
func TestSortShapes(t *testing.T) {
	src, err := arrays.New(5000, 0, 6000, arrays.DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}
	for _, shape := range arrays.Shapes() {
		for _, n := range []int{0, 1, 2, 499, 500, 5000} {
			input, err := src.Slice(shape, n)
			if err != nil {
				t.Fatal(err)
			}
			merged := slices.Clone(input)
			MergeSort(merged)
			if !IsSorted(merged) {
				t.Fatalf("MergeSort(%v, n=%d) not sorted", shape, n)
			}
			multiset := slices.Clone(input)
			slices.Sort(multiset)
			if !slices.Equal(merged, multiset) {
				t.Fatalf("MergeSort(%v, n=%d) is not a permutation of its input", shape, n)
			}
			for _, th := range testThresholds {
				hybrid := slices.Clone(input)
				if err := HybridSort(hybrid, th); err != nil {
					t.Fatal(err)
				}
				if !slices.Equal(hybrid, merged) {
					t.Errorf("HybridSort(%v, n=%d, threshold=%d) differs from MergeSort", shape, n, th)
				}
			}
		}
	}
}

// TestScenarioSmall sorts the 5-element prefix of a tiny source.
func TestScenarioSmall(t *testing.T) {
	src, err := arrays.New(10, 0, 9, arrays.DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := src.Slice(arrays.Random, 5)
	b, _ := src.Slice(arrays.Random, 5)
	MergeSort(a)
	if err := HybridSort(b, 2); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("HybridSort(2) differs from MergeSort (-merge +hybrid):\n%s", diff)
	}
}

// TestSortStable uses signed zeros, which compare equal but stay
// distinguishable, to check equal elements keep their relative order.
func TestSortStable(t *testing.T) {
	negZero := math.Copysign(0, -1)
	rng := rand.New(rand.NewPCG(7, 7))
	input := make([]float64, 300)
	var wantSigns []bool
	for i := range input {
		switch rng.IntN(3) {
		case 0:
			input[i] = negZero
			wantSigns = append(wantSigns, true)
		case 1:
			input[i] = 0
			wantSigns = append(wantSigns, false)
		default:
			input[i] = float64(rng.IntN(20) - 10)
			if input[i] == 0 {
				input[i] = 1
			}
		}
	}

	check := func(name string, data []float64) {
		t.Helper()
		var gotSigns []bool
		for _, v := range data {
			if v == 0 {
				gotSigns = append(gotSigns, math.Signbit(v))
			}
		}
		if !slices.Equal(gotSigns, wantSigns) {
			t.Errorf("%s is not stable: zero signs %v, want %v", name, gotSigns, wantSigns)
		}
	}

	data := slices.Clone(input)
	MergeSort(data)
	check("MergeSort", data)
	for _, th := range testThresholds {
		data := slices.Clone(input)
		if err := HybridSort(data, th); err != nil {
			t.Fatal(err)
		}
		check("HybridSort/"+strconv.Itoa(th), data)
	}
}

func TestHybridSortInvalidThreshold(t *testing.T) {
	for _, th := range []int{0, -1, math.MinInt} {
		data := []int64{3, 2, 1}
		err := HybridSort(data, th)
		if !trace.IsBadParameter(err) {
			t.Errorf("HybridSort(threshold=%d) error = %v, want BadParameter", th, err)
		}
		if !slices.Equal(data, []int64{3, 2, 1}) {
			t.Errorf("HybridSort(threshold=%d) modified data: %v", th, data)
		}
	}
	if err := HybridSort([]int64(nil), 0); !trace.IsBadParameter(err) {
		t.Errorf("HybridSort(nil, 0) error = %v, want BadParameter", err)
	}
}

func TestSortBuffer(t *testing.T) {
	buf := make([]int64, 64)
	rng := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		n := rng.IntN(65)
		data := make([]int64, n)
		for i := range data {
			data[i] = rng.Int64N(100)
		}
		want := slices.Clone(data)
		slices.Sort(want)

		a := slices.Clone(data)
		if err := MergeSortBuffer(a, buf); err != nil {
			t.Fatal(err)
		}
		b := slices.Clone(data)
		if err := HybridSortBuffer(b, buf, 8); err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(a, want) || !slices.Equal(b, want) {
			t.Fatalf("buffered sorts mismatch for n=%d", n)
		}
	}

	short := make([]int64, 3)
	if err := MergeSortBuffer([]int64{4, 3, 2, 1}, short); !trace.IsBadParameter(err) {
		t.Errorf("MergeSortBuffer(short buffer) error = %v, want BadParameter", err)
	}
	if err := HybridSortBuffer([]int64{4, 3, 2, 1}, short, 2); !trace.IsBadParameter(err) {
		t.Errorf("HybridSortBuffer(short buffer) error = %v, want BadParameter", err)
	}
	if err := HybridSortBuffer([]int64{4, 3}, buf, 0); !trace.IsBadParameter(err) {
		t.Errorf("HybridSortBuffer(threshold=0) error = %v, want BadParameter", err)
	}
}

func TestInsertionSortRange(t *testing.T) {
	data := []int64{9, 8, 5, 3, 4, 1, 0, -1}
	InsertionSortRange(data, 2, 5)
	want := []int64{9, 8, 1, 3, 4, 5, 0, -1}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("InsertionSortRange(2, 5) mismatch (-want +got):\n%s", diff)
	}

	// Empty and inverted ranges.
	InsertionSortRange(data, 3, 3)
	InsertionSortRange(data, 5, 2)
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("degenerate ranges modified data:\n%s", diff)
	}

	all := []int64{5, 4, 3, 2, 1}
	InsertionSort(all)
	if !IsSorted(all) {
		t.Errorf("InsertionSort = %v", all)
	}
	InsertionSort([]int64(nil))
}

func TestSortStrings(t *testing.T) {
	data := []string{"pear", "apple", "fig", "banana", "apple", "kiwi"}
	want := slices.Clone(data)
	slices.Sort(want)

	a := slices.Clone(data)
	MergeSort(a)
	b := slices.Clone(data)
	if err := HybridSort(b, 3); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a, want) || !slices.Equal(b, want) {
		t.Errorf("string sorts = %v / %v, want %v", a, b, want)
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		data []int32
		want bool
	}{
		{nil, true},
		{[]int32{1}, true},
		{[]int32{1, 1, 2}, true},
		{[]int32{2, 1}, false},
		{[]int32{1, 2, 3, 2}, false},
	}
	for _, tt := range tests {
		if got := IsSorted(tt.data); got != tt.want {
			t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
		}
	}
}

func TestCheckThreshold(t *testing.T) {
	if err := CheckThreshold(1); err != nil {
		t.Errorf("CheckThreshold(1) = %v", err)
	}
	if err := CheckThreshold(0); !trace.IsBadParameter(err) {
		t.Errorf("CheckThreshold(0) = %v, want BadParameter", err)
	}
}

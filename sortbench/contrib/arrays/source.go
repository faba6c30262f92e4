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
package arrays

import (
	"slices"

	"github.com/gravitational/trace"
)

// Source owns the three base arrays. See the package documentation for the
// order in which the seeded stream is consumed.
type Source struct {
	maxN   int
	lo, hi int64
	seed   uint64
	swaps  int

	base [numShapes][]int64
}

// Option configures a Source.
type Option func(*options)

type options struct {
	swaps    int
	swapsSet bool
}

// WithSwapCount overrides the number of index-pair swaps applied to the
// almost-sorted array. Zero leaves it exactly sorted. The default is
// max(1, maxN/100).
func WithSwapCount(k int) Option {
	return func(o *options) {
		o.swaps = k
		o.swapsSet = true
	}
}

// DefaultSwapCount returns the swap count used for an array of maxN values.
func DefaultSwapCount(maxN int) int {
	return max(1, maxN/100)
}

// New builds a Source with maxN values drawn uniformly from [lo, hi].
func New(maxN int, lo, hi int64, seed uint64, opts ...Option) (*Source, error) {
	if maxN < 1 {
		return nil, trace.BadParameter("max_n must be positive, got %d", maxN)
	}
	if lo > hi {
		return nil, trace.BadParameter("value lower bound %d exceeds upper bound %d", lo, hi)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	swaps := DefaultSwapCount(maxN)
	if o.swapsSet {
		if o.swaps < 0 {
			return nil, trace.BadParameter("swap count must not be negative, got %d", o.swaps)
		}
		swaps = o.swaps
	}

	s := &Source{
		maxN:  maxN,
		lo:    lo,
		hi:    hi,
		seed:  seed,
		swaps: swaps,
	}
	s.build(NewStream(seed))
	return s, nil
}

// build consumes stream in the documented order. The stream is dropped
// afterwards: a Source never draws again.
func (s *Source) build(stream *Stream) {
	random := make([]int64, s.maxN)
	for i := range random {
		random[i] = stream.IntRange(s.lo, s.hi)
	}

	sorted := slices.Clone(random)
	slices.Sort(sorted)

	reverse := slices.Clone(sorted)
	slices.Reverse(reverse)

	almost := sorted
	for range s.swaps {
		a := stream.Index(s.maxN)
		b := stream.Index(s.maxN)
		almost[a], almost[b] = almost[b], almost[a]
	}

	s.base[Random] = random
	s.base[Reverse] = reverse
	s.base[AlmostSorted] = almost
}

// MaxN returns the length of the base arrays, the largest legal request.
func (s *Source) MaxN() int {
	return s.maxN
}

// Bounds returns the inclusive value bounds.
func (s *Source) Bounds() (lo, hi int64) {
	return s.lo, s.hi
}

// Seed returns the seed the source was built from.
func (s *Source) Seed() uint64 {
	return s.seed
}

// SwapCount returns the number of swaps applied to the almost-sorted array.
func (s *Source) SwapCount() int {
	return s.swaps
}

// Slice returns a fresh copy of the first n elements of the base array for
// shape. Requests beyond MaxN fail with a trace.LimitExceeded error; the
// length is never clamped.
func (s *Source) Slice(shape Shape, n int) ([]int64, error) {
	if !shape.Valid() {
		return nil, trace.BadParameter("unknown array shape %d", int(shape))
	}
	if n < 0 {
		return nil, trace.BadParameter("slice length must not be negative, got %d", n)
	}
	if n > s.maxN {
		return nil, trace.LimitExceeded("requested %v slice of length %d exceeds max_n %d", shape, n, s.maxN)
	}
	out := make([]int64, n)
	copy(out, s.base[shape][:n])
	return out, nil
}

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
	"math"
	"math/bits"
)

// MT19937-64 parameters.
const (
	mtN         = 312
	mtM         = 156
	mtMatrixA   = 0xB5026F5AA96619E9
	mtUpperMask = 0xFFFFFFFF80000000
	mtLowerMask = 0x7FFFFFFF
	mtInitMul   = 6364136223846793005
)

// DefaultSeed is the seed the reference sweep uses.
const DefaultSeed uint64 = 42

// Stream is a 64-bit Mersenne Twister. It implements math/rand/v2.Source.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	mt  [mtN]uint64
	mti int
}

// NewStream returns a Stream seeded the way std::mt19937_64(seed) is.
func NewStream(seed uint64) *Stream {
	s := &Stream{}
	s.Seed(seed)
	return s
}

// Seed resets the stream state.
func (s *Stream) Seed(seed uint64) {
	s.mt[0] = seed
	for i := 1; i < mtN; i++ {
		prev := s.mt[i-1]
		s.mt[i] = mtInitMul*(prev^(prev>>62)) + uint64(i)
	}
	s.mti = mtN
}

func (s *Stream) twist() {
	mag := func(x uint64) uint64 {
		if x&1 == 0 {
			return 0
		}
		return mtMatrixA
	}
	i := 0
	for ; i < mtN-mtM; i++ {
		x := (s.mt[i] & mtUpperMask) | (s.mt[i+1] & mtLowerMask)
		s.mt[i] = s.mt[i+mtM] ^ (x >> 1) ^ mag(x)
	}
	for ; i < mtN-1; i++ {
		x := (s.mt[i] & mtUpperMask) | (s.mt[i+1] & mtLowerMask)
		s.mt[i] = s.mt[i+(mtM-mtN)] ^ (x >> 1) ^ mag(x)
	}
	x := (s.mt[mtN-1] & mtUpperMask) | (s.mt[0] & mtLowerMask)
	s.mt[mtN-1] = s.mt[mtM-1] ^ (x >> 1) ^ mag(x)
	s.mti = 0
}

// Uint64 returns the next 64 random bits.
func (s *Stream) Uint64() uint64 {
	if s.mti >= mtN {
		s.twist()
	}
	x := s.mt[s.mti]
	s.mti++

	x ^= (x >> 29) & 0x5555555555555555
	x ^= (x << 17) & 0x71D67FFFEDA60000
	x ^= (x << 37) & 0xFFF7EEE000000000
	x ^= x >> 43
	return x
}

// IntRange returns a uniform value in the closed range [lo, hi].
// The caller guarantees lo <= hi.
//
// The draw is Lemire's nearly divisionless method on the full 64-bit
// output: the high word of draw*span, rejecting low words below
// (-span % span).
func (s *Stream) IntRange(lo, hi int64) int64 {
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return lo + int64(s.Uint64())
	}
	span++

	h, l := bits.Mul64(s.Uint64(), span)
	if l < span {
		thresh := -span % span
		for l < thresh {
			h, l = bits.Mul64(s.Uint64(), span)
		}
	}
	return lo + int64(h)
}

// Float64Range returns a uniform value in [lo, hi) built from one 64-bit
// draw scaled into [0, 1).
func (s *Stream) Float64Range(lo, hi float64) float64 {
	u := float64(s.Uint64()) / (1 << 64)
	if u >= 1 {
		u = math.Nextafter(1, 0)
	}
	return (hi-lo)*u + lo
}

// Index returns draw % n, the index draw the almost-sorted swap phase uses.
// The caller guarantees n > 0.
func (s *Stream) Index(n int) int {
	return int(s.Uint64() % uint64(n))
}

// Package arrays provides the deterministic test arrays the sort benchmarks
// run on.
//
// A Source is built once from (maxN, lo, hi, seed). It owns a single
// MT19937-64 Stream and consumes it in a fixed order:
//
//  1. maxN draws, uniform over [lo, hi], form the Random base array.
//  2. The Random array is sorted; its reversal is the Reverse base array.
//  3. max(1, maxN/100) swaps of random index pairs (two draws each, index =
//     draw % maxN) turn another sorted copy into the AlmostSorted array.
//
// The generator and the bounded draw reproduce std::mt19937_64 and the
// libstdc++ uniform_int_distribution for 64-bit engines, so a given seed
// yields the same arrays as the original C++ benchmark.
//
// After construction a Source is read-only. Slice returns a fresh copy on
// every call and may be used from multiple goroutines.
package arrays

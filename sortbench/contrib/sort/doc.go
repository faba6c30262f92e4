// Package sort provides the top-down merge sort and the hybrid
// merge/insertion sort the benchmarks compare.
//
// # Algorithm
//
// Both sorts split a closed index range [l, r] at m = (l+r)/2, sort
// [l, m] and [m+1, r] recursively, and merge the halves through one
// auxiliary buffer allocated once per top-level call. The merge is a
// stable two-pointer merge: on ties the element from the left half goes
// first.
//
// HybridSort stops recursing once a range holds threshold elements or
// fewer and sorts it with insertion sort instead. A threshold of 1 or 2
// behaves like plain merge sort.
//
// # Supported Types
//
// Any type satisfying sortbench.Elements: integers, floats and strings.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortbench/sortbench/contrib/sort"
//
//	func Process(data []int64) error {
//	    return sort.HybridSort(data, 20)
//	}
//
// # Concurrency
//
// The sorts are sequential. Sorting different slices from different
// goroutines is fine as long as each call owns its data and, for the
// *Buffer variants, its auxiliary buffer.
package sort

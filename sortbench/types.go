// Package sortbench is the core of the go-sortbench module: the element
// constraints shared by the sorting and benchmarking packages, and a
// description of the platform a benchmark runs on.
//
// The algorithms themselves live under contrib:
//
//	import (
//	    "github.com/ajroetker/go-sortbench/sortbench/contrib/arrays"
//	    "github.com/ajroetker/go-sortbench/sortbench/contrib/bench"
//	    "github.com/ajroetker/go-sortbench/sortbench/contrib/sort"
//	)
//
//	src, _ := arrays.New(100000, 0, 6000, 42)
//	h, _ := bench.New(src, 5)
//	d, _ := h.MeasureHybrid(50000, arrays.Random, 20)
package sortbench

// Floats is a constraint for floating-point types.
//
// NaN values are not totally ordered; sorting slices that contain NaN
// produces an unspecified (but still permuted) order.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Elements is a constraint for all types the sorts accept: anything with a
// total order expressed through the built-in comparison operators.
type Elements interface {
	Floats | Integers | ~string
}

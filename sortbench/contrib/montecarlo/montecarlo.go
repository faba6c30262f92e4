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
// Package montecarlo estimates the area of the intersection of circles by
// rejection sampling over their common bounding box.
//
// It shares the arrays.Stream generator with the sort benchmarks but no
// state: an Estimator owns its own stream.
package montecarlo

import (
	"math"

	"github.com/gravitational/trace"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/arrays"
)

// DefaultSeed is the seed of the reference area sweep.
const DefaultSeed uint64 = 228

// Circle is a disc with centre (X, Y) and radius R.
type Circle struct {
	X, Y, R float64
}

// Contains reports whether (x, y) lies in the closed disc.
func (c Circle) Contains(x, y float64) bool {
	dx, dy := x-c.X, y-c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// ReferenceCircles returns the three circles of the reference problem,
// whose intersection has exact area 0.25*pi + 1.25*asin(0.8) - 1.
func ReferenceCircles() []Circle {
	r := math.Sqrt(5) / 2
	return []Circle{
		{X: 1, Y: 1, R: 1},
		{X: 1.5, Y: 2, R: r},
		{X: 2, Y: 1.5, R: r},
	}
}

// ReferenceArea is the exact intersection area of ReferenceCircles.
func ReferenceArea() float64 {
	return 0.25*math.Pi + 1.25*math.Asin(0.8) - 1
}

// Box is an axis-aligned rectangle.
type Box struct {
	MinX, MaxX, MinY, MaxY float64
}

// Area returns the box area.
func (b Box) Area() float64 {
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// BoundingBox returns the smallest box covering every circle.
func BoundingBox(circles []Circle) Box {
	b := Box{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	for _, c := range circles {
		b.MinX = min(b.MinX, c.X-c.R)
		b.MaxX = max(b.MaxX, c.X+c.R)
		b.MinY = min(b.MinY, c.Y-c.R)
		b.MaxY = max(b.MaxY, c.Y+c.R)
	}
	return b
}

// Estimator draws sample points from one seeded stream. The stream carries
// over between calls, so a sweep of estimates is reproducible as a whole.
//
// An Estimator is not safe for concurrent use.
type Estimator struct {
	stream *arrays.Stream
}

// NewEstimator returns an Estimator seeded with seed.
func NewEstimator(seed uint64) *Estimator {
	return &Estimator{stream: arrays.NewStream(seed)}
}

// Area estimates the area of the intersection of circles from samples
// uniform points: x then y for every point, counting those inside every
// circle.
func (e *Estimator) Area(circles []Circle, samples int) (float64, error) {
	if len(circles) == 0 {
		return 0, trace.BadParameter("at least one circle is required")
	}
	if samples < 1 {
		return 0, trace.BadParameter("sample count must be at least 1, got %d", samples)
	}
	for i, c := range circles {
		if !(c.R > 0) || math.IsInf(c.R, 0) {
			return 0, trace.BadParameter("circle %d has invalid radius %v", i, c.R)
		}
	}

	box := BoundingBox(circles)
	inside := 0
	for range samples {
		x := e.stream.Float64Range(box.MinX, box.MaxX)
		y := e.stream.Float64Range(box.MinY, box.MaxY)
		if containsAll(circles, x, y) {
			inside++
		}
	}
	return float64(inside) / float64(samples) * box.Area(), nil
}

func containsAll(circles []Circle, x, y float64) bool {
	for _, c := range circles {
		if !c.Contains(x, y) {
			return false
		}
	}
	return true
}

// Point is one estimate of a sweep.
type Point struct {
	Samples int
	Area    float64
}

// Sweep estimates the area for samples = from, from+step, ... <= to, in
// order, on the estimator's stream.
func (e *Estimator) Sweep(circles []Circle, from, to, step int) ([]Point, error) {
	if step < 1 {
		return nil, trace.BadParameter("sweep step must be at least 1, got %d", step)
	}
	if from < 1 || from > to {
		return nil, trace.BadParameter("invalid sample range [%d, %d]", from, to)
	}
	points := make([]Point, 0, (to-from)/step+1)
	for i := range cap(points) {
		n := from + i*step
		area, err := e.Area(circles, n)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		points = append(points, Point{Samples: n, Area: area})
	}
	return points, nil
}

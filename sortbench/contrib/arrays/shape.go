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
	"strings"

	"github.com/gravitational/trace"
)

// Shape is one of the fixed arrangements of a base array.
type Shape int

const (
	// Random is the raw sequence of uniform draws.
	Random Shape = iota

	// Reverse is the descending sort of the Random values.
	Reverse

	// AlmostSorted is the ascending sort of the Random values with a few
	// random index-pair swaps applied.
	AlmostSorted
)

// numShapes is the number of valid shapes.
const numShapes = 3

// Shapes returns every shape in report order.
func Shapes() []Shape {
	return []Shape{Random, Reverse, AlmostSorted}
}

// String returns the name used in logs, flags and report columns.
func (s Shape) String() string {
	switch s {
	case Random:
		return "random"
	case Reverse:
		return "reverse"
	case AlmostSorted:
		return "almost"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the three shapes.
func (s Shape) Valid() bool {
	return s >= Random && s < numShapes
}

// ParseShape parses a shape name. It accepts the String forms plus
// "almost-sorted" and "almost_sorted".
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return Random, nil
	case "reverse", "reversed":
		return Reverse, nil
	case "almost", "almost-sorted", "almost_sorted", "almostsorted":
		return AlmostSorted, nil
	}
	return 0, trace.BadParameter("unknown array shape %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, trace.BadParameter("unknown array shape %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return trace.Wrap(err)
	}
	*s = parsed
	return nil
}

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
	"strconv"
	"time"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/arrays"
)

// ShapeTimings holds the merge time and one hybrid time per plan threshold
// for a single shape.
type ShapeTimings struct {
	Shape  arrays.Shape
	Merge  time.Duration
	Hybrid []time.Duration
}

// Row is every measurement taken for one array size.
type Row struct {
	N     int
	Cells []ShapeTimings
}

// Record returns the CSV fields of the row: n, then for every shape the
// merge time followed by the hybrid times. Times are milliseconds; whole
// values print without a fraction, which is always the case under
// truncated averaging.
func (r Row) Record() []string {
	rec := []string{strconv.Itoa(r.N)}
	for _, cell := range r.Cells {
		rec = append(rec, FormatMillis(cell.Merge))
		for _, d := range cell.Hybrid {
			rec = append(rec, FormatMillis(d))
		}
	}
	return rec
}

// FormatMillis formats d in milliseconds: "12" for whole values, "12.345"
// otherwise.
func FormatMillis(d time.Duration) string {
	if d%time.Millisecond == 0 {
		return strconv.FormatInt(d.Milliseconds(), 10)
	}
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 3, 64)
}

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

import "github.com/ajroetker/go-sortbench/sortbench"

// InsertionSortRange sorts the closed range data[l..r] in-place with a
// shift-based insertion sort. Stable. Ranges with r <= l are no-ops.
func InsertionSortRange[T sortbench.Elements](data []T, l, r int) {
	for i := l + 1; i <= r; i++ {
		key := data[i]
		j := i - 1
		for j >= l && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// InsertionSort sorts all of data with insertion sort.
func InsertionSort[T sortbench.Elements](data []T) {
	InsertionSortRange(data, 0, len(data)-1)
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T sortbench.Elements](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

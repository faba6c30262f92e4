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
	"github.com/gravitational/trace"

	"github.com/ajroetker/go-sortbench/sortbench"
)

// MergeSort sorts data in-place with a top-down merge sort.
// Stable; O(n log n) time and O(n) auxiliary space.
func MergeSort[T sortbench.Elements](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	buf := make([]T, n)
	mergeSortRange(data, buf, 0, n-1)
}

// MergeSortBuffer is MergeSort with a caller-owned auxiliary buffer.
// buf must hold at least len(data) elements.
func MergeSortBuffer[T sortbench.Elements](data, buf []T) error {
	if len(buf) < len(data) {
		return trace.BadParameter("merge buffer holds %d elements, need %d", len(buf), len(data))
	}
	if len(data) <= 1 {
		return nil
	}
	mergeSortRange(data, buf, 0, len(data)-1)
	return nil
}

// HybridSort sorts data in-place with merge sort, switching to insertion
// sort for ranges of threshold elements or fewer.
// threshold must be at least 1; data is left untouched otherwise.
func HybridSort[T sortbench.Elements](data []T, threshold int) error {
	if err := CheckThreshold(threshold); err != nil {
		return trace.Wrap(err)
	}
	n := len(data)
	if n <= 1 {
		return nil
	}
	buf := make([]T, n)
	hybridSortRange(data, buf, 0, n-1, threshold)
	return nil
}

// HybridSortBuffer is HybridSort with a caller-owned auxiliary buffer.
func HybridSortBuffer[T sortbench.Elements](data, buf []T, threshold int) error {
	if err := CheckThreshold(threshold); err != nil {
		return trace.Wrap(err)
	}
	if len(buf) < len(data) {
		return trace.BadParameter("merge buffer holds %d elements, need %d", len(buf), len(data))
	}
	if len(data) <= 1 {
		return nil
	}
	hybridSortRange(data, buf, 0, len(data)-1, threshold)
	return nil
}

// CheckThreshold validates a hybrid sort threshold.
func CheckThreshold(threshold int) error {
	if threshold < 1 {
		return trace.BadParameter("hybrid sort threshold must be at least 1, got %d", threshold)
	}
	return nil
}

// mergeSortRange sorts the closed range [l, r].
func mergeSortRange[T sortbench.Elements](data, buf []T, l, r int) {
	if l >= r {
		return
	}
	m := (l + r) / 2
	mergeSortRange(data, buf, l, m)
	mergeSortRange(data, buf, m+1, r)
	merge(data, buf, l, m, r)
}

// hybridSortRange sorts the closed range [l, r], handing short ranges to
// insertion sort. Leaves sorted by insertion sort are never merged on
// their own; only the parent of two recursive calls merges.
func hybridSortRange[T sortbench.Elements](data, buf []T, l, r, threshold int) {
	if r-l+1 <= threshold {
		InsertionSortRange(data, l, r)
		return
	}
	m := (l + r) / 2
	hybridSortRange(data, buf, l, m, threshold)
	hybridSortRange(data, buf, m+1, r, threshold)
	merge(data, buf, l, m, r)
}

// merge merges the sorted ranges [l, m] and [m+1, r] through buf[l:r+1].
func merge[T sortbench.Elements](data, buf []T, l, m, r int) {
	i, j, k := l, m+1, l
	for i <= m && j <= r {
		if data[i] <= data[j] {
			buf[k] = data[i]
			i++
		} else {
			buf[k] = data[j]
			j++
		}
		k++
	}
	k += copy(buf[k:], data[i:m+1])
	copy(buf[k:], data[j:r+1])
	copy(data[l:r+1], buf[l:r+1])
}

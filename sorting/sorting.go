// SPDX-License-Identifier: MIT

// Package sorting implements in-place comparison sorts & related array rearrangements.
package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"gitlab.com/fisherprime/katas/types"
)

// Selection sort, O(n^2).
func Selection[T constraints.Ordered](arr []T) {
	for i := 0; i < len(arr)-1; i++ {
		minIndex := i
		for j := i + 1; j < len(arr); j++ {
			if arr[j] < arr[minIndex] {
				minIndex = j
			}
		}
		arr[i], arr[minIndex] = arr[minIndex], arr[i]
	}
}

// Bubble sort, O(n^2).
//
// Stops early once a pass makes no swaps.
func Bubble[T constraints.Ordered](arr []T) {
	for i := 0; i < len(arr)-1; i++ {
		swapped := false
		for j := 0; j < len(arr)-i-1; j++ {
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Insertion sort, O(n^2); stable.
func Insertion[T constraints.Ordered](arr []T) {
	for i := 1; i < len(arr); i++ {
		tmp, j := arr[i], i-1
		for ; j > -1 && tmp < arr[j]; j-- {
			arr[j+1] = arr[j]
		}
		arr[j+1] = tmp
	}
}

// Quick sorts arr using Lomuto partitioning about the last element.
func Quick[T constraints.Ordered](arr []T) {
	if len(arr) > 1 {
		quick(arr, 0, len(arr)-1)
	}
}

func quick[T constraints.Ordered](arr []T, start, end int) {
	for start < end {
		pivot := partition(arr, start, end)

		// Recurse into the smaller side to bound the stack depth.
		if pivot-start < end-pivot {
			quick(arr, start, pivot-1)
			start = pivot + 1
			continue
		}
		quick(arr, pivot+1, end)
		end = pivot - 1
	}
}

// Partition rearranges arr[start:end+1] about the pivot arr[end], returning the pivot's final
// index.
//
// Values <= the pivot end up to its left, the rest to its right.
func Partition[T constraints.Ordered](arr []T, start, end int) (pivot int, err error) {
	if start < 0 || end >= len(arr) || start > end {
		err = fmt.Errorf("bounds [%d, %d] of length (%d): %w", start, end, len(arr), types.ErrOutOfRange)
		return
	}

	return partition(arr, start, end), nil
}

func partition[T constraints.Ordered](arr []T, start, end int) int {
	pivot, i := arr[end], start
	for j := start; j < end; j++ {
		if arr[j] <= pivot {
			arr[i], arr[j] = arr[j], arr[i]
			i++
		}
	}
	arr[i], arr[end] = arr[end], arr[i]

	return i
}

// Merge sorts arr using top-down merge sort; stable, O(n log n) with an O(n) buffer.
func Merge[T constraints.Ordered](arr []T) {
	if len(arr) < 2 {
		return
	}

	buffer := make([]T, len(arr))
	mergeSort(arr, buffer)
}

func mergeSort[T constraints.Ordered](arr, buffer []T) {
	if len(arr) < 2 {
		return
	}

	mid := len(arr) / 2
	mergeSort(arr[:mid], buffer[:mid])
	mergeSort(arr[mid:], buffer[mid:])

	copy(buffer, arr)
	left, right := buffer[:mid], buffer[mid:len(arr)]

	i, j, k := 0, 0, 0
	for ; i < len(left) && j < len(right); k++ {
		if left[i] <= right[j] {
			arr[k] = left[i]
			i++
			continue
		}
		arr[k] = right[j]
		j++
	}
	k += copy(arr[k:], left[i:])
	copy(arr[k:], right[j:])
}

// MergeInto merges the ascending b into a, whose first n values are ascending & whose remaining
// length is a buffer for b.
//
// Merging starts from the back so no value of a is overwritten before it's placed.
func MergeInto[T constraints.Ordered](a []T, n int, b []T) (err error) {
	if n < 0 || n > len(a) {
		err = fmt.Errorf("(%d) values in length (%d): %w", n, len(a), types.ErrOutOfRange)
		return
	}
	if n+len(b) > len(a) {
		err = fmt.Errorf("buffer of (%d) for (%d) values: %w", len(a)-n, len(b), types.ErrOutOfRange)
		return
	}

	indexA, indexB := n-1, len(b)-1
	for merged := n + len(b) - 1; indexB > -1; merged-- {
		if indexA > -1 && a[indexA] > b[indexB] {
			a[merged] = a[indexA]
			indexA--
			continue
		}
		a[merged] = b[indexB]
		indexB--
	}

	return
}

// Shuffle permutes arr uniformly at random using the Fisher-Yates algorithm.
//
// Position i swaps with a position drawn from [i, len(arr)).
func Shuffle[T any](arr []T, rng types.Source) (err error) {
	if rng == nil {
		err = fmt.Errorf("random source %w", types.ErrInvalidArgument)
		return
	}

	for i := 0; i < len(arr)-1; i++ {
		j := i + rng.Intn(len(arr)-i)
		arr[i], arr[j] = arr[j], arr[i]
	}

	return
}

// ZigZag rearranges arr in a single pass so that arr[0] <= arr[1] >= arr[2] <= arr[3]...
//
// The relations are strict for distinct values.
func ZigZag[T constraints.Ordered](arr []T) {
	for i := 0; i < len(arr)-1; i++ {
		if (i%2 == 0 && arr[i] > arr[i+1]) || (i%2 == 1 && arr[i] < arr[i+1]) {
			arr[i], arr[i+1] = arr[i+1], arr[i]
		}
	}
}

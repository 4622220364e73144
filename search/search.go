// SPDX-License-Identifier: MIT

// Package search implements binary search variants & related array look-ups.
package search

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/katas/types"
)

// NotFound is the index reported alongside a not found error.
const NotFound = -1

// Rotated finds x in arr, an ascending array rotated about one unknown point.
//
// O(log n) expected; duplicates straddling the rotation point may force both halves to be
// searched.
func Rotated[T constraints.Ordered](arr []T, x T) (int, error) {
	return RotatedWithin(arr, 0, len(arr)-1, x)
}

// RotatedWithin performs Rotated over the inclusive bounds [start, end]; start > end is an empty
// range holding nothing.
func RotatedWithin[T constraints.Ordered](arr []T, start, end int, x T) (index int, err error) {
	index = NotFound

	if len(arr) < 1 {
		err = fmt.Errorf("empty array: %w", types.ErrInvalidArgument)
		return
	}
	if start < 0 || end >= len(arr) {
		err = fmt.Errorf("bounds [%d, %d] of length (%d): %w", start, end, len(arr), types.ErrOutOfRange)
		return
	}
	if start > end {
		err = fmt.Errorf("(%v) in empty range [%d, %d]: %w", x, start, end, types.ErrNotFound)
		return
	}

	if index = rotated(arr, start, end, x); index == NotFound {
		err = fmt.Errorf("(%v) %w", x, types.ErrNotFound)
	}

	return
}

func rotated[T constraints.Ordered](arr []T, start, end int, x T) int {
	if start > end {
		return NotFound
	}

	mid := start + (end-start)/2
	if arr[mid] == x {
		return mid
	}

	switch {
	case arr[start] < arr[mid]:
		// Left half is ordered.
		if arr[start] <= x && x < arr[mid] {
			return rotated(arr, start, mid-1, x)
		}
		return rotated(arr, mid+1, end, x)
	case arr[mid] < arr[end]:
		// Right half is ordered.
		if arr[mid] < x && x <= arr[end] {
			return rotated(arr, mid+1, end, x)
		}
		return rotated(arr, start, mid-1, x)
	case arr[start] == arr[mid] && arr[mid] != arr[end]:
		// Left half is all repeats, the rotation point is to the right.
		return rotated(arr, mid+1, end, x)
	default:
		// Ordering can't be established from the endpoints.
		if index := rotated(arr, start, mid-1, x); index != NotFound {
			return index
		}
		return rotated(arr, mid+1, end, x)
	}
}

// MagicIndex finds some index i such that arr[i] == i in an ascending array that may contain
// duplicates.
//
// After checking mid, the left search ends at min(mid-1, arr[mid]) & the right search starts at
// max(mid+1, arr[mid]).
func MagicIndex[T constraints.Integer](arr []T) (index int, err error) {
	if !slices.IsSorted(arr) {
		err = fmt.Errorf("unsorted array: %w", types.ErrInvalidArgument)
		return
	}

	if index = magicIndex(arr, 0, len(arr)-1); index == NotFound {
		err = fmt.Errorf("magic index %w", types.ErrNotFound)
	}

	return
}

func magicIndex[T constraints.Integer](arr []T, start, end int) int {
	if start < 0 || end >= len(arr) || start > end {
		return NotFound
	}

	mid := start + (end-start)/2
	midValue := clampIndex(arr[mid], len(arr))
	if midValue == mid {
		return mid
	}

	if left := magicIndex(arr, start, min(mid-1, midValue)); left != NotFound {
		return left
	}

	return magicIndex(arr, max(mid+1, midValue), end)
}

// clampIndex converts a value to an int index bound, saturating outside of [-1, length].
func clampIndex[T constraints.Integer](value T, length int) int {
	switch {
	case value < 0:
		return -1
	case uint64(value) > uint64(length):
		return length
	default:
		return int(value)
	}
}

// MagicIndexDistinct finds the index i such that arr[i] == i in an ascending array of distinct
// values.
//
// Distinct values allow discarding half of the array per step.
func MagicIndexDistinct(arr []int) (index int, err error) {
	index = NotFound

	for i := 1; i < len(arr); i++ {
		if arr[i-1] >= arr[i] {
			err = fmt.Errorf("values not strictly ascending at (%d): %w", i, types.ErrInvalidArgument)
			return
		}
	}

	start, end := 0, len(arr)-1
	for start <= end {
		mid := start + (end-start)/2
		switch {
		case arr[mid] == mid:
			return mid, nil
		case arr[mid] > mid:
			end = mid - 1
		default:
			start = mid + 1
		}
	}
	err = fmt.Errorf("magic index %w", types.ErrNotFound)

	return
}

// Median of the values of two ascending arrays of any size.
//
// The two middle values are averaged for an even combined length.
func Median[T types.Number](a, b []T) (median float64, err error) {
	if !slices.IsSorted(a) || !slices.IsSorted(b) {
		err = fmt.Errorf("unsorted input: %w", types.ErrInvalidArgument)
		return
	}

	total := len(a) + len(b)
	if total < 1 {
		err = fmt.Errorf("empty input: %w", types.ErrInvalidArgument)
		return
	}

	// Merge up to the upper middle, remembering the previous value.
	var prev, curr T
	i, j := 0, 0
	for count := 0; count <= total/2; count++ {
		prev = curr
		if j >= len(b) || (i < len(a) && a[i] <= b[j]) {
			curr = a[i]
			i++
			continue
		}
		curr = b[j]
		j++
	}

	if total%2 == 1 {
		return float64(curr), nil
	}

	return (float64(prev) + float64(curr)) / 2, nil
}

// ShortestDistance finds the smallest index distance between occurrences of w1 & w2 in words.
func ShortestDistance(words []string, w1, w2 string) (distance int, err error) {
	if w1 == w2 {
		err = fmt.Errorf("identical words (%s): %w", w1, types.ErrInvalidArgument)
		return
	}

	distance = math.MaxInt
	last1, last2 := NotFound, NotFound
	for index, word := range words {
		switch word {
		case w1:
			last1 = index
			if last2 != NotFound {
				distance = min(distance, last1-last2)
			}
		case w2:
			last2 = index
			if last1 != NotFound {
				distance = min(distance, last2-last1)
			}
		}
	}

	if last1 == NotFound || last2 == NotFound {
		err = fmt.Errorf("words (%s, %s) %w", w1, w2, types.ErrNotFound)
		distance = NotFound
	}

	return
}

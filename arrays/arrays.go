// SPDX-License-Identifier: MIT

// Package arrays implements scanning exercises over slices.
//
// Inputs are never mutated; functions that need a rearranged view work on a copy.
package arrays

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/katas/types"
)

// Duplicates lists each value occurring more than once, in order of its second occurrence.
func Duplicates[T comparable](arr []T) (duplicates []T) {
	seen := make(map[T]int, len(arr))
	for _, value := range arr {
		if seen[value]++; seen[value] == 2 {
			duplicates = append(duplicates, value)
		}
	}

	return
}

// SumPairs lists the pairs of values in arr adding up to sum, smaller value first.
//
// A sorted copy is scanned from both ends, O(n log n).
func SumPairs[T types.Number](arr []T, sum T) (pairs [][2]T) {
	sorted := slices.Clone(arr)
	slices.Sort(sorted)

	for first, last := 0, len(sorted)-1; first < last; {
		switch current := sorted[first] + sorted[last]; {
		case current == sum:
			pairs = append(pairs, [2]T{sorted[first], sorted[last]})
			first++
			last--
		case current < sum:
			first++
		default:
			last--
		}
	}

	return
}

// LargestContiguousSum finds the largest sum of a non-empty contiguous run of arr (Kadane's
// algorithm).
//
// An all negative arr yields its largest element.
func LargestContiguousSum[T types.Number](arr []T) (largest T, err error) {
	if len(arr) < 1 {
		err = fmt.Errorf("empty array: %w", types.ErrInvalidArgument)
		return
	}

	largest = arr[0]
	current := arr[0]
	for _, value := range arr[1:] {
		current = max(value, current+value)
		largest = max(largest, current)
	}

	return
}

// LongestIncreasing finds a longest strictly increasing subsequence of arr in O(n log n).
//
// tails[l] holds the index of the smallest tail of an increasing subsequence of length l+1;
// predecessors links each index to the previous element of its subsequence.
func LongestIncreasing[T constraints.Ordered](arr []T) (subsequence []T) {
	if len(arr) < 1 {
		return []T{}
	}

	tails := make([]int, 0, len(arr))
	predecessors := make([]int, len(arr))

	for index, value := range arr {
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := lo + (hi-lo)/2
			if arr[tails[mid]] < value {
				lo = mid + 1
				continue
			}
			hi = mid
		}

		predecessors[index] = -1
		if lo > 0 {
			predecessors[index] = tails[lo-1]
		}

		if lo == len(tails) {
			tails = append(tails, index)
			continue
		}
		tails[lo] = index
	}

	subsequence = make([]T, len(tails))
	for k, index := len(tails)-1, tails[len(tails)-1]; k > -1; k, index = k-1, predecessors[index] {
		subsequence[k] = arr[index]
	}

	return
}

// MaxAverage finds the start index of the length k window of arr with the largest average.
//
// The earliest window wins ties.
func MaxAverage[T types.Number](arr []T, k int) (start int, err error) {
	if k < 1 || k > len(arr) {
		err = fmt.Errorf("window (%d) of length (%d): %w", k, len(arr), types.ErrOutOfRange)
		return
	}

	var sum T
	for _, value := range arr[:k] {
		sum += value
	}

	maxSum := sum
	for end := k; end < len(arr); end++ {
		sum += arr[end] - arr[end-k]
		if sum > maxSum {
			maxSum, start = sum, end-k+1
		}
	}

	return
}

// Union merges the ascending a & b, emitting values common to both once per matched pair.
func Union[T constraints.Ordered](a, b []T) (union []T, err error) {
	if err = checkSorted(a, b); err != nil {
		return
	}

	union = make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			union = append(union, a[i])
			i++
		case a[i] > b[j]:
			union = append(union, b[j])
			j++
		default:
			union = append(union, b[j])
			i++
			j++
		}
	}
	union = append(union, a[i:]...)
	union = append(union, b[j:]...)

	return
}

// Intersection lists the values common to the ascending a & b.
func Intersection[T constraints.Ordered](a, b []T) (intersection []T, err error) {
	if err = checkSorted(a, b); err != nil {
		return
	}

	intersection = []T{}
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			intersection = append(intersection, a[i])
			i++
			j++
		}
	}

	return
}

func checkSorted[T constraints.Ordered](arrays ...[]T) error {
	for index, arr := range arrays {
		if !slices.IsSorted(arr) {
			return fmt.Errorf("input (%d) is unsorted: %w", index, types.ErrInvalidArgument)
		}
	}

	return nil
}

// LargestZeroSumSubarray finds the length of the longest contiguous run of arr summing to 0.
//
// Equal prefix sums at i & j mark a zero sum run (i, j].
func LargestZeroSumSubarray[T constraints.Integer](arr []T) (length int) {
	firstSeen := map[T]int{0: -1}

	var sum T
	for index, value := range arr {
		sum += value

		first, ok := firstSeen[sum]
		if !ok {
			firstSeen[sum] = index
			continue
		}
		length = max(length, index-first)
	}

	return
}

// MaxRotatedSum finds the maximum of sum(i * arr[i]) over all rotations of arr.
//
// Each rotation's sum is derived from the previous one: R(j) = R(j-1) + sum(arr) - n*arr[n-j].
func MaxRotatedSum[T constraints.Integer](arr []T) (maxSum T, err error) {
	if len(arr) < 1 {
		err = fmt.Errorf("empty array: %w", types.ErrInvalidArgument)
		return
	}

	var total, current T
	for index, value := range arr {
		total += value
		current += T(index) * value
	}

	maxSum = current
	n := T(len(arr))
	for j := 1; j < len(arr); j++ {
		current += total - n*arr[len(arr)-j]
		maxSum = max(maxSum, current)
	}

	return
}

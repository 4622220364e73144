// SPDX-License-Identifier: MIT

// Package dp implements recursion & dynamic programming exercises.
package dp

import (
	"fmt"
	"math/big"

	"gitlab.com/fisherprime/katas/types"
)

// CountNDigitSum bounds.
const (
	MaxDigits   = 100
	MaxDigitSum = 9 * MaxDigits
)

// Power computes x^n by repeated squaring in O(log n) multiplications.
//
// Integer results wrap on overflow.
func Power[T types.Number](x T, n uint) T {
	if n == 0 {
		return 1
	}

	half := Power(x, n/2)
	if n%2 == 0 {
		return half * half
	}

	return x * half * half
}

// CountNDigitSum counts the n digit numbers (no leading zero) whose digits add up to sum.
//
// Counts exceed 64 bits for large n, so the result is exact big integer arithmetic; partial counts
// are memoized per (remaining digits, remaining sum).
func CountNDigitSum(n, sum int) (count *big.Int, err error) {
	if n < 1 || n > MaxDigits {
		err = fmt.Errorf("digits (%d) outside [1, %d]: %w", n, MaxDigits, types.ErrOutOfRange)
		return
	}
	if sum < 0 || sum > MaxDigitSum {
		err = fmt.Errorf("sum (%d) outside [0, %d]: %w", sum, MaxDigitSum, types.ErrOutOfRange)
		return
	}

	memo := make([][]*big.Int, n)
	for index := range memo {
		memo[index] = make([]*big.Int, sum+1)
	}

	count = new(big.Int)
	for digit := 1; digit < 10 && digit <= sum; digit++ {
		count.Add(count, countDigits(memo, n-1, sum-digit))
	}

	return
}

// countDigits counts the digit strings of length n (leading zeros allowed) adding up to sum.
func countDigits(memo [][]*big.Int, n, sum int) *big.Int {
	if n == 0 {
		if sum == 0 {
			return big.NewInt(1)
		}
		return new(big.Int)
	}
	if memo[n][sum] != nil {
		return memo[n][sum]
	}

	count := new(big.Int)
	for digit := 0; digit < 10 && digit <= sum; digit++ {
		count.Add(count, countDigits(memo, n-1, sum-digit))
	}
	memo[n][sum] = count

	return count
}

// LongestCommonSubsequence finds the length of the longest rune sequence appearing, not
// necessarily contiguously, in both x & y.
//
// Only the previous row of the O(len(x) * len(y)) table is kept.
func LongestCommonSubsequence(x, y string) int {
	a, b := []rune(x), []rune(y)
	if len(a) < len(b) {
		a, b = b, a
	}

	prev, curr := make([]int, len(b)+1), make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				continue
			}
			curr[j] = max(prev[j], curr[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

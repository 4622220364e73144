// SPDX-License-Identifier: MIT
package dp

import (
	"errors"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/katas/types"
)

func TestPower(t *testing.T) {
	tests := []struct {
		x    int
		n    uint
		want int
	}{
		{2, 0, 1},
		{2, 1, 2},
		{2, 10, 1024},
		{3, 5, 243},
		{-2, 3, -8},
		{0, 4, 0},
	}

	for _, tt := range tests {
		if got := Power(tt.x, tt.n); got != tt.want {
			t.Errorf("Power(%d, %d) = %v, want %v", tt.x, tt.n, got, tt.want)
		}
	}

	assert.InDelta(t, 0.125, Power(0.5, 3), 1e-12)
}

// bruteDigitSum counts by enumerating every n digit number, feasible for small n only.
func bruteDigitSum(n, sum int) int64 {
	lo, hi := int(Power(10, uint(n-1))), int(Power(10, uint(n)))
	if n == 1 {
		lo = 1
	}

	var count int64
	for number := lo; number < hi; number++ {
		digits := 0
		for _, r := range strconv.Itoa(number) {
			digits += int(r - '0')
		}
		if digits == sum {
			count++
		}
	}

	return count
}

func TestCountNDigitSum(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for sum := 0; sum <= 9*n+1; sum++ {
			got, err := CountNDigitSum(n, sum)
			require.NoError(t, err)
			assert.Equal(t, bruteDigitSum(n, sum), got.Int64(), "CountNDigitSum(%d, %d)", n, sum)
		}
	}
}

// TestCountNDigitSum_large cross-checks the memoized recursion with a digit by digit convolution.
func TestCountNDigitSum_large(t *testing.T) {
	const n, sum = MaxDigits, 450

	// ways[s] counts digit strings of the current length adding up to s; the first digit is 1..9.
	ways := make([]*big.Int, sum+1)
	for s := range ways {
		ways[s] = new(big.Int)
		if s >= 1 && s <= 9 {
			ways[s].SetInt64(1)
		}
	}
	for length := 2; length <= n; length++ {
		next := make([]*big.Int, sum+1)
		for s := range next {
			next[s] = new(big.Int)
			for digit := 0; digit < 10 && digit <= s; digit++ {
				next[s].Add(next[s], ways[s-digit])
			}
		}
		ways = next
	}

	got, err := CountNDigitSum(n, sum)
	require.NoError(t, err)
	assert.Equal(t, 0, ways[sum].Cmp(got), "CountNDigitSum(%d, %d) = %v, want %v", n, sum, got, ways[sum])
	assert.Greater(t, got.BitLen(), 64)

	got, err = CountNDigitSum(n, MaxDigitSum)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Int64())
}

func TestCountNDigitSum_bounds(t *testing.T) {
	for _, args := range [][2]int{{0, 1}, {MaxDigits + 1, 1}, {2, -1}, {2, MaxDigitSum + 1}} {
		_, err := CountNDigitSum(args[0], args[1])
		assert.True(t, errors.Is(err, types.ErrOutOfRange), "CountNDigitSum(%d, %d), got %v", args[0], args[1], err)
	}
}

func TestLongestCommonSubsequence(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"ABCDGH", "AEDFHR", 3},
		{"AGGTAB", "GXTXAYB", 4},
		{"", "abc", 0},
		{"abc", "abc", 3},
		{"abc", "def", 0},
		{"日本語", "本語日", 2},
	}

	for _, tt := range tests {
		got := LongestCommonSubsequence(tt.x, tt.y)
		assert.Equal(t, tt.want, got, "LongestCommonSubsequence(%q, %q)", tt.x, tt.y)
		assert.Equal(t, got, LongestCommonSubsequence(tt.y, tt.x), "symmetry")
	}
}

func BenchmarkCountNDigitSum(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = CountNDigitSum(MaxDigits, MaxDigitSum/2)
	}
}

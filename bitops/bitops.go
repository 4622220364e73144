// SPDX-License-Identifier: MIT

// Package bitops implements bit manipulation exercises over 32-bit words.
package bitops

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"gitlab.com/fisherprime/katas/types"
)

// WordSize is the width of the words operated on.
const WordSize = 32

// UpdateBits replaces bits i through j (inclusive, 0 is least significant) of n with m.
func UpdateBits(n, m uint32, i, j int) (updated uint32, err error) {
	if i < 0 || j >= WordSize || i > j {
		err = fmt.Errorf("bit range [%d, %d] of (%d) bits: %w", i, j, WordSize, types.ErrOutOfRange)
		return
	}

	width := j - i + 1
	if width < WordSize && m>>width != 0 {
		err = fmt.Errorf("(%#b) wider than (%d) bits: %w", m, width, types.ErrInvalidArgument)
		return
	}

	// Ones everywhere but bits i through j; shifts of WordSize or more yield 0.
	left := ^uint32(0) << (j + 1)
	right := uint32(1)<<i - 1
	mask := left | right

	return n&mask | m<<i, nil
}

// IsPowerOf2 reports whether n has exactly one bit set.
func IsPowerOf2[T constraints.Integer](n T) bool {
	return n > 0 && n&(n-1) == 0
}

// BitFlips counts the bits to flip to convert a into b.
//
// Each iteration clears the lowest set bit of the difference.
func BitFlips(a, b uint32) (count int) {
	for diff := a ^ b; diff != 0; diff &= diff - 1 {
		count++
	}

	return
}

// Increment adds 1 to x with bitwise operations only, wrapping on overflow.
//
// Trailing ones are cleared, then the lowest zero is set.
func Increment(x int32) int32 {
	word, one := uint32(x), uint32(1)
	for word&one != 0 {
		word ^= one
		one <<= 1
	}

	return int32(word ^ one)
}

// RotateLeft rotates the bits of x left by d mod 32.
func RotateLeft(x uint32, d uint) uint32 {
	d %= WordSize
	return x<<d | x>>(WordSize-d)
}

// RotateRight rotates the bits of x right by d mod 32.
func RotateRight(x uint32, d uint) uint32 {
	d %= WordSize
	return x>>d | x<<(WordSize-d)
}

// Swap exchanges the values of a & b without a temporary.
//
// Swapping a value with itself is a no-op, as XOR swapping it would clear it.
func Swap[T constraints.Integer](a, b *T) (err error) {
	if a == nil || b == nil {
		err = fmt.Errorf("nil operand %w", types.ErrInvalidArgument)
		return
	}
	if a == b {
		return
	}

	*a ^= *b
	*b ^= *a
	*a ^= *b

	return
}

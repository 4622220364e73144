// SPDX-License-Identifier: MIT

// Package text implements string exercises.
//
// Strings are handled as runes, so multi-byte characters are never split.
package text

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"gitlab.com/fisherprime/katas/types"
)

// IsRotation reports whether s2 is a rotation of s1, i.e. a substring of s1+s1 of equal length.
func IsRotation(s1, s2 string) bool {
	return len(s1) == len(s2) && strings.Contains(s1+s1, s2)
}

// Reverse the runes of s.
func Reverse(s string) string {
	return string(lo.Reverse([]rune(s)))
}

// ReverseWords reverses the order of the space separated words in s, keeping each word's
// spelling.
//
// The whole string is reversed, then each word is reversed back in place; whitespace runs keep
// their lengths.
func ReverseWords(s string) string {
	runes := lo.Reverse([]rune(s))

	for start := 0; start < len(runes); {
		if unicode.IsSpace(runes[start]) {
			start++
			continue
		}

		end := start
		for end < len(runes) && !unicode.IsSpace(runes[end]) {
			end++
		}
		lo.Reverse(runes[start:end])
		start = end
	}

	return string(runes)
}

// IsAnagram reports whether s1 & s2 contain the same runes with the same multiplicities.
func IsAnagram(s1, s2 string) bool {
	if len(s1) != len(s2) {
		return false
	}

	count := runeCounts(s1)
	for _, r := range s2 {
		if count[r]--; count[r] < 0 {
			return false
		}
	}

	return true
}

// RunLengthEncode compresses runs of repeated runes into the rune followed by its decimal count,
// i.e. "aaabcc" becomes "a3b1c2".
//
// s is returned unchanged when the encoding would be longer.
func RunLengthEncode(s string) string {
	runes := []rune(s)
	if len(runes) < 1 {
		return s
	}

	var encoded strings.Builder
	count := 1
	for index := 1; index <= len(runes); index++ {
		if index < len(runes) && runes[index] == runes[index-1] {
			count++
			continue
		}

		encoded.WriteRune(runes[index-1])
		encoded.WriteString(strconv.Itoa(count))
		count = 1
	}

	if encoded.Len() > len(s) {
		return s
	}

	return encoded.String()
}

// CanFormPalindrome reports whether the runes of s can be rearranged into a palindrome: at most
// one rune may occur an odd number of times.
func CanFormPalindrome(s string) bool {
	odd := 0
	for _, count := range runeCounts(s) {
		odd += count & 1
	}

	return odd < 2
}

func runeCounts(s string) map[rune]int {
	count := make(map[rune]int)
	for _, r := range s {
		count[r]++
	}

	return count
}

// InsertAt inserts r before the rune at pos in s; pos may equal the rune count to append.
func InsertAt(s string, r rune, pos int) (inserted string, err error) {
	runes := []rune(s)
	if pos < 0 || pos > len(runes) {
		err = fmt.Errorf("position (%d) of length (%d): %w", pos, len(runes), types.ErrOutOfRange)
		return
	}

	return string(runes[:pos]) + string(r) + string(runes[pos:]), nil
}

// Permutations lists every ordering of the runes of s, assumed distinct; repeated runes yield
// repeated permutations.
//
// The first rune is inserted at every position of each permutation of the remainder, O(n!).
func Permutations(s string) []string {
	runes := []rune(s)
	if len(runes) < 1 {
		return []string{""}
	}

	first := runes[0]
	words := Permutations(string(runes[1:]))

	perms := make([]string, 0, len(words)*len(runes))
	for _, word := range words {
		for pos := 0; pos < len(runes); pos++ {
			// pos is within [0, len(word)], InsertAt can't fail.
			perm, _ := InsertAt(word, first, pos)
			perms = append(perms, perm)
		}
	}

	return perms
}

// NextPermutation finds the lexicographically next greater ordering of the runes of s.
//
// The greatest ordering (non-increasing runes) has no successor.
func NextPermutation(s string) (next string, err error) {
	runes := []rune(s)

	// Start of the longest non-increasing suffix.
	suffix := len(runes) - 1
	for suffix > 0 && runes[suffix] <= runes[suffix-1] {
		suffix--
	}
	if suffix < 1 {
		err = fmt.Errorf("successor of (%s) %w", s, types.ErrNotFound)
		return
	}

	// Rightmost rune greater than the pivot.
	pivot := suffix - 1
	index := len(runes) - 1
	for runes[index] <= runes[pivot] {
		index--
	}
	runes[pivot], runes[index] = runes[index], runes[pivot]
	lo.Reverse(runes[suffix:])

	return string(runes), nil
}

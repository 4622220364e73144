// SPDX-License-Identifier: MIT
package text

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/katas/types"
)

func TestIsRotation(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   bool
	}{
		{"waterbottle", "erbottlewat", true},
		{"waterbottle", "waterbottle", true},
		{"waterbottle", "erbottlewta", false},
		{"abc", "abcabc", false},
		{"abcabc", "abc", false},
		{"", "", true},
		{"héllo", "llohé", true},
	}

	for _, tt := range tests {
		if got := IsRotation(tt.s1, tt.s2); got != tt.want {
			t.Errorf("IsRotation(%q, %q) = %v, want %v", tt.s1, tt.s2, got, tt.want)
		}
	}
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "olleh", Reverse("hello"))
	assert.Equal(t, "", Reverse(""))
	assert.Equal(t, "界世 ,olleh", Reverse("hello, 世界"))
	assert.Equal(t, "hello", Reverse(Reverse("hello")))
}

func TestReverseWords(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"the sky is blue", "blue is sky the"},
		{"the sky  is blue", "blue is  sky the"},
		{" lead trail ", " trail lead "},
		{"single", "single"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ReverseWords(tt.s); got != tt.want {
			t.Errorf("ReverseWords(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestIsAnagram(t *testing.T) {
	assert.True(t, IsAnagram("listen", "silent"))
	assert.True(t, IsAnagram("", ""))
	assert.False(t, IsAnagram("aab", "abb"))
	assert.False(t, IsAnagram("abc", "abcd"))
}

func TestRunLengthEncode(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"aaabcc", "a3b1c2"},
		{"aabcccccaaa", "a2b1c5a3"},
		{"aaaaaaaaaaaa", "a12"},
		{"abc", "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := RunLengthEncode(tt.s); got != tt.want {
			t.Errorf("RunLengthEncode(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestCanFormPalindrome(t *testing.T) {
	for _, s := range []string{"", "a", "aab", "carrace", "ttaatta"} {
		assert.True(t, CanFormPalindrome(s), "CanFormPalindrome(%q)", s)
	}
	for _, s := range []string{"ab", "geeksforgeeks", "abcabcd e"} {
		assert.False(t, CanFormPalindrome(s), "CanFormPalindrome(%q)", s)
	}
}

func TestInsertAt(t *testing.T) {
	got, err := InsertAt("ace", 'b', 1)
	require.NoError(t, err)
	assert.Equal(t, "abce", got)

	got, err = InsertAt("ab", 'c', 2)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	for _, pos := range []int{-1, 3} {
		_, err = InsertAt("ab", 'c', pos)
		assert.True(t, errors.Is(err, types.ErrOutOfRange), "pos = %d, got %v", pos, err)
	}
}

func TestPermutations(t *testing.T) {
	got := Permutations("abc")
	assert.ElementsMatch(t, []string{"abc", "acb", "bac", "bca", "cab", "cba"}, got)

	assert.Len(t, Permutations("abcde"), 120)
	assert.Equal(t, []string{""}, Permutations(""))
	assert.Equal(t, []string{"z"}, Permutations("z"))
}

func TestNextPermutation(t *testing.T) {
	tests := []struct {
		s       string
		want    string
		wantErr error
	}{
		{s: "abc", want: "acb"},
		{s: "acb", want: "bac"},
		{s: "dkhc", want: "hcdk"},
		{s: "aab", want: "aba"},
		{s: "cba", wantErr: types.ErrNotFound},
		{s: "aaa", wantErr: types.ErrNotFound},
		{s: "", wantErr: types.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got, err := NextPermutation(tt.s)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NextPermutation() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NextPermutation() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("NextPermutation() = %v, want %v", got, tt.want)
			}
		})
	}

	// Walking successors from the least ordering visits every permutation once.
	seen := map[string]struct{}{"abcd": {}}
	for current, err := NextPermutation("abcd"); err == nil; current, err = NextPermutation(current) {
		seen[current] = struct{}{}
	}
	assert.Len(t, seen, 24)
}

// SPDX-License-Identifier: MIT
package main

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/katas/dp"
	"gitlab.com/fisherprime/katas/text"
)

var permutations bool

var textCmd = &cobra.Command{
	Use:     "text <s> [other]",
	Short:   "Report the string exercises for a string, and a pair when other is given",
	Example: `katas text "waterbottle" "erbottlewat"`,
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := args[0]

		next, nextErr := text.NextPermutation(s)
		rows := pterm.TableData{
			{"Exercise", "Result"},
			{"reverse", text.Reverse(s)},
			{"reverse words", text.ReverseWords(s)},
			{"run length encoding", text.RunLengthEncode(s)},
			{"can form a palindrome", strconv.FormatBool(text.CanFormPalindrome(s))},
			{"next permutation", render(next, nextErr)},
		}
		if permutations {
			rows = append(rows, []string{"permutations", joinValues(text.Permutations(s))})
		}

		if len(args) > 1 {
			other := args[1]
			rows = append(rows,
				[]string{"rotation of " + other, strconv.FormatBool(text.IsRotation(s, other))},
				[]string{"anagram of " + other, strconv.FormatBool(text.IsAnagram(s, other))},
				[]string{"longest common subsequence with " + other, strconv.Itoa(dp.LongestCommonSubsequence(s, other))},
			)
		}

		return printTable(cmd, rows)
	},
}

func init() {
	textCmd.Flags().BoolVar(&permutations, "permutations", false, "list every permutation")
}

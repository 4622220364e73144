// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/katas/arrays"
)

var (
	window  int
	pairSum int
)

var arraysCmd = &cobra.Command{
	Use:     "arrays <value...>",
	Short:   "Report the array exercises for integers",
	Example: `katas arrays --k 2 --sum 7 -- 15 -2 2 -8 1 7 10 23`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseInts(args)
		if err != nil {
			return err
		}

		largest, largestErr := arrays.LargestContiguousSum(values)
		start, startErr := arrays.MaxAverage(values, window)
		rotated, rotatedErr := arrays.MaxRotatedSum(values)
		pairs := lo.Map(arrays.SumPairs(values, pairSum), func(pair [2]int, _ int) string {
			return fmt.Sprintf("(%d, %d)", pair[0], pair[1])
		})

		return printTable(cmd, pterm.TableData{
			{"Exercise", "Result"},
			{"duplicates", joinValues(arrays.Duplicates(values))},
			{fmt.Sprintf("pairs summing to %d", pairSum), joinValues(pairs)},
			{"largest contiguous sum", render(largest, largestErr)},
			{"longest increasing subsequence", joinValues(arrays.LongestIncreasing(values))},
			{fmt.Sprintf("max average window of %d starts at", window), render(start, startErr)},
			{"largest zero sum subarray", fmt.Sprint(arrays.LargestZeroSumSubarray(values))},
			{"max rotated sum of i*arr[i]", render(rotated, rotatedErr)},
		})
	},
}

func init() {
	arraysCmd.Flags().IntVar(&window, "k", 1, "max average window size")
	arraysCmd.Flags().IntVar(&pairSum, "sum", 0, "target sum of pairs")
}

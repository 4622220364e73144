// SPDX-License-Identifier: MIT
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/katas/search"
)

var (
	distinct bool
	first    []int
	second   []int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search exercises over ascending integer arrays",
}

var searchRotatedCmd = &cobra.Command{
	Use:     "rotated <x> <value...>",
	Short:   "Find x in a rotated ascending array",
	Example: `katas search rotated 5 15 16 19 20 25 1 3 4 5 7 10 14`,
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseInts(args)
		if err != nil {
			return err
		}

		index, err := search.Rotated(values[1:], values[0])
		if err != nil {
			return err
		}

		return printValues(cmd, index)
	},
}

var searchMagicCmd = &cobra.Command{
	Use:     "magic <value...>",
	Short:   "Find an index i holding the value i",
	Example: `katas search magic -- -10 -5 2 2 2 3 4 7 9 12 13`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		values, err := parseInts(args)
		if err != nil {
			return
		}

		var index int
		if distinct {
			index, err = search.MagicIndexDistinct(values)
		} else {
			index, err = search.MagicIndex(values)
		}
		if err != nil {
			return
		}

		return printValues(cmd, index)
	},
}

var searchMedianCmd = &cobra.Command{
	Use:     "median",
	Short:   "Find the median of two ascending arrays",
	Example: `katas search median --a 1,3 --b 2,4,5`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		median, err := search.Median(first, second)
		if err != nil {
			return err
		}

		return printValues(cmd, strconv.FormatFloat(median, 'g', -1, 64))
	},
}

var searchDistanceCmd = &cobra.Command{
	Use:     "distance <w1> <w2> <word...>",
	Short:   "Find the shortest distance between two words",
	Example: `katas search distance a d a b c d a`,
	Args:    cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		distance, err := search.ShortestDistance(args[2:], args[0], args[1])
		if err != nil {
			return err
		}

		return printValues(cmd, distance)
	},
}

func init() {
	searchMagicCmd.Flags().BoolVar(&distinct, "distinct", false, "the values are distinct")
	searchMedianCmd.Flags().IntSliceVar(&first, "a", nil, "first ascending array")
	searchMedianCmd.Flags().IntSliceVar(&second, "b", nil, "second ascending array")

	searchCmd.AddCommand(searchRotatedCmd, searchMagicCmd, searchMedianCmd, searchDistanceCmd)
}

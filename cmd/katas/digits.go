// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/katas/dp"
)

var digitsCmd = &cobra.Command{
	Use:     "digits <n> <sum>",
	Short:   "Count the n digit numbers whose digits add up to sum",
	Example: `katas digits 3 6`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseInts(args)
		if err != nil {
			return err
		}

		count, err := dp.CountNDigitSum(values[0], values[1])
		if err != nil {
			return err
		}

		return printValues(cmd, count)
	},
}

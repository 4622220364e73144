// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/katas/bitops"
)

var rotation uint

var bitsCmd = &cobra.Command{
	Use:     "bits <a> [b]",
	Short:   "Report the bit exercises for a 32-bit word, and a pair when b is given",
	Example: `katas bits --rotate 4 0b1011 0x10`,
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := parseWords(args)
		if err != nil {
			return err
		}
		a := words[0]

		rows := pterm.TableData{
			{"Exercise", "Result"},
			{"power of 2", strconv.FormatBool(bitops.IsPowerOf2(a))},
			{"increment", fmt.Sprint(bitops.Increment(int32(a)))},
			{fmt.Sprintf("rotate left %d", rotation), binary(bitops.RotateLeft(a, rotation))},
			{fmt.Sprintf("rotate right %d", rotation), binary(bitops.RotateRight(a, rotation))},
		}

		if len(words) > 1 {
			b := words[1]
			rows = append(rows, []string{"bit flips to b", strconv.Itoa(bitops.BitFlips(a, b))})

			if err = bitops.Swap(&a, &b); err != nil {
				return err
			}
			rows = append(rows, []string{"swapped", fmt.Sprint(a, " ", b)})
		}

		return printTable(cmd, rows)
	},
}

var bitsUpdateCmd = &cobra.Command{
	Use:     "update <n> <m> <i> <j>",
	Short:   "Insert m into bits i through j of n",
	Example: `katas bits update 0b10000000000 0b10011 2 6`,
	Args:    cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := parseWords(args[:2])
		if err != nil {
			return err
		}
		bounds, err := parseInts(args[2:])
		if err != nil {
			return err
		}

		updated, err := bitops.UpdateBits(words[0], words[1], bounds[0], bounds[1])
		if err != nil {
			return err
		}

		return printValues(cmd, binary(updated))
	},
}

func init() {
	bitsCmd.Flags().UintVar(&rotation, "rotate", 1, "rotation distance")

	bitsCmd.AddCommand(bitsUpdateCmd)
}

// parseWords converts arguments to 32-bit words; 0b, 0o & 0x prefixes are honored.
func parseWords(args []string) (words []uint32, err error) {
	words = make([]uint32, len(args))
	for index, arg := range args {
		var word uint64
		if word, err = strconv.ParseUint(arg, 0, bitops.WordSize); err != nil {
			return
		}
		words[index] = uint32(word)
	}

	return
}

func binary(word uint32) string { return fmt.Sprintf("0b%032b", word) }

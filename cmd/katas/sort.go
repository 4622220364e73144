// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/katas/sorting"
)

var (
	algorithm string
	seed      int64
)

// ErrUnknownAlgorithm is returned for an unknown --algorithm.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

var sorters = map[string]func([]int){
	"selection": sorting.Selection[int],
	"bubble":    sorting.Bubble[int],
	"insertion": sorting.Insertion[int],
	"quick":     sorting.Quick[int],
	"merge":     sorting.Merge[int],
	"zigzag":    sorting.ZigZag[int],
	"shuffle": func(arr []int) {
		// A non-nil source never fails.
		_ = sorting.Shuffle(arr, rand.New(rand.NewSource(seed)))
	},
}

var sortCmd = &cobra.Command{
	Use:     "sort <value...>",
	Short:   "Sort, zigzag or shuffle integers",
	Example: `katas sort --algorithm merge 5 2 4 6 1 3`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sorter, ok := sorters[algorithm]
		if !ok {
			names := lo.Keys(sorters)
			slices.Sort(names)

			return fmt.Errorf("%w: %s, expected one of %s", ErrUnknownAlgorithm, algorithm, strings.Join(names, ", "))
		}

		values, err := parseInts(args)
		if err != nil {
			return err
		}
		sorter(values)

		return printValues(cmd, values...)
	},
}

func init() {
	sortCmd.Flags().StringVar(&algorithm, "algorithm", "quick", "selection|bubble|insertion|quick|merge|zigzag|shuffle")
	sortCmd.Flags().Int64Var(&seed, "seed", 1, "shuffle seed")
}

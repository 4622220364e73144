// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/katas/linkedlist"
)

var kth int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Singly linked list exercises",
}

var listReverseCmd = &cobra.Command{
	Use:     "reverse <value...>",
	Short:   "Reverse a list",
	Example: `katas list reverse a b c`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := linkedlist.New[string]()

		head, err := list.Reverse(list.FromValues(args...))
		if err != nil {
			return err
		}

		return printList(cmd, list, head)
	},
}

var listDedupeCmd = &cobra.Command{
	Use:     "dedupe <value...>",
	Short:   "Remove repeated values, keeping first occurrences",
	Example: `katas list dedupe a b a c b`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := linkedlist.New[string]()

		head := list.FromValues(args...)
		if err := list.RemoveDuplicates(head); err != nil {
			return err
		}

		return printList(cmd, list, head)
	},
}

var listKthCmd = &cobra.Command{
	Use:     "kth <value...>",
	Short:   "Find the kth to last value, the last being k=1",
	Example: `katas list kth --k 2 a b c`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := linkedlist.New[string]()

		id, err := list.KthToLast(list.FromValues(args...), kth)
		if err != nil {
			return err
		}
		value, err := list.Value(id)
		if err != nil {
			return err
		}

		return printValues(cmd, value)
	},
}

func init() {
	listKthCmd.Flags().IntVar(&kth, "k", 1, "position from the end")

	listCmd.AddCommand(listReverseCmd, listDedupeCmd, listKthCmd)
}

func printList[T comparable](cmd *cobra.Command, list *linkedlist.List[T], head linkedlist.NodeID) error {
	values, err := list.Values(head)
	if err != nil {
		return err
	}

	return printValues(cmd, values...)
}

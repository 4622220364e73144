// SPDX-License-Identifier: MIT
package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/katas"
	"gitlab.com/fisherprime/katas/lexer"
	"gitlab.com/fisherprime/katas/linkedlist"
)

var bstLCA bool

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Binary tree exercises",
	Long:  `Binary tree exercises over integer trees in the parenthesized notation, e.g. "(1 (2 (4) (5)) (3))"`,
}

var treeOrderCmd = &cobra.Command{
	Use:     "order <tree>",
	Short:   "List the level, spiral & in-order traversals and the leaves",
	Example: `katas tree order "(1 (2 (4) (5)) (3))"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := parseTree(cmd, args[0])
		if err != nil {
			return err
		}

		level, err := tree.LevelOrder(cmd.Context())
		if err != nil {
			return err
		}
		spiral, err := tree.SpiralOrder(cmd.Context())
		if err != nil {
			return err
		}
		leaves, err := tree.Leaves(cmd.Context())
		if err != nil {
			return err
		}

		return printTable(cmd, pterm.TableData{
			{"Traversal", "Values"},
			{"level", joinValues(level)},
			{"spiral", joinValues(spiral)},
			{"in-order", joinValues(tree.InOrder())},
			{"leaves", joinValues(leaves)},
		})
	},
}

var treeCheckCmd = &cobra.Command{
	Use:     "check <tree> [subtree...]",
	Short:   "Report the height, balance & search tree checks, and subtree containment",
	Example: `katas tree check "(1 (2 (4) (5)) (3))" "(2 (4) (5))" "(3 (6))"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := parseTree(cmd, args[0])
		if err != nil {
			return err
		}

		rows := pterm.TableData{
			{"Check", "Result"},
			{"height", strconv.Itoa(tree.Height())},
			{"balanced", strconv.FormatBool(tree.IsBalanced())},
			{"binary search tree", strconv.FormatBool(tree.IsBST())},
		}

		candidates := make([]*katas.Tree[int], 0, len(args)-1)
		for _, arg := range args[1:] {
			candidate, err := parseTree(cmd, arg)
			if err != nil {
				return err
			}
			candidates = append(candidates, candidate)
		}

		contained, err := tree.ContainsAny(cmd.Context(), workers, candidates...)
		if err != nil {
			return err
		}
		for index := range contained {
			rows = append(rows, []string{"contains " + args[index+1], strconv.FormatBool(contained[index])})
		}

		return printTable(cmd, rows)
	},
}

var treeLCACmd = &cobra.Command{
	Use:     "lca <tree> <a> <b>",
	Short:   "Find the lowest common ancestor of two values",
	Example: `katas tree lca --bst "(5 (3 (1) (4)) (8))" 1 4`,
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := parseTree(cmd, args[0])
		if err != nil {
			return err
		}
		values, err := parseInts(args[1:])
		if err != nil {
			return err
		}

		var ancestor katas.NodeID
		if bstLCA {
			ancestor, err = tree.BSTLCA(values[0], values[1])
		} else {
			ancestor, err = lca(tree, values[0], values[1])
		}
		if err != nil {
			return err
		}

		value, err := tree.Value(ancestor)
		if err != nil {
			return err
		}

		return printValues(cmd, value)
	},
}

var treeLevelCmd = &cobra.Command{
	Use:     "level <tree> <level>",
	Short:   "List the values at a depth into a linked list, the root being level 0",
	Example: `katas tree level "(1 (2 (4) (5)) (3))" 2`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := parseTree(cmd, args[0])
		if err != nil {
			return err
		}
		level, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}

		list := linkedlist.New[int]()
		sentinel := list.Push(0)
		if err = katas.LevelList(tree, list, sentinel, level); err != nil {
			return err
		}

		values, err := list.Values(sentinel)
		if err != nil {
			return err
		}

		return printValues(cmd, values[1:]...)
	},
}

func init() {
	treeLCACmd.Flags().BoolVar(&bstLCA, "bst", false, "treat the tree as a binary search tree")

	treeCmd.AddCommand(treeOrderCmd, treeCheckCmd, treeLCACmd, treeLevelCmd)
}

func parseTree(cmd *cobra.Command, src string) (*katas.Tree[int], error) {
	return katas.Deserialize[int](cmd.Context(),
		lexer.WithSource(strings.NewReader(src)), lexer.WithLogger(logger), lexer.WithDebug(debug))
}

// lca locates both values before finding their ancestor.
func lca(tree *katas.Tree[int], a, b int) (ancestor katas.NodeID, err error) {
	idA, err := tree.Locate(a)
	if err != nil {
		return
	}
	idB, err := tree.Locate(b)
	if err != nil {
		return
	}

	return tree.LCA(idA, idB)
}

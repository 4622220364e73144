// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/katas/graph"
)

var (
	vertices   int
	edges      []string
	undirected bool
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Graph exercises over vertices 0..n-1",
}

var graphConnectedCmd = &cobra.Command{
	Use:     "connected <from:to...>",
	Short:   "Report whether a path links each pair of vertices",
	Example: `katas graph connected --vertices 4 --edges 0:1,1:2 0:2 2:0 0:3`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := buildGraph()
		if err != nil {
			return err
		}

		pairs := make([]graph.Pair, len(args))
		for index := range args {
			if pairs[index], err = parsePair(args[index]); err != nil {
				return err
			}
		}

		connected, err := g.ConnectedAll(cmd.Context(), workers, pairs...)
		if err != nil {
			return err
		}

		rows := pterm.TableData{{"Pair", "Connected"}}
		for index := range pairs {
			rows = append(rows, []string{args[index], strconv.FormatBool(connected[index])})
		}

		return printTable(cmd, rows)
	},
}

var graphTraverseCmd = &cobra.Command{
	Use:     "traverse <start>",
	Short:   "List the breadth & depth first visit orders from a vertex",
	Example: `katas graph traverse --vertices 4 --edges 0:1,0:2,1:3 0`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := buildGraph()
		if err != nil {
			return err
		}
		start, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		bfs, err := g.BFS(cmd.Context(), graph.NodeID(start))
		if err != nil {
			return err
		}
		dfs, err := g.DFS(cmd.Context(), graph.NodeID(start))
		if err != nil {
			return err
		}

		return printTable(cmd, pterm.TableData{
			{"Traversal", "Vertices"},
			{"breadth first", joinValues(bfs)},
			{"depth first", joinValues(dfs)},
		})
	},
}

func init() {
	graphCmd.PersistentFlags().IntVar(&vertices, "vertices", 0, "number of vertices")
	graphCmd.PersistentFlags().StringSliceVar(&edges, "edges", nil, "edges as from:to")
	graphCmd.PersistentFlags().BoolVar(&undirected, "undirected", false, "link edges both ways")

	graphCmd.AddCommand(graphConnectedCmd, graphTraverseCmd)
}

func buildGraph() (g *graph.Graph[int], err error) {
	var opts []graph.Option[int]
	if undirected {
		opts = append(opts, graph.WithUndirected[int]())
	}

	g = graph.New(opts...)
	for value := 0; value < vertices; value++ {
		g.AddVertex(value)
	}

	for _, edge := range edges {
		var pair graph.Pair
		if pair, err = parsePair(edge); err != nil {
			return
		}
		if err = g.AddEdge(pair.From, pair.To); err != nil {
			return
		}
	}

	return
}

func parsePair(arg string) (pair graph.Pair, err error) {
	from, to, ok := strings.Cut(arg, ":")
	if !ok {
		err = fmt.Errorf("pair %q: expected from:to", arg)
		return
	}

	ids, err := parseInts([]string{from, to})
	if err != nil {
		return
	}
	ends := lo.Map(ids, func(id int, _ int) graph.NodeID { return graph.NodeID(id) })

	return graph.Pair{From: ends[0], To: ends[1]}, nil
}

// SPDX-License-Identifier: MIT
package graph

import (
	"context"
	"fmt"

	"gitlab.com/fisherprime/katas/types"
)

// IsConnected determines whether to is reachable from from using breadth-first search.
func (g *Graph[T]) IsConnected(ctx context.Context, from, to NodeID) (connected bool, err error) {
	if err = g.check(from); err != nil {
		return
	}
	if err = g.check(to); err != nil {
		return
	}
	if from == to {
		return true, nil
	}

	err = g.bfs(ctx, from, func(id NodeID) bool {
		connected = id == to
		return !connected
	})

	return
}

// BFS lists the vertices reachable from start in breadth-first order.
func (g *Graph[T]) BFS(ctx context.Context, start NodeID) (order []NodeID, err error) {
	if err = g.check(start); err != nil {
		return
	}

	order = make([]NodeID, 0, len(g.vertices))
	err = g.bfs(ctx, start, func(id NodeID) bool {
		order = append(order, id)
		return true
	})

	return
}

// bfs visits vertices reachable from start until visit returns false.
func (g *Graph[T]) bfs(ctx context.Context, start NodeID, visit func(NodeID) bool) error {
	visited := make(map[NodeID]struct{}, len(g.vertices))
	visited[start] = struct{}{}

	queue := types.Queue[NodeID]{start}
	for !queue.Empty() {
		if err := canceled(ctx); err != nil {
			return err
		}

		front, _ := queue.Pop()
		if !visit(front) {
			return nil
		}

		for _, neighbor := range g.vertices[front].adj {
			if _, ok := visited[neighbor]; ok {
				continue
			}
			visited[neighbor] = struct{}{}
			queue.Push(neighbor)
		}
	}

	return nil
}

// DFS lists the vertices reachable from start in depth-first pre-order.
//
// Neighbors are explored in insertion order using an explicit stack.
func (g *Graph[T]) DFS(ctx context.Context, start NodeID) (order []NodeID, err error) {
	if err = g.check(start); err != nil {
		return
	}

	order = make([]NodeID, 0, len(g.vertices))
	visited := make(map[NodeID]struct{}, len(g.vertices))

	stack := types.Stack[NodeID]{start}
	for !stack.Empty() {
		if err = canceled(ctx); err != nil {
			return
		}

		top, _ := stack.Pop()
		if _, ok := visited[top]; ok {
			continue
		}
		visited[top] = struct{}{}
		order = append(order, top)

		adj := g.vertices[top].adj
		for index := len(adj) - 1; index > -1; index-- {
			if _, ok := visited[adj[index]]; !ok {
				stack.Push(adj[index])
			}
		}
	}

	return
}

// ConnectedAll answers IsConnected for each pair concurrently on a pool of workers.
//
// results[i] corresponds to pairs[i]; failed queries are reported in the aggregated error.
func (g *Graph[T]) ConnectedAll(ctx context.Context, workers int, pairs ...Pair) (results []bool, err error) {
	results = make([]bool, len(pairs))

	tasks := make([]types.Task, len(pairs))
	for index := range pairs {
		index, pair := index, pairs[index]
		tasks[index] = func(ctx context.Context) (err error) {
			if results[index], err = g.IsConnected(ctx, pair.From, pair.To); err != nil {
				err = fmt.Errorf("pair (%d -> %d): %w", pair.From, pair.To, err)
			}
			return
		}
	}

	if err = types.RunTasks(ctx, workers, tasks...); err != nil {
		fLogger.Debugf("connectivity batch of %d pairs: %v", len(pairs), err)
	}

	return
}

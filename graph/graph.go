// SPDX-License-Identifier: MIT

// Package graph provides reachability & traversal exercises over an arena of vertices.
//
// Vertices are addressed by NodeID & hold their adjacency as NodeIDs. Traversals keep their visited
// set local to the call; the graph carries no traversal state, so it may be traversed repeatedly &
// concurrently once built.
package graph

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/katas/types"
)

type (
	// NodeID indexes a vertex in a Graph.
	NodeID int

	// Graph is an arena of vertices with adjacency lists.
	//
	// Synchronization is unnecessary, the type is designed for single write multiple read.
	Graph[T comparable] struct {
		vertices   []vertex[T]
		undirected bool
	}

	vertex[T comparable] struct {
		value T
		adj   []NodeID
	}

	// Option defines the Graph functional option type.
	Option[T comparable] func(*Graph[T])

	// Pair of vertices queried by ConnectedAll.
	Pair struct {
		From, To NodeID
	}
)

// Graph errors.
var (
	ErrInvalidVertex = fmt.Errorf("invalid vertex: %w", types.ErrOutOfRange)
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// New instantiates a directed Graph.
func New[T comparable](options ...Option[T]) *Graph[T] {
	g := &Graph[T]{}

	for _, opt := range options {
		opt(g)
	}

	return g
}

// WithUndirected makes AddEdge link both endpoints.
func WithUndirected[T comparable]() Option[T] {
	return func(g *Graph[T]) { g.undirected = true }
}

// Undirected reports whether edges link both endpoints.
func (g *Graph[T]) Undirected() bool { return g.undirected }

// Len is the number of vertices.
func (g *Graph[T]) Len() int { return len(g.vertices) }

// AddVertex allocates a vertex holding value.
func (g *Graph[T]) AddVertex(value T) NodeID {
	g.vertices = append(g.vertices, vertex[T]{value: value})
	return NodeID(len(g.vertices) - 1)
}

// AddEdge links from to to (& to to from for an undirected Graph).
func (g *Graph[T]) AddEdge(from, to NodeID) (err error) {
	if err = g.check(from); err != nil {
		return
	}
	if err = g.check(to); err != nil {
		return
	}

	g.vertices[from].adj = append(g.vertices[from].adj, to)
	if g.undirected && from != to {
		g.vertices[to].adj = append(g.vertices[to].adj, from)
	}

	return
}

// Value retrieves the data held by a vertex.
func (g *Graph[T]) Value(id NodeID) (value T, err error) {
	if err = g.check(id); err == nil {
		value = g.vertices[id].value
	}

	return
}

// Neighbors lists the vertices adjacent to id in insertion order.
func (g *Graph[T]) Neighbors(id NodeID) (neighbors []NodeID, err error) {
	if err = g.check(id); err != nil {
		return
	}

	neighbors = make([]NodeID, len(g.vertices[id].adj))
	copy(neighbors, g.vertices[id].adj)

	return
}

func (g *Graph[T]) check(id NodeID) error {
	if id < 0 || int(id) >= len(g.vertices) {
		return fmt.Errorf("%w: %d", ErrInvalidVertex, id)
	}

	return nil
}

// canceled reports a context error without blocking.
func canceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

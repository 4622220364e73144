// SPDX-License-Identifier: MIT
package graph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"gitlab.com/fisherprime/katas/graph"
	"gitlab.com/fisherprime/katas/types"
)

// GraphSuite exercises traversal over a small directed graph:
//
//	a -> b -> d
//	a -> c -> d
//	e -> a
//	f (isolated)
type GraphSuite struct {
	suite.Suite

	g                *graph.Graph[string]
	a, b, c, d, e, f graph.NodeID
}

func (s *GraphSuite) SetupTest() {
	s.g = graph.New[string]()
	s.a = s.g.AddVertex("a")
	s.b = s.g.AddVertex("b")
	s.c = s.g.AddVertex("c")
	s.d = s.g.AddVertex("d")
	s.e = s.g.AddVertex("e")
	s.f = s.g.AddVertex("f")

	for _, edge := range [][2]graph.NodeID{{s.a, s.b}, {s.a, s.c}, {s.b, s.d}, {s.c, s.d}, {s.e, s.a}} {
		require.NoError(s.T(), s.g.AddEdge(edge[0], edge[1]))
	}
}

// TestIsConnected checks reachability respects edge direction.
func (s *GraphSuite) TestIsConnected() {
	ctx := context.Background()

	tests := []struct {
		from, to graph.NodeID
		want     bool
	}{
		{s.a, s.d, true},
		{s.e, s.d, true},
		{s.d, s.a, false},
		{s.a, s.f, false},
		{s.f, s.f, true},
	}
	for _, tt := range tests {
		got, err := s.g.IsConnected(ctx, tt.from, tt.to)
		require.NoError(s.T(), err)
		require.Equal(s.T(), tt.want, got, "IsConnected(%d, %d)", tt.from, tt.to)
	}

	// Repeated traversal leaves no residual state behind.
	got, err := s.g.IsConnected(ctx, s.a, s.d)
	require.NoError(s.T(), err)
	require.True(s.T(), got)
}

// TestOrders checks breadth & depth first visit orders.
func (s *GraphSuite) TestOrders() {
	ctx := context.Background()

	bfs, err := s.g.BFS(ctx, s.e)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []graph.NodeID{s.e, s.a, s.b, s.c, s.d}, bfs)

	dfs, err := s.g.DFS(ctx, s.e)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []graph.NodeID{s.e, s.a, s.b, s.d, s.c}, dfs)
}

// TestInvalidVertex checks the out of range taxonomy.
func (s *GraphSuite) TestInvalidVertex() {
	_, err := s.g.IsConnected(context.Background(), s.a, graph.NodeID(99))
	require.True(s.T(), errors.Is(err, types.ErrOutOfRange), "got %v", err)

	require.True(s.T(), errors.Is(s.g.AddEdge(-1, s.a), types.ErrOutOfRange))
}

// TestConnectedAll runs a batch of queries on the worker pool.
func (s *GraphSuite) TestConnectedAll() {
	pairs := []graph.Pair{{From: s.a, To: s.d}, {From: s.d, To: s.a}, {From: s.e, To: s.c}, {From: s.f, To: s.a}}

	got, err := s.g.ConnectedAll(context.Background(), 2, pairs...)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []bool{true, false, true, false}, got)

	_, err = s.g.ConnectedAll(context.Background(), 2, graph.Pair{From: s.a, To: 42})
	require.True(s.T(), errors.Is(err, types.ErrOutOfRange), "got %v", err)
}

// TestCanceled checks traversals honor context cancellation.
func (s *GraphSuite) TestCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.g.BFS(ctx, s.a)
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestUndirected(t *testing.T) {
	require.False(t, graph.New[int]().Undirected())

	g := graph.New[int](graph.WithUndirected[int]())
	require.True(t, g.Undirected())
	one, two := g.AddVertex(1), g.AddVertex(2)
	require.NoError(t, g.AddEdge(one, two))

	got, err := g.IsConnected(context.Background(), two, one)
	require.NoError(t, err)
	require.True(t, got)

	neighbors, err := g.Neighbors(two)
	require.NoError(t, err)
	require.Equal(t, []graph.NodeID{one}, neighbors)
}

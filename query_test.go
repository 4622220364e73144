// SPDX-License-Identifier: MIT
package katas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/katas/types"
)

const bstSample = "(5 (3 (1) (4)) (8 () (9)))"

func TestTree_LCA(t *testing.T) {
	tree := mustParse(t, sample)
	detached := tree.NewNode(9)

	tests := []struct {
		name string
		a, b int
		want int
	}{
		{name: "siblings", a: 4, b: 5, want: 2},
		{name: "cousins", a: 4, b: 3, want: 1},
		{name: "ancestor of the other", a: 2, b: 4, want: 2},
		{name: "reversed", a: 5, b: 2, want: 2},
		{name: "same node", a: 4, b: 4, want: 4},
		{name: "root", a: 1, b: 5, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tree.LCA(mustLocate(t, tree, tt.a), mustLocate(t, tree, tt.b))
			require.NoError(t, err)

			value, err := tree.Value(got)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}

	got, err := tree.LCA(mustLocate(t, tree, 4), detached)
	require.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, Nil, got)

	_, err = tree.LCA(mustLocate(t, tree, 4), 42)
	require.ErrorIs(t, err, ErrInvalidNode)
}

func TestTree_BSTLCA(t *testing.T) {
	tree := mustParse(t, bstSample)

	tests := []struct {
		name    string
		a, b    int
		want    int
		wantErr error
	}{
		{name: "same subtree", a: 1, b: 4, want: 3},
		{name: "split at root", a: 1, b: 9, want: 5},
		{name: "ancestor of the other", a: 8, b: 9, want: 8},
		{name: "same value", a: 4, b: 4, want: 4},
		{name: "absent value", a: 1, b: 7, wantErr: types.ErrNotFound},
		{name: "both absent", a: 6, b: 7, wantErr: types.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tree.BSTLCA(tt.a, tt.b)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Nil, got)
				return
			}
			require.NoError(t, err)

			value, err := tree.Value(got)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}

	_, err := New[int]().BSTLCA(1, 2)
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestTree_LeftMostChild(t *testing.T) {
	tree := mustParse(t, bstSample)

	got, err := tree.LeftMostChild(tree.Root())
	require.NoError(t, err)
	assert.Equal(t, mustLocate(t, tree, 1), got)

	eight := mustLocate(t, tree, 8)
	got, err = tree.LeftMostChild(eight)
	require.NoError(t, err)
	assert.Equal(t, eight, got)

	_, err = tree.LeftMostChild(Nil)
	require.ErrorIs(t, err, ErrInvalidNode)
}

func TestTree_InorderSucc(t *testing.T) {
	tree := mustParse(t, bstSample)

	tests := []struct {
		name    string
		value   int
		want    int
		wantErr error
	}{
		{name: "leftmost of right subtree", value: 3, want: 4},
		{name: "right child without left", value: 5, want: 8},
		{name: "first left ancestor", value: 4, want: 5},
		{name: "leaf below left", value: 1, want: 3},
		{name: "greatest", value: 9, wantErr: types.ErrNotFound},
	}
	for _, tt := range tests {
		for name, succ := range map[string]func(NodeID) (NodeID, error){
			"parent links": tree.InorderSucc,
			"from root":    tree.InorderSuccFrom,
		} {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				got, err := succ(mustLocate(t, tree, tt.value))
				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
					assert.Equal(t, Nil, got)
					return
				}
				require.NoError(t, err)

				value, err := tree.Value(got)
				require.NoError(t, err)
				assert.Equal(t, tt.want, value)
			})
		}
	}
}

func TestMaxPathSum(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    int
		wantErr error
	}{
		{name: "nil tree", wantErr: types.ErrInvalidArgument},
		{name: "bending path", src: "(-10 (9) (20 (15) (7)))", want: 42},
		{name: "all positive", src: "(1 (2) (3))", want: 6},
		{name: "single negative", src: "(-3)", want: -3},
		{name: "negative child skipped", src: "(2 (-1))", want: 2},
		{name: "all negative", src: "(-5 (-2) (-7))", want: -2},
		{name: "path below the root", src: "(-20 (-1 (4) (6)) (3))", want: 9},
		{name: "empty", src: "()", wantErr: ErrEmptyTree},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tree *Tree[int]
			if tt.src != "" {
				tree = mustParse(t, tt.src)
			}

			got, err := MaxPathSum(tree)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTree_CommonValues(t *testing.T) {
	bst := func(values ...int) *Tree[int] {
		tree := New[int]()
		for _, value := range values {
			tree.Insert(value)
		}
		return tree
	}

	tests := []struct {
		name string
		a, b *Tree[int]
		want []int
	}{
		{name: "overlap", a: bst(5, 1, 10, 0, 4, 7, 9), b: bst(10, 7, 20, 4, 9), want: []int{4, 7, 9, 10}},
		{name: "disjoint", a: bst(2, 1, 3), b: bst(5, 4, 6), want: []int{}},
		{name: "identical", a: bst(2, 1, 3), b: bst(1, 2, 3), want: []int{1, 2, 3}},
		{name: "empty", a: bst(2, 1, 3), b: New[int](), want: []int{}},
		{name: "nil", a: bst(2, 1, 3), b: nil, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.CommonValues(tt.b))
		})
	}
}

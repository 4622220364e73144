// SPDX-License-Identifier: MIT
package katas

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/katas/lexer"
)

func TestTree_Serialize(t *testing.T) {
	bst := func(values ...string) *Tree[string] {
		tree := New[string]()
		for _, value := range values {
			tree.Insert(value)
		}
		return tree
	}

	tests := []struct {
		name       string
		tree       *Tree[string]
		cfg        *lexer.Config
		wantOutput string
	}{
		{name: "empty", tree: New[string](), wantOutput: "()"},
		{name: "single", tree: bst("m"), wantOutput: `("m")`},
		{name: "both children", tree: bst("m", "c", "x"), wantOutput: `("m" ("c") ("x"))`},
		{name: "right child only", tree: bst("a", "b"), wantOutput: `("a" () ("b"))`},
		{name: "left child only", tree: bst("b", "a"), wantOutput: `("b" ("a"))`},
		{name: "escaped", tree: bst(`a "quoted" (value)`), wantOutput: `("a \"quoted\" (value)")`},
		{
			name:       "custom markers",
			tree:       bst("m", "c"),
			cfg:        &lexer.Config{OpenMarker: '[', CloseMarker: ']'},
			wantOutput: `["m" ["c"]]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOutput, err := tt.tree.Serialize(context.Background(), tt.cfg)
			require.NoError(t, err)
			if gotOutput != tt.wantOutput {
				t.Errorf("Tree.Serialize() = %v, want %v", gotOutput, tt.wantOutput)
			}
		})
	}
}

func TestTree_Serialize_configUntouched(t *testing.T) {
	tree := New[int]()
	tree.Insert(2)
	tree.Insert(1)

	cfg := &lexer.Config{OpenMarker: '['}
	got, err := tree.Serialize(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "[2 [1))", got)
	assert.Equal(t, &lexer.Config{OpenMarker: '['}, cfg)
}

func TestTree_Serialize_numbers(t *testing.T) {
	ctx := context.Background()

	got, err := mustParse(t, sample).Serialize(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, sample, got)

	floats := New[float64]()
	for _, value := range []float64{1.5, -2.25, 3e10} {
		floats.Insert(value)
	}
	got, err = floats.Serialize(ctx, lexer.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "(1.5 (-2.25) (30000000000))", got)
}

func TestTree_Serialize_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mustParse(t, sample).Serialize(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSerialize_roundTrip(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 100; i++ {
		tree := randomTree(rng, rng.Intn(30), false)

		// Lopsided shapes exercise the empty slot.
		if i%3 == 0 && !tree.Empty() {
			tree.nodes[tree.root].left = Nil
		}

		src, err := tree.Serialize(ctx, nil)
		require.NoError(t, err)

		got, err := Deserialize[int](ctx, lexer.WithSource(strings.NewReader(src)))
		require.NoError(t, err, src)
		require.NoError(t, got.Validate())
		require.True(t, tree.Match(got), src)
	}
}

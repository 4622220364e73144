// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/katas/types"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	pterm.DisableStyling()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "tree order",
			args:     []string{"tree", "order", "(1 (2 (4) (5)) (3))"},
			contains: []string{"1 2 3 4 5", "1 3 2 4 5", "4 2 5 1 3"},
		},
		{
			name:     "tree check",
			args:     []string{"tree", "check", "(1 (2 (4) (5)) (3))", "(2 (4) (5))", "(2 (4))"},
			contains: []string{"true", "false"},
		},
		{
			name:     "tree lca",
			args:     []string{"tree", "lca", "(1 (2 (4) (5)) (3))", "4", "5"},
			contains: []string{"2\n"},
		},
		{
			name:     "tree bst lca",
			args:     []string{"tree", "lca", "--bst", "(5 (3 (1) (4)) (8))", "1", "8"},
			contains: []string{"5\n"},
		},
		{
			name:     "tree lca same node",
			args:     []string{"tree", "lca", "--bst=false", "(1 (2 (4) (5)) (3))", "1", "1"},
			contains: []string{"1\n"},
		},
		{
			name:     "tree level list",
			args:     []string{"tree", "level", "(1 (2 (4) (5)) (3))", "2"},
			contains: []string{"4 5\n"},
		},
		{
			name:     "list reverse",
			args:     []string{"list", "reverse", "a", "b", "c"},
			contains: []string{"c b a\n"},
		},
		{
			name:     "list dedupe",
			args:     []string{"list", "dedupe", "a", "b", "a", "c", "b"},
			contains: []string{"a b c\n"},
		},
		{
			name:     "list kth",
			args:     []string{"list", "kth", "--k", "2", "a", "b", "c"},
			contains: []string{"b\n"},
		},
		{
			name:     "graph connected",
			args:     []string{"--workers", "2", "graph", "connected", "--vertices", "4", "--edges", "0:1,1:2", "0:2", "2:0"},
			contains: []string{"true", "false"},
		},
		{
			name:     "search rotated",
			args:     []string{"search", "rotated", "5", "15", "16", "19", "20", "25", "1", "3", "4", "5", "7", "10", "14"},
			contains: []string{"8\n"},
		},
		{
			name:     "search median",
			args:     []string{"search", "median", "--a", "1,3", "--b", "2,4"},
			contains: []string{"2.5\n"},
		},
		{
			name:     "sort",
			args:     []string{"sort", "--algorithm", "merge", "5", "2", "4", "6", "1", "3"},
			contains: []string{"1 2 3 4 5 6\n"},
		},
		{
			name:     "text",
			args:     []string{"text", "waterbottle", "erbottlewat"},
			contains: []string{"elttobretaw", "true"},
		},
		{
			name:     "bits update",
			args:     []string{"bits", "update", "0b10000000000", "0b10011", "2", "6"},
			contains: []string{"10001001100\n"},
		},
		{
			name:     "digits",
			args:     []string{"digits", "2", "2"},
			contains: []string{"2\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			require.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestCommands_errors(t *testing.T) {
	_, err := run(t, "--log-format", "xml", "sort", "1")
	require.ErrorIs(t, err, ErrLogFormat)

	_, err = run(t, "--log-format", "json", "sort", "--algorithm", "bogo", "1")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = run(t, "--log-format", "text", "tree", "order", "(1 (2)")
	require.Error(t, err)

	_, err = run(t, "search", "magic", "--distinct", "1", "2")
	require.ErrorIs(t, err, types.ErrNotFound)
}

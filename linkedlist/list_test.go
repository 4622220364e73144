// SPDX-License-Identifier: MIT
package linkedlist_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/katas/linkedlist"
	"gitlab.com/fisherprime/katas/types"
)

func TestList_FromValues(t *testing.T) {
	l := linkedlist.New[int]()
	require.Equal(t, linkedlist.Nil, l.FromValues())

	head := l.FromValues(1, 2, 3)
	values, err := l.Values(head)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, values)

	_, err = l.Value(linkedlist.NodeID(42))
	assert.True(t, errors.Is(err, types.ErrOutOfRange), "got %v", err)
}

func TestList_Values_cycle(t *testing.T) {
	l := linkedlist.New[int]()
	head := l.FromValues(1, 2, 3)
	tail, err := l.KthToLast(head, 1)
	require.NoError(t, err)
	require.NoError(t, l.SetNext(tail, head))

	_, err = l.Values(head)
	assert.True(t, errors.Is(err, types.ErrCycle), "got %v", err)

	_, err = l.Reverse(head)
	assert.True(t, errors.Is(err, types.ErrCycle), "got %v", err)
}

func TestList_Reverse(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   []int
	}{
		{name: "empty", values: nil, want: []int{}},
		{name: "single", values: []int{7}, want: []int{7}},
		{name: "many", values: []int{1, 2, 3, 4}, want: []int{4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := linkedlist.New[int]()
			head := l.FromValues(tt.values...)

			reversed, err := l.Reverse(head)
			require.NoError(t, err)
			got, err := l.Values(reversed)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Reversing twice restores the original sequence.
			restored, err := l.Reverse(reversed)
			require.NoError(t, err)
			got, err = l.Values(restored)
			require.NoError(t, err)
			if len(tt.values) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.values, got)
		})
	}
}

func TestList_RemoveDuplicates(t *testing.T) {
	l := linkedlist.New[string]()
	head := l.FromValues("a", "b", "a", "c", "b", "b", "d")

	require.NoError(t, l.RemoveDuplicates(head))
	got, err := l.Values(head)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestList_KthToLast(t *testing.T) {
	l := linkedlist.New[int]()
	head := l.FromValues(10, 20, 30, 40)

	tests := []struct {
		name    string
		k       int
		want    int
		wantErr error
	}{
		{name: "tail", k: 1, want: 40},
		{name: "middle", k: 3, want: 20},
		{name: "head", k: 4, want: 10},
		{name: "zero", k: 0, wantErr: types.ErrInvalidArgument},
		{name: "past head", k: 5, wantErr: types.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := l.KthToLast(head, tt.k)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			got, _ := l.Value(id)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList_DeleteNode(t *testing.T) {
	l := linkedlist.New[int]()
	head := l.FromValues(1, 2, 3)
	middle, _ := l.Next(head)

	require.NoError(t, l.DeleteNode(middle))
	got, _ := l.Values(head)
	assert.Equal(t, []int{1, 3}, got)
	// The unlinked node stays allocated.
	assert.Equal(t, 3, l.Cap())

	tail, _ := l.KthToLast(head, 1)
	assert.True(t, errors.Is(l.DeleteNode(tail), types.ErrInvalidArgument))
}

func TestList_LoopStart(t *testing.T) {
	l := linkedlist.New[int]()
	head := l.FromValues(1, 2, 3, 4, 5)

	_, err := l.LoopStart(head)
	assert.True(t, errors.Is(err, types.ErrNotFound), "got %v", err)

	// 5 -> 3 forms a loop starting at 3.
	third, _ := l.KthToLast(head, 3)
	tail, _ := l.KthToLast(head, 1)
	require.NoError(t, l.SetNext(tail, third))

	start, err := l.LoopStart(head)
	require.NoError(t, err)
	assert.Equal(t, third, start)

	// A list that is one big loop starts at the head.
	l2 := linkedlist.New[int]()
	h2 := l2.FromValues(1, 2)
	t2, _ := l2.Next(h2)
	require.NoError(t, l2.SetNext(t2, h2))
	start, err = l2.LoopStart(h2)
	require.NoError(t, err)
	assert.Equal(t, h2, start)
}

func TestList_Intersection(t *testing.T) {
	l := linkedlist.New[int]()
	shared := l.FromValues(7, 8, 9)
	h1 := l.FromValues(1, 2)
	h2 := l.FromValues(3)

	tail1, _ := l.KthToLast(h1, 1)
	require.NoError(t, l.SetNext(tail1, shared))
	require.NoError(t, l.SetNext(h2, shared))

	got, err := l.Intersection(h1, h2)
	require.NoError(t, err)
	assert.Equal(t, shared, got)

	lone := l.FromValues(7, 8, 9)
	_, err = l.Intersection(h1, lone)
	assert.True(t, errors.Is(err, types.ErrNotFound), "got %v", err)
}

func TestList_Sample(t *testing.T) {
	l := linkedlist.New[int]()
	head := l.FromValues(0, 1, 2, 3)

	_, err := l.Sample(linkedlist.Nil, rand.New(rand.NewSource(1)))
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))

	rng := rand.New(rand.NewSource(42))
	counts := make([]int, 4)
	const draws = 4000
	for index := 0; index < draws; index++ {
		v, err := l.Sample(head, rng)
		require.NoError(t, err)
		counts[v]++
	}
	for value, count := range counts {
		// Uniform draws land near 1000 each.
		assert.InDelta(t, draws/4, count, 200, "value %d", value)
	}
}

func TestList_InsertAfter(t *testing.T) {
	l := linkedlist.New[int]()
	head := l.FromValues(1, 3)

	_, err := l.InsertAfter(head, 2)
	require.NoError(t, err)
	got, _ := l.Values(head)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 3, l.Cap())
}

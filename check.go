// SPDX-License-Identifier: MIT
package katas

import (
	"context"
	"fmt"

	"gitlab.com/fisherprime/katas/types"
)

// unbalanced is the height sentinel for a subtree failing the balance check.
const unbalanced = -1

// Height is the number of nodes on the longest root to leaf path; 0 for an empty [Tree].
func (t *Tree[T]) Height() (height int) {
	t.levelOrder(func(_ NodeID, newPeers bool) bool {
		if newPeers {
			height++
		}
		return true
	})

	return
}

// IsBalanced reports whether the left & right subtree heights of every node differ by at most
// one.
func (t *Tree[T]) IsBalanced() bool { return t.balancedHeight() != unbalanced }

// balancedHeight computes the height bottom-up in a single post-order pass, each node reading its
// left & right heights from separate slots; the unbalanced sentinel is returned on the first
// imbalance.
func (t *Tree[T]) balancedHeight() int {
	heights := make(map[NodeID]int, len(t.nodes))
	height := func(id NodeID) int {
		if id == Nil {
			return 0
		}
		return heights[id]
	}

	for _, id := range t.postOrder(t.root) {
		left, right := height(t.nodes[id].left), height(t.nodes[id].right)
		if left-right > 1 || right-left > 1 {
			if t.cfg.Debug {
				t.cfg.Logger.Debugf("unbalanced at (%v): left %d, right %d", t.nodes[id].value, left, right)
			}
			return unbalanced
		}
		heights[id] = max(left, right) + 1
	}

	return height(t.root)
}

// IsBST reports whether an in-order traversal of the [Tree] is strictly ascending.
func (t *Tree[T]) IsBST() bool { return t.IsBSTWithin(nil, nil) }

// IsBSTWithin reports whether the [Tree] is a binary search tree whose values lie strictly within
// (lo, hi); a nil bound is unbounded.
//
// Each left child inherits its parent's lower bound & takes the parent's value as its upper bound,
// right children the reverse.
func (t *Tree[T]) IsBSTWithin(lo, hi *T) bool {
	type frame struct {
		id     NodeID
		lo, hi *T
	}

	if t.root == Nil {
		return true
	}

	stack := types.Stack[frame]{{id: t.root, lo: lo, hi: hi}}
	for !stack.Empty() {
		top, _ := stack.Pop()
		n := &t.nodes[top.id]

		if (top.lo != nil && n.value <= *top.lo) || (top.hi != nil && n.value >= *top.hi) {
			return false
		}

		if n.left != Nil {
			stack.Push(frame{id: n.left, lo: top.lo, hi: &n.value})
		}
		if n.right != Nil {
			stack.Push(frame{id: n.right, lo: &n.value, hi: top.hi})
		}
	}

	return true
}

// Match reports whether two trees have the same shape & values.
func (t *Tree[T]) Match(other *Tree[T]) bool {
	if other == nil {
		return t.root == Nil
	}

	return t.match(t.root, other, other.root)
}

// match compares the subtree rooted at id node for node, Nil children included, against the
// subtree of other rooted at otherID.
func (t *Tree[T]) match(id NodeID, other *Tree[T], otherID NodeID) bool {
	type pair struct{ a, b NodeID }

	stack := types.Stack[pair]{{a: id, b: otherID}}
	for !stack.Empty() {
		top, _ := stack.Pop()

		switch {
		case top.a == Nil && top.b == Nil:
			continue
		case top.a == Nil || top.b == Nil:
			return false
		}

		a, b := &t.nodes[top.a], &other.nodes[top.b]
		if a.value != b.value {
			return false
		}
		stack.Push(pair{a: a.left, b: b.left}, pair{a: a.right, b: b.right})
	}

	return true
}

// Contains reports whether candidate is a connected, exact match of some subtree of the [Tree].
//
// An empty candidate is contained by any tree; an empty tree contains only the empty candidate.
func (t *Tree[T]) Contains(candidate *Tree[T]) (contained bool) {
	if candidate == nil || candidate.root == Nil {
		return true
	}

	rootValue := candidate.nodes[candidate.root].value
	t.levelOrder(func(id NodeID, _ bool) bool {
		if t.nodes[id].value == rootValue && t.match(id, candidate, candidate.root) {
			contained = true
		}
		return !contained
	})

	return
}

// ContainsAny answers Contains for each candidate concurrently on a pool of workers.
//
// results[i] corresponds to candidates[i]. The [Tree] & candidates must not be modified until
// ContainsAny returns.
func (t *Tree[T]) ContainsAny(ctx context.Context, workers int, candidates ...*Tree[T]) (results []bool, err error) {
	results = make([]bool, len(candidates))

	tasks := make([]types.Task, len(candidates))
	for index := range candidates {
		index, candidate := index, candidates[index]
		tasks[index] = func(_ context.Context) error {
			if candidate == nil {
				return fmt.Errorf("candidate (%d): nil tree: %w", index, types.ErrInvalidArgument)
			}

			results[index] = t.Contains(candidate)
			return nil
		}
	}

	if err = types.RunTasks(ctx, workers, tasks...); err != nil && t.cfg.Debug {
		t.cfg.Logger.Debugf("containment batch of %d candidates: %v", len(candidates), err)
	}

	return
}

// SPDX-License-Identifier: MIT
package katas

import (
	"fmt"

	"gitlab.com/fisherprime/katas/types"
)

// LCA finds the lowest common ancestor of nodes a & b, a node being its own ancestor.
//
// A post-order pass counts the targets found within each subtree; the first node whose subtree
// holds both is the deepest. Targets not attached to the [Tree] yield types.ErrNotFound.
func (t *Tree[T]) LCA(a, b NodeID) (ancestor NodeID, err error) {
	ancestor = Nil
	if err = t.check(a); err != nil {
		return
	}
	if err = t.check(b); err != nil {
		return
	}

	targets := 2
	if a == b {
		targets = 1
	}

	found := make(map[NodeID]int)
	for _, id := range t.postOrder(t.root) {
		count := found[t.nodes[id].left] + found[t.nodes[id].right]
		if id == a || id == b {
			count++
		}

		if count == targets {
			return id, nil
		}
		found[id] = count
	}

	err = fmt.Errorf("ancestor of (%v, %v): targets %w", t.nodes[a].value, t.nodes[b].value, types.ErrNotFound)

	return
}

// BSTLCA finds the node of the lowest common ancestor of values a & b in a binary search [Tree].
//
// Descends left while both values are smaller than the current node & right while both are
// greater, O(h). Both values must be present.
func (t *Tree[T]) BSTLCA(a, b T) (ancestor NodeID, err error) {
	ancestor = t.root
	for ancestor != Nil {
		n := &t.nodes[ancestor]
		if a < n.value && b < n.value {
			ancestor = n.left
			continue
		}
		if a > n.value && b > n.value {
			ancestor = n.right
			continue
		}
		break
	}

	if ancestor == Nil || !t.bstContains(ancestor, a) || !t.bstContains(ancestor, b) {
		err = fmt.Errorf("ancestor of (%v, %v): values %w", a, b, types.ErrNotFound)
		ancestor = Nil
	}

	return
}

// bstContains searches a binary search subtree for value.
func (t *Tree[T]) bstContains(id NodeID, value T) bool {
	for id != Nil {
		switch n := &t.nodes[id]; {
		case value < n.value:
			id = n.left
		case value > n.value:
			id = n.right
		default:
			return true
		}
	}

	return false
}

// LeftMostChild finds the leftmost descendant of id, id itself when it lacks a left child.
func (t *Tree[T]) LeftMostChild(id NodeID) (leftMost NodeID, err error) {
	if err = t.check(id); err != nil {
		return Nil, err
	}

	return t.leftMost(id), nil
}

func (t *Tree[T]) leftMost(id NodeID) NodeID {
	for t.nodes[id].left != Nil {
		id = t.nodes[id].left
	}

	return id
}

// InorderSucc finds the in-order successor of id using parent links.
//
// The successor is the leftmost node of the right subtree or, lacking one, the first ancestor
// reached from its left subtree.
func (t *Tree[T]) InorderSucc(id NodeID) (succ NodeID, err error) {
	if err = t.check(id); err != nil {
		return Nil, err
	}

	if right := t.nodes[id].right; right != Nil {
		return t.leftMost(right), nil
	}

	child, parent := id, t.nodes[id].parent
	for parent != Nil && t.nodes[parent].left != child {
		child, parent = parent, t.nodes[parent].parent
	}
	if parent == Nil {
		err = fmt.Errorf("successor of (%v) %w", t.nodes[id].value, types.ErrNotFound)
	}

	return parent, err
}

// InorderSuccFrom finds the in-order successor of id in a binary search [Tree] by descending from
// the root, without parent links.
func (t *Tree[T]) InorderSuccFrom(id NodeID) (succ NodeID, err error) {
	if err = t.check(id); err != nil {
		return Nil, err
	}

	if right := t.nodes[id].right; right != Nil {
		return t.leftMost(right), nil
	}

	value := t.nodes[id].value
	succ = Nil
	for current := t.root; current != Nil; {
		n := &t.nodes[current]
		if value < n.value {
			succ, current = current, n.left
			continue
		}
		if value == n.value {
			break
		}
		current = n.right
	}
	if succ == Nil {
		err = fmt.Errorf("successor of (%v) %w", value, types.ErrNotFound)
	}

	return
}

// MaxPathSum finds the largest sum of values along any path between two nodes of t.
//
// A post-order pass computes the best downward path from each node; a path bends at most once,
// at its highest node.
func MaxPathSum[T types.Number](t *Tree[T]) (maxSum T, err error) {
	if t == nil {
		err = fmt.Errorf("nil tree: %w", types.ErrInvalidArgument)
		return
	}
	if t.root == Nil {
		err = ErrEmptyTree
		return
	}

	downward := make(map[NodeID]T, len(t.nodes))
	gain := func(id NodeID) (g T) {
		if id != Nil {
			g = max(downward[id], 0)
		}
		return
	}

	maxSum = t.nodes[t.root].value
	for _, id := range t.postOrder(t.root) {
		n := &t.nodes[id]
		left, right := gain(n.left), gain(n.right)

		downward[id] = n.value + max(left, right)
		maxSum = max(maxSum, n.value+left+right)
	}

	return
}

// CommonValues lists the values present in both binary search trees, ascending.
//
// Both trees are walked in order simultaneously with one explicit stack each, O(h1 + h2) space.
func (t *Tree[T]) CommonValues(other *Tree[T]) (common []T) {
	common = []T{}
	if other == nil {
		return
	}

	var s1, s2 types.Stack[NodeID]
	r1, r2 := t.root, other.root
	for {
		switch {
		case r1 != Nil:
			s1.Push(r1)
			r1 = t.nodes[r1].left
		case r2 != Nil:
			s2.Push(r2)
			r2 = other.nodes[r2].left
		case !s1.Empty() && !s2.Empty():
			top1, _ := s1.Peek()
			top2, _ := s2.Peek()
			v1, v2 := t.nodes[top1].value, other.nodes[top2].value

			switch {
			case v1 == v2:
				common = append(common, v1)
				s1.Pop()
				s2.Pop()
				r1, r2 = t.nodes[top1].right, other.nodes[top2].right
			case v1 < v2:
				// Advance to the in-order successor in t.
				s1.Pop()
				r1 = t.nodes[top1].right
			default:
				s2.Pop()
				r2 = other.nodes[top2].right
			}
		default:
			return
		}
	}
}

// SPDX-License-Identifier: MIT
package katas

import (
	"context"
	"fmt"

	"gitlab.com/fisherprime/katas/linkedlist"
	"gitlab.com/fisherprime/katas/types"
)

// TraverseComm defines a channel to communicate info between [Tree] walks & their callers.
type TraverseComm[T Constraint] struct {
	ID    NodeID
	Value T
	Err   error

	// NewPeers marks the first node of a level.
	NewPeers bool
}

const traverseBufferSize = 10

// Walk performs level-order traversal on a [Tree], pushing its nodes to its channel argument.
//
// The channel is closed once the walk ends. A context.Context is used to terminate the walk
// operation.
func (t *Tree[T]) Walk(ctx context.Context, traverseChan chan TraverseComm[T]) {
	defer close(traverseChan)

	t.levelOrder(func(id NodeID, newPeers bool) bool {
		return t.send(ctx, traverseChan, id, newPeers)
	})
}

// levelOrder visits the attached nodes level by level, left to right, until visit returns false.
func (t *Tree[T]) levelOrder(visit func(id NodeID, newPeers bool) bool) {
	if t.root == Nil {
		return
	}

	queue := types.Queue[NodeID]{t.root}
	for !queue.Empty() {
		// Iterate over the current level.
		newPeers := true
		for levelLen := queue.Len(); levelLen > 0; levelLen-- {
			front, _ := queue.Pop()
			if !visit(front, newPeers) {
				return
			}
			newPeers = false

			if left := t.nodes[front].left; left != Nil {
				queue.Push(left)
			}
			if right := t.nodes[front].right; right != Nil {
				queue.Push(right)
			}
		}
	}
}

// WalkSpiral performs level-order traversal alternating direction per level, starting right to
// left at the root's children.
//
// Two stacks are drained in turn; each node's children go onto the other stack in the order that
// reverses the next level.
func (t *Tree[T]) WalkSpiral(ctx context.Context, traverseChan chan TraverseComm[T]) {
	defer close(traverseChan)

	if t.root == Nil {
		return
	}

	current, next := types.Stack[NodeID]{t.root}, types.Stack[NodeID]{}
	for leftFirst := true; !current.Empty(); leftFirst = !leftFirst {
		newPeers := true
		for !current.Empty() {
			top, _ := current.Pop()
			if !t.send(ctx, traverseChan, top, newPeers) {
				return
			}
			newPeers = false

			first, second := t.nodes[top].left, t.nodes[top].right
			if !leftFirst {
				first, second = second, first
			}
			if first != Nil {
				next.Push(first)
			}
			if second != Nil {
				next.Push(second)
			}
		}
		current, next = next, current
	}
}

// send a node over traverseChan, reporting false on context cancellation.
func (t *Tree[T]) send(ctx context.Context, traverseChan chan TraverseComm[T], id NodeID, newPeers bool) bool {
	select {
	case <-ctx.Done():
		return false
	case traverseChan <- TraverseComm[T]{ID: id, Value: t.nodes[id].value, NewPeers: newPeers}:
		return true
	}
}

// collect drains a walk into its values grouped by level.
func (t *Tree[T]) collect(ctx context.Context, walk func(context.Context, chan TraverseComm[T])) (levels [][]T, err error) {
	walkCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	traverseChan := make(chan TraverseComm[T], traverseBufferSize)
	go walk(walkCtx, traverseChan)

	levels = make([][]T, 0)
	for resl := range traverseChan {
		if err = resl.Err; err != nil {
			return
		}

		if resl.NewPeers {
			levels = append(levels, []T{})
		}
		levels[len(levels)-1] = append(levels[len(levels)-1], resl.Value)
	}

	// A canceled walk closes its channel early.
	err = ctx.Err()

	if t.cfg.Debug {
		t.cfg.Logger.Debugf("walked: %+v", levels)
	}

	return
}

// Levels lists the [Tree]'s values level by level.
func (t *Tree[T]) Levels(ctx context.Context) ([][]T, error) { return t.collect(ctx, t.Walk) }

// LevelOrder lists the [Tree]'s values in level order.
func (t *Tree[T]) LevelOrder(ctx context.Context) (values []T, err error) {
	levels, err := t.collect(ctx, t.Walk)
	return flatten(levels), err
}

// SpiralOrder lists the [Tree]'s values in spiral (zigzag) level order: the root, its children
// right to left, their children left to right & so on.
func (t *Tree[T]) SpiralOrder(ctx context.Context) (values []T, err error) {
	levels, err := t.collect(ctx, t.WalkSpiral)
	return flatten(levels), err
}

// Leaves lists the values of the childless nodes in level order.
func (t *Tree[T]) Leaves(ctx context.Context) (leaves []T, err error) {
	if t.root == Nil {
		err = ErrEmptyTree
		return
	}

	walkCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	traverseChan := make(chan TraverseComm[T], traverseBufferSize)
	go t.Walk(walkCtx, traverseChan)

	leaves = make([]T, 0)
	for resl := range traverseChan {
		if err = resl.Err; err != nil {
			return
		}

		if n := &t.nodes[resl.ID]; n.left == Nil && n.right == Nil {
			leaves = append(leaves, resl.Value)
		}
	}
	err = ctx.Err()

	return
}

func flatten[T any](levels [][]T) (values []T) {
	values = make([]T, 0, len(levels))
	for _, level := range levels {
		values = append(values, level...)
	}

	return
}

// InOrder lists the [Tree]'s values in order using an explicit stack.
func (t *Tree[T]) InOrder() (values []T) {
	values = make([]T, 0, len(t.nodes))
	t.inOrder(t.root, func(id NodeID) bool {
		values = append(values, t.nodes[id].value)
		return true
	})

	return
}

// inOrder visits the subtree rooted at id in order until visit returns false.
func (t *Tree[T]) inOrder(id NodeID, visit func(NodeID) bool) {
	stack := types.Stack[NodeID]{}
	for current := id; current != Nil || !stack.Empty(); {
		if current != Nil {
			stack.Push(current)
			current = t.nodes[current].left
			continue
		}

		current, _ = stack.Pop()
		if !visit(current) {
			return
		}
		current = t.nodes[current].right
	}
}

// postOrder lists the subtree rooted at id in post-order: children before their parent.
func (t *Tree[T]) postOrder(id NodeID) (order []NodeID) {
	if id == Nil {
		return
	}

	// Reverse of a root, right, left pre-order.
	stack := types.Stack[NodeID]{id}
	for !stack.Empty() {
		top, _ := stack.Pop()
		order = append(order, top)

		if left := t.nodes[top].left; left != Nil {
			stack.Push(left)
		}
		if right := t.nodes[top].right; right != Nil {
			stack.Push(right)
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return
}

// LevelList inserts the values at depth level (the root is level 0) after sentinel in list, left
// to right.
//
// Nodes are visited right child first so that each insertion directly after sentinel leaves the
// level in left to right order; nodes below level are never visited.
func LevelList[T Constraint](t *Tree[T], list *linkedlist.List[T], sentinel linkedlist.NodeID, level int) (err error) {
	if t == nil {
		err = fmt.Errorf("nil tree: %w", types.ErrInvalidArgument)
		return
	}
	if level < 0 {
		err = fmt.Errorf("level (%d): %w", level, types.ErrInvalidArgument)
		return
	}
	if list == nil {
		err = fmt.Errorf("nil list: %w", types.ErrInvalidArgument)
		return
	}
	if _, err = list.Value(sentinel); err != nil {
		err = fmt.Errorf("sentinel: %w", err)
		return
	}
	if t.root == Nil {
		return
	}

	type frame struct {
		id    NodeID
		depth int
	}

	stack := types.Stack[frame]{{id: t.root}}
	for !stack.Empty() {
		top, _ := stack.Pop()

		if top.depth == level {
			if _, err = list.InsertAfter(sentinel, t.nodes[top.id].value); err != nil {
				return
			}
			continue
		}

		// Pushed last, popped first.
		if left := t.nodes[top.id].left; left != Nil {
			stack.Push(frame{id: left, depth: top.depth + 1})
		}
		if right := t.nodes[top.id].right; right != Nil {
			stack.Push(frame{id: right, depth: top.depth + 1})
		}
	}

	return
}

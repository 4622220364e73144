// SPDX-License-Identifier: MIT

// Package katas implements binary tree exercises over an arena of nodes.
//
// Nodes are addressed by NodeID & hold their left, right & parent links as NodeIDs. Query
// operations return NodeIDs aliasing existing nodes; only construction operations allocate.
package katas

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"gitlab.com/fisherprime/katas/types"
)

// REF: https://www.geeksforgeeks.org/level-order-tree-traversal
//
// REF: https://www.geeksforgeeks.org/level-order-traversal-in-spiral-form

// Constraint is a wrapper interface containing comparable & constraints.Ordered.
type Constraint interface {
	comparable
	constraints.Ordered
}

type (
	// NodeID indexes a node in a Tree.
	NodeID int

	// Side selects a child slot.
	Side int

	// Tree is an arena of binary tree nodes.
	//
	// Synchronization is unnecessary, the type is designed for single write multiple read.
	Tree[T Constraint] struct {
		// cfg contains a pointer to a [Config] shared by trees built from one another.
		cfg *Config

		nodes []node[T]
		root  NodeID
	}

	node[T Constraint] struct {
		value               T
		left, right, parent NodeID
	}

	// Config defines configuration options for the [BuildSource] & [Tree]'s operations.
	Config struct {
		// Logger for [Tree] messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool
	}

	// Option defines the Tree functional option type.
	Option[T Constraint] func(*Tree[T])
)

// Nil marks an absent node.
const Nil NodeID = -1

// Child slots.
const (
	SideRoot Side = iota
	SideLeft
	SideRight
)

// Errors encountered when handling a Tree.
var (
	ErrInvalidNode  = fmt.Errorf("invalid node: %w", types.ErrOutOfRange)
	ErrAlreadyChild = fmt.Errorf("is a child of: %w", types.ErrInvalidArgument)
	ErrOccupied     = fmt.Errorf("child slot occupied: %w", types.ErrInvalidArgument)
	ErrHasRoot      = fmt.Errorf("tree already has a root: %w", types.ErrInvalidArgument)
	ErrInvalidSide  = fmt.Errorf("invalid child side: %w", types.ErrInvalidArgument)
	ErrEmptyTree    = fmt.Errorf("empty tree: %w", types.ErrInvalidArgument)

	ErrInconsistentLinks = errors.New("parent & child links disagree")
)

var defConfig = DefConfig()

// DefConfig obtains the package's [Tree] default options.
func DefConfig() *Config {
	return &Config{
		Logger: logrus.New(),
		Debug:  false,
	}
}

// New instantiates an empty [Tree].
func New[T Constraint](options ...Option[T]) *Tree[T] {
	t := &Tree[T]{
		cfg:  defConfig,
		root: Nil,
	}

	for _, opt := range options {
		opt(t)
	}

	return t
}

// WithConfig configures the [Tree] [Config].
func WithConfig[T Constraint](cfg *Config) Option[T] {
	return func(t *Tree[T]) { t.cfg = cfg }
}

// WithCapacity preallocates the arena for n nodes.
func WithCapacity[T Constraint](n int) Option[T] {
	return func(t *Tree[T]) { t.nodes = make([]node[T], 0, n) }
}

// Config retrieves the [Tree]'s Config.
func (t *Tree[T]) Config() *Config { return t.cfg }

// Root of the [Tree]; Nil when empty.
func (t *Tree[T]) Root() NodeID { return t.root }

// Len is the number of allocated nodes, attached or not.
func (t *Tree[T]) Len() int { return len(t.nodes) }

// Empty checks for a rootless [Tree].
func (t *Tree[T]) Empty() bool { return t.root == Nil }

// NewNode allocates a detached node, see [Tree.Attach].
func (t *Tree[T]) NewNode(value T) NodeID {
	t.nodes = append(t.nodes, node[T]{value: value, left: Nil, right: Nil, parent: Nil})
	return NodeID(len(t.nodes) - 1)
}

// SetRoot allocates the root of an empty [Tree].
func (t *Tree[T]) SetRoot(value T) (id NodeID, err error) {
	if t.root != Nil {
		err = fmt.Errorf("%w: (%v)", ErrHasRoot, t.nodes[t.root].value)
		return Nil, err
	}

	t.root = t.NewNode(value)

	return t.root, nil
}

// AddLeft allocates a left child for parent.
func (t *Tree[T]) AddLeft(parent NodeID, value T) (NodeID, error) {
	return t.add(parent, value, SideLeft)
}

// AddRight allocates a right child for parent.
func (t *Tree[T]) AddRight(parent NodeID, value T) (NodeID, error) {
	return t.add(parent, value, SideRight)
}

func (t *Tree[T]) add(parent NodeID, value T, side Side) (id NodeID, err error) {
	if err = t.checkSlot(parent, side); err != nil {
		return Nil, err
	}

	id = t.NewNode(value)
	t.link(parent, id, side)

	return
}

// Attach grafts the detached subtree rooted at child into a free slot of parent.
func (t *Tree[T]) Attach(parent, child NodeID, side Side) (err error) {
	if err = t.check(child); err != nil {
		return
	}
	if err = t.checkSlot(parent, side); err != nil {
		return
	}

	if p := t.nodes[child].parent; p != Nil || child == t.root {
		err = fmt.Errorf("(%v) %w (%v)", t.nodes[child].value, ErrAlreadyChild, t.valueOr(p))
		return
	}

	// Grafting an ancestor of parent below it would close a loop.
	for ancestor := parent; ancestor != Nil; ancestor = t.nodes[ancestor].parent {
		if ancestor == child {
			err = fmt.Errorf("attaching (%v) below (%v): %w", t.nodes[child].value, t.nodes[parent].value,
				types.ErrCycle)
			return
		}
	}

	t.link(parent, child, side)

	return
}

func (t *Tree[T]) link(parent, child NodeID, side Side) {
	if side == SideLeft {
		t.nodes[parent].left = child
	} else {
		t.nodes[parent].right = child
	}
	t.nodes[child].parent = parent
}

func (t *Tree[T]) checkSlot(parent NodeID, side Side) (err error) {
	if err = t.check(parent); err != nil {
		return
	}

	var slot NodeID
	switch side {
	case SideLeft:
		slot = t.nodes[parent].left
	case SideRight:
		slot = t.nodes[parent].right
	default:
		return fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}

	if slot != Nil {
		err = fmt.Errorf("%w: (%v) of (%v)", ErrOccupied, t.nodes[slot].value, t.nodes[parent].value)
	}

	return
}

// Insert value into a binary search [Tree], returning its node.
//
// A value already present is not duplicated; its existing node is returned with inserted false.
func (t *Tree[T]) Insert(value T) (id NodeID, inserted bool) {
	if t.root == Nil {
		t.root = t.NewNode(value)
		return t.root, true
	}

	current := t.root
	for {
		n := &t.nodes[current]
		switch {
		case value < n.value:
			if n.left == Nil {
				id = t.NewNode(value)
				t.link(current, id, SideLeft)
				return id, true
			}
			current = n.left
		case value > n.value:
			if n.right == Nil {
				id = t.NewNode(value)
				t.link(current, id, SideRight)
				return id, true
			}
			current = n.right
		default:
			return current, false
		}
	}
}

// Value retrieves the data held by a node.
func (t *Tree[T]) Value(id NodeID) (value T, err error) {
	if err = t.check(id); err == nil {
		value = t.nodes[id].value
	}

	return
}

// Left child of a node; Nil when absent.
func (t *Tree[T]) Left(id NodeID) (NodeID, error) {
	if err := t.check(id); err != nil {
		return Nil, err
	}

	return t.nodes[id].left, nil
}

// Right child of a node; Nil when absent.
func (t *Tree[T]) Right(id NodeID) (NodeID, error) {
	if err := t.check(id); err != nil {
		return Nil, err
	}

	return t.nodes[id].right, nil
}

// Parent of a node; Nil for the root & detached nodes.
func (t *Tree[T]) Parent(id NodeID) (NodeID, error) {
	if err := t.check(id); err != nil {
		return Nil, err
	}

	return t.nodes[id].parent, nil
}

// Locate searches the attached nodes for a value, returning the first match in level order.
func (t *Tree[T]) Locate(value T) (id NodeID, err error) {
	id = Nil
	t.levelOrder(func(current NodeID, _ bool) bool {
		if t.nodes[current].value == value {
			id = current
			return false
		}
		return true
	})

	if id == Nil {
		err = fmt.Errorf("(%v) %w", value, types.ErrNotFound)
	}

	return
}

// Validate checks that every node reachable from the root is reached once & that parent links
// agree with child links.
func (t *Tree[T]) Validate() (err error) {
	if t.root == Nil {
		return
	}
	if err = t.check(t.root); err != nil {
		return
	}
	if t.nodes[t.root].parent != Nil {
		return fmt.Errorf("%w: root (%v) has a parent", ErrInconsistentLinks, t.nodes[t.root].value)
	}

	seen := make([]bool, len(t.nodes))
	stack := types.Stack[NodeID]{t.root}
	for !stack.Empty() {
		current, _ := stack.Pop()
		if seen[current] {
			return fmt.Errorf("(%v) reached twice: %w", t.nodes[current].value, types.ErrCycle)
		}
		seen[current] = true

		for _, child := range [2]NodeID{t.nodes[current].left, t.nodes[current].right} {
			if child == Nil {
				continue
			}
			if err = t.check(child); err != nil {
				return
			}
			if t.nodes[child].parent != current {
				return fmt.Errorf("%w: (%v) below (%v)", ErrInconsistentLinks, t.nodes[child].value,
					t.nodes[current].value)
			}
			stack.Push(child)
		}
	}

	return
}

func (t *Tree[T]) check(id NodeID) error {
	if id < 0 || int(id) >= len(t.nodes) {
		return fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}

	return nil
}

// valueOr renders a node's value for messages, tolerating Nil.
func (t *Tree[T]) valueOr(id NodeID) any {
	if id == Nil {
		return "root"
	}

	return t.nodes[id].value
}

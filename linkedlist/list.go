// SPDX-License-Identifier: MIT

// Package linkedlist implements singly linked list exercises over an arena of nodes.
//
// Nodes are addressed by NodeID; a chain is identified by its head. Several chains may share one
// List (intersecting chains, loops), which is what the loop & intersection exercises need.
package linkedlist

import (
	"fmt"

	"gitlab.com/fisherprime/katas/types"
)

type (
	// NodeID indexes a node in a List.
	NodeID int

	// List is an arena of singly linked nodes.
	List[T comparable] struct {
		nodes []node[T]
	}

	node[T comparable] struct {
		value T
		next  NodeID
	}

	// Source is the random number source used by Sample.
	Source = types.Source
)

// Nil terminates a chain.
const Nil NodeID = -1

// List errors.
var (
	ErrInvalidNode = fmt.Errorf("invalid node: %w", types.ErrOutOfRange)
	ErrEmptyList   = fmt.Errorf("empty list: %w", types.ErrInvalidArgument)
	ErrNoLoop      = fmt.Errorf("loop %w", types.ErrNotFound)
	ErrCycle       = fmt.Errorf("chain %w", types.ErrCycle)
)

// New instantiates an empty List.
func New[T comparable]() *List[T] { return &List[T]{} }

// Push allocates a detached node holding value.
func (l *List[T]) Push(value T) NodeID {
	l.nodes = append(l.nodes, node[T]{value: value, next: Nil})
	return NodeID(len(l.nodes) - 1)
}

// FromValues allocates a chain holding values in order, returning its head.
//
// Nil is returned for no values.
func (l *List[T]) FromValues(values ...T) (head NodeID) {
	head = Nil

	prev := Nil
	for index := range values {
		id := l.Push(values[index])
		if prev == Nil {
			head = id
		} else {
			l.nodes[prev].next = id
		}
		prev = id
	}

	return
}

// InsertAfter allocates a node holding value & splices it in after id.
func (l *List[T]) InsertAfter(id NodeID, value T) (inserted NodeID, err error) {
	if err = l.check(id); err != nil {
		return
	}

	inserted = l.Push(value)
	l.nodes[inserted].next = l.nodes[id].next
	l.nodes[id].next = inserted

	return
}

// Cap is the number of nodes allocated in the arena.
func (l *List[T]) Cap() int { return len(l.nodes) }

// Value retrieves the data held by id.
func (l *List[T]) Value(id NodeID) (value T, err error) {
	if err = l.check(id); err == nil {
		value = l.nodes[id].value
	}

	return
}

// Next retrieves the successor of id.
func (l *List[T]) Next(id NodeID) (next NodeID, err error) {
	next = Nil
	if err = l.check(id); err == nil {
		next = l.nodes[id].next
	}

	return
}

// SetNext links id to next; next may be Nil.
func (l *List[T]) SetNext(id, next NodeID) (err error) {
	if err = l.check(id); err != nil {
		return
	}
	if next != Nil {
		if err = l.check(next); err != nil {
			return
		}
	}
	l.nodes[id].next = next

	return
}

// Values collects the values of the chain starting at head.
//
// A chain longer than the arena must revisit a node, ErrCycle is returned for such a chain.
func (l *List[T]) Values(head NodeID) (values []T, err error) {
	values = []T{}
	err = l.walk(head, func(id NodeID) bool {
		values = append(values, l.nodes[id].value)
		return true
	})

	return
}

// Len counts the nodes of the chain starting at head.
func (l *List[T]) Len(head NodeID) (length int, err error) {
	err = l.walk(head, func(NodeID) bool {
		length++
		return true
	})

	return
}

// walk calls fn for each node of a finite chain until fn returns false.
func (l *List[T]) walk(head NodeID, fn func(NodeID) bool) (err error) {
	if head == Nil {
		return
	}
	if err = l.check(head); err != nil {
		return
	}

	steps := 0
	for id := head; id != Nil; id = l.nodes[id].next {
		if steps++; steps > len(l.nodes) {
			return ErrCycle
		}
		if !fn(id) {
			return
		}
	}

	return
}

func (l *List[T]) check(id NodeID) error {
	if id < 0 || int(id) >= len(l.nodes) {
		return fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}

	return nil
}

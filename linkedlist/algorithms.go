// SPDX-License-Identifier: MIT
package linkedlist

import (
	"fmt"

	"gitlab.com/fisherprime/katas/types"
)

// Reverse the chain starting at head in place, returning the new head.
//
// O(n) time, O(1) space.
func (l *List[T]) Reverse(head NodeID) (newHead NodeID, err error) {
	newHead = Nil

	// Reject loops before relinking; a reversed loop can't be restored.
	if _, err = l.Len(head); err != nil {
		return
	}

	prev, curr := Nil, head
	for curr != Nil {
		next := l.nodes[curr].next
		l.nodes[curr].next = prev
		prev, curr = curr, next
	}
	newHead = prev

	return
}

// RemoveDuplicates splices out nodes whose value appeared earlier in the chain.
//
// O(n) time using a set of seen values.
func (l *List[T]) RemoveDuplicates(head NodeID) (err error) {
	if _, err = l.Len(head); err != nil {
		return
	}

	seen := make(map[T]struct{})
	prev := Nil
	for id := head; id != Nil; id = l.nodes[id].next {
		value := l.nodes[id].value
		if _, ok := seen[value]; ok {
			// prev is set, the head is never a duplicate.
			l.nodes[prev].next = l.nodes[id].next
			continue
		}
		seen[value] = struct{}{}
		prev = id
	}

	return
}

// KthToLast finds the kth to last node of the chain, k == 1 being the tail.
//
// Uses two runners k-1 nodes apart.
func (l *List[T]) KthToLast(head NodeID, k int) (kth NodeID, err error) {
	kth = Nil

	if k < 1 {
		err = fmt.Errorf("k (%d) %w", k, types.ErrInvalidArgument)
		return
	}

	length, err := l.Len(head)
	if err != nil {
		return
	}
	if k > length {
		err = fmt.Errorf("k (%d) of list length (%d): %w", k, length, types.ErrOutOfRange)
		return
	}

	lead, trail := head, head
	for index := 0; index < k-1; index++ {
		lead = l.nodes[lead].next
	}
	for l.nodes[lead].next != Nil {
		lead, trail = l.nodes[lead].next, l.nodes[trail].next
	}
	kth = trail

	return
}

// DeleteNode removes id from its chain given access to that node only.
//
// The successor's value is copied into id & the successor spliced out; the tail can't be deleted
// this way.
func (l *List[T]) DeleteNode(id NodeID) (err error) {
	if err = l.check(id); err != nil {
		return
	}

	next := l.nodes[id].next
	if next == Nil {
		err = fmt.Errorf("node (%d) is the tail: %w", id, types.ErrInvalidArgument)
		return
	}

	l.nodes[id].value = l.nodes[next].value
	l.nodes[id].next = l.nodes[next].next

	return
}

// LoopStart finds the first node of a loop in the chain starting at head (Floyd's algorithm).
//
// ErrNoLoop is returned for a Nil terminated chain.
func (l *List[T]) LoopStart(head NodeID) (start NodeID, err error) {
	start = Nil
	if head == Nil {
		err = ErrEmptyList
		return
	}
	if err = l.check(head); err != nil {
		return
	}

	slow, fast := head, head
	for {
		if fast == Nil || l.nodes[fast].next == Nil {
			err = ErrNoLoop
			return
		}

		slow = l.nodes[slow].next
		fast = l.nodes[l.nodes[fast].next].next
		if slow == fast {
			break
		}
	}

	// Both runners now move one node at a time, meeting at the loop's start.
	slow = head
	for slow != fast {
		slow, fast = l.nodes[slow].next, l.nodes[fast].next
	}
	start = fast

	return
}

// Intersection finds the first node shared by the chains starting at h1 & h2.
//
// O(n+m) time, O(n) space.
func (l *List[T]) Intersection(h1, h2 NodeID) (shared NodeID, err error) {
	shared = Nil
	if h1 == Nil || h2 == Nil {
		err = ErrEmptyList
		return
	}

	visited := make(map[NodeID]struct{})
	if err = l.walk(h1, func(id NodeID) bool {
		visited[id] = struct{}{}
		return true
	}); err != nil {
		return
	}

	if err = l.walk(h2, func(id NodeID) bool {
		if _, ok := visited[id]; ok {
			shared = id
			return false
		}
		return true
	}); err != nil {
		return
	}

	if shared == Nil {
		err = fmt.Errorf("intersection %w", types.ErrNotFound)
	}

	return
}

// Sample returns a uniformly random value from the chain using reservoir sampling.
//
// The nth node replaces the reservoir with probability 1/n.
func (l *List[T]) Sample(head NodeID, rng Source) (value T, err error) {
	if head == Nil {
		err = ErrEmptyList
		return
	}
	if rng == nil {
		err = fmt.Errorf("random source %w", types.ErrInvalidArgument)
		return
	}

	seen := 0
	err = l.walk(head, func(id NodeID) bool {
		seen++
		if rng.Intn(seen) == 0 {
			value = l.nodes[id].value
		}
		return true
	})

	return
}

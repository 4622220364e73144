// SPDX-License-Identifier: MIT
package types

type (
	// Stack is a LIFO container backed by a slice.
	Stack[T any] []T

	// Queue is a FIFO container backed by a slice.
	Queue[T any] []T
)

// Push to `Stack`.
func (s *Stack[T]) Push(values ...T) { *s = append(*s, values...) }

// Pop from `Stack`.
//
// ok is false for an empty `Stack`.
func (s *Stack[T]) Pop() (value T, ok bool) {
	last := len(*s) - 1
	if last < 0 {
		return
	}

	value, ok = (*s)[last], true
	*s = (*s)[:last]

	return
}

// Peek at the top of the `Stack` without removing it.
func (s *Stack[T]) Peek() (value T, ok bool) {
	if last := len(*s) - 1; last > -1 {
		value, ok = (*s)[last], true
	}

	return
}

// Len of `Stack`.
func (s *Stack[T]) Len() int { return len(*s) }

// Empty checks for an empty `Stack`.
func (s *Stack[T]) Empty() bool { return len(*s) < 1 }

// Push to `Queue`.
func (q *Queue[T]) Push(values ...T) { *q = append(*q, values...) }

// Pop the front of `Queue`.
func (q *Queue[T]) Pop() (value T, ok bool) {
	if len(*q) < 1 {
		return
	}

	value, ok = (*q)[0], true
	*q = (*q)[1:]

	return
}

// Len of `Queue`.
func (q *Queue[T]) Len() int { return len(*q) }

// Empty checks for an empty `Queue`.
func (q *Queue[T]) Empty() bool { return len(*q) < 1 }

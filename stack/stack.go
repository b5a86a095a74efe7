// Package stack exposes a generic last-in-first-out container.
package stack

import "github.com/couchbase/tools-common/containers/deque"

// Stack is a LIFO container, values are inserted at and removed from the front.
//
// NOTE: A Stack is not thread safe, callers sharing one between goroutines must provide their own synchronization.
type Stack[T comparable] struct {
	values *deque.Deque[T]
}

// New creates an empty stack.
func New[T comparable]() *Stack[T] {
	return &Stack[T]{values: deque.NewDeque[T]()}
}

// NewWithCapacity creates an empty stack which can hold the given number of values before having to grow.
func NewWithCapacity[T comparable](capacity int) *Stack[T] {
	return &Stack[T]{values: deque.NewDequeWithCapacity[T](capacity)}
}

// IsEmpty returns whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool {
	return s.values.Len() == 0
}

// Len returns the number of values in the stack.
func (s *Stack[T]) Len() int {
	return s.values.Len()
}

// Insert pushes v onto the front of the stack.
func (s *Stack[T]) Insert(v T) {
	s.values.PushFront(v)
}

// Remove pops the most recently inserted value, returning the zero value and false if the stack is empty.
func (s *Stack[T]) Remove() (T, bool) {
	return s.values.PopFront()
}

// Peek returns the value which would be returned by the next call to 'Remove' without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	return s.values.Front()
}

// Contains returns whether the stack holds a value equal to v.
func (s *Stack[T]) Contains(v T) bool {
	return s.values.Any(func(e T) bool { return e == v })
}

// Clear removes all the values from the stack.
func (s *Stack[T]) Clear() {
	s.values.Clear()
}

// Drain removes all values from the stack running the given function on each one. In the event of an error, draining
// stops early, and returns the error.
func (s *Stack[T]) Drain(fn func(v T) error) error {
	for {
		v, ok := s.Remove()
		if !ok {
			return nil
		}

		if err := fn(v); err != nil {
			return err
		}
	}
}

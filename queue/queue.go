// Package queue exposes a generic first-in-first-out container.
package queue

import "github.com/couchbase/tools-common/containers/deque"

// Queue is a FIFO container, values are inserted at the back and removed from the front.
//
// NOTE: A Queue is not thread safe, callers sharing one between goroutines must provide their own synchronization.
type Queue[T comparable] struct {
	values *deque.Deque[T]
}

// New creates an empty queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{values: deque.NewDeque[T]()}
}

// NewWithCapacity creates an empty queue which can hold the given number of values before having to grow.
func NewWithCapacity[T comparable](capacity int) *Queue[T] {
	return &Queue[T]{values: deque.NewDequeWithCapacity[T](capacity)}
}

// IsEmpty returns whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool {
	return q.values.Len() == 0
}

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int {
	return q.values.Len()
}

// Insert adds v to the back of the queue.
func (q *Queue[T]) Insert(v T) {
	q.values.PushBack(v)
}

// Remove returns the least recently inserted value, returning the zero value and false if the queue is empty.
func (q *Queue[T]) Remove() (T, bool) {
	return q.values.PopFront()
}

// Peek returns the value at the front of the queue without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	return q.values.Front()
}

// Contains returns whether the queue holds a value equal to v.
func (q *Queue[T]) Contains(v T) bool {
	return q.values.Any(func(e T) bool { return e == v })
}

// Clear removes all the values from the queue.
func (q *Queue[T]) Clear() {
	q.values.Clear()
}

// Drain removes all values from the queue, in insertion order, running the given function on each one. In the event of
// an error, draining stops early, and returns the error.
func (q *Queue[T]) Drain(fn func(v T) error) error {
	for {
		v, ok := q.Remove()
		if !ok {
			return nil
		}

		if err := fn(v); err != nil {
			return err
		}
	}
}

// Package deque provides a growable double ended queue, used as the backing sequence for the stack and queue
// containers.
package deque

const (
	// DefaultCapacity is the number of values a deque can hold before it first has to grow.
	DefaultCapacity = 2

	// growthFactor is the factor by which the capacity increases when the deque is full.
	growthFactor = 2
)

// Deque is a double-ended queue with constant time push at both ends (amortized) and pop from the front.
//
// NOTE: It is currently implemented as a circular buffer but this detail should not be relied on.
type Deque[T any] struct {
	rb ring[T]
}

// NewDeque creates an empty deque with the default capacity.
func NewDeque[T any]() *Deque[T] {
	return NewDequeWithCapacity[T](DefaultCapacity)
}

// NewDequeWithCapacity creates an empty deque which can hold the given number of values before growing, non-positive
// values result in the default capacity.
func NewDequeWithCapacity[T any](capacity int) *Deque[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Deque[T]{rb: newRing[T](capacity)}
}

// Len returns the number of values in the deque.
func (d *Deque[T]) Len() int {
	return d.rb.len()
}

// Cap returns the number of values the deque can hold before it next has to grow.
func (d *Deque[T]) Cap() int {
	return d.rb.cap()
}

// grow copies the values into a new ring, growthFactor times larger, if the current one is full.
func (d *Deque[T]) grow() {
	if !d.rb.full() {
		return
	}

	grown := newRing[T](d.rb.cap() * growthFactor)

	for i := 0; i < d.rb.len(); i++ {
		grown.pushBack(d.rb.at(i))
	}

	d.rb = grown
}

// PushFront adds v to the start of the deque.
func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.rb.pushFront(v)
}

// PushBack adds v to the end of the deque.
func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.rb.pushBack(v)
}

// PopFront removes and returns the value at the front of the deque, returning the zero value and false if it's empty.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.rb.empty() {
		return *new(T), false
	}

	return d.rb.popFront(), true
}

// Front returns the value at the front of the deque without removing it.
func (d *Deque[T]) Front() (T, bool) {
	if d.rb.empty() {
		return *new(T), false
	}

	return d.rb.at(0), true
}

// Clear removes all the values from the deque, the capacity is retained.
func (d *Deque[T]) Clear() {
	for !d.rb.empty() {
		d.rb.popFront()
	}
}

// Any returns whether fn returns true for any value in the deque, values are visited from the front and iteration stops
// at the first match.
func (d *Deque[T]) Any(fn func(v T) bool) bool {
	for i := 0; i < d.rb.len(); i++ {
		if fn(d.rb.at(i)) {
			return true
		}
	}

	return false
}

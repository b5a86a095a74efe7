// Package pq exposes a generic priority queue implemented using a binary min-heap, ordered by a user supplied cost
// function.
package pq

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/couchbase/tools-common/containers/log"
)

// PriorityQueue is a min-heap of elements, where 'Remove' always returns the element with the lowest cost. Where
// multiple elements have the same cost, they're returned in an arbitrary order.
//
// NOTE: A PriorityQueue is not thread safe, callers sharing one between goroutines must provide their own
// synchronization.
type PriorityQueue[T comparable, C constraints.Ordered] struct {
	items  heap[T, C]
	logger log.WrappedLogger
}

// NewPriorityQueue creates an empty priority queue, ordered using the given cost function where lower costs are removed
// first.
//
// NOTE: The cost of an element must not change whilst it's in the queue, doing so breaks the ordering of the queue.
func NewPriorityQueue[T comparable, C constraints.Ordered](cost func(v T) C) *PriorityQueue[T, C] {
	return NewPriorityQueueWithOptions(cost, Options{})
}

// NewPriorityQueueWithOptions creates an empty priority queue, ordered using the given cost function.
func NewPriorityQueueWithOptions[T comparable, C constraints.Ordered](
	cost func(v T) C,
	opts Options,
) *PriorityQueue[T, C] {
	opts.defaults()

	return &PriorityQueue[T, C]{
		items:  heap[T, C]{cost: cost, items: make([]T, 0, opts.Capacity)},
		logger: log.NewWrappedLogger(opts.Logger, opts.LogPrefix),
	}
}

// IsEmpty returns whether the priority queue holds no elements.
func (p *PriorityQueue[T, C]) IsEmpty() bool {
	return p.items.len() == 0
}

// Len returns the number of elements in the priority queue.
func (p *PriorityQueue[T, C]) Len() int {
	return p.items.len()
}

// Cap returns the number of elements the priority queue can hold before it next has to grow, this starts at the
// configured capacity and doubles each time the queue grows.
func (p *PriorityQueue[T, C]) Cap() int {
	return cap(p.items.items)
}

// Contains returns whether the priority queue holds an element equal to v.
//
// NOTE: This is a linear scan, the heap ordering isn't used.
func (p *PriorityQueue[T, C]) Contains(v T) bool {
	return slices.Contains(p.items.items, v)
}

// Insert adds v to the priority queue according to its cost.
func (p *PriorityQueue[T, C]) Insert(v T) {
	p.growIfRequired()
	p.items.push(v)
}

// growIfRequired doubles the capacity of the backing storage if it's full.
func (p *PriorityQueue[T, C]) growIfRequired() {
	size := p.items.len()

	if size < cap(p.items.items) {
		return
	}

	grown := make([]T, size, 2*size)
	copy(grown, p.items.items)

	p.items.items = grown

	p.logger.Tracef("Grew backing storage from %d to %d elements", size, cap(grown))
}

// Remove returns the element with the lowest cost, returning the zero value and false if the priority queue is empty.
func (p *PriorityQueue[T, C]) Remove() (T, bool) {
	if p.items.len() == 0 {
		return *new(T), false
	}

	return p.items.pop(), true
}

// Peek returns the element with the lowest cost without removing it.
func (p *PriorityQueue[T, C]) Peek() (T, bool) {
	if p.items.len() == 0 {
		return *new(T), false
	}

	return p.items.items[0], true
}

// Drain removes all elements from the queue, lowest cost first, running the given function on each one. In the event
// of an error, dequeuing stops early, and returns the error.
func (p *PriorityQueue[T, C]) Drain(fn func(v T) error) error {
	for !p.IsEmpty() {
		v, _ := p.Remove()

		if err := fn(v); err != nil {
			return err
		}
	}

	return nil
}

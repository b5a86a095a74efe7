package pq

import "golang.org/x/exp/constraints"

// heap is a binary min-heap stored in a slice, the children of the element at index i are at 2i+1 and 2i+2.
//
// For every element, its cost is less than or equal to the cost of each of its children.
type heap[T any, C constraints.Ordered] struct {
	cost  func(v T) C
	items []T
}

func (h *heap[T, C]) len() int {
	return len(h.items)
}

func (h *heap[T, C]) less(i, j int) bool {
	return h.cost(h.items[i]) < h.cost(h.items[j])
}

func (h *heap[T, C]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func parent(i int) int {
	return (i - 1) / 2
}

func left(i int) int {
	return 2*i + 1
}

func right(i int) int {
	return 2*i + 2
}

// smallestChild returns the index of the child of i with the lowest cost, and false if i is a leaf. When both children
// have the same cost the right one is chosen.
func (h *heap[T, C]) smallestChild(i int) (int, bool) {
	l, r := left(i), right(i)

	switch {
	case l >= h.len():
		return 0, false
	case r >= h.len():
		return l, true
	case h.less(l, r):
		return l, true
	default:
		return r, true
	}
}

// push appends v and moves it towards the root until its parent costs no more than it does.
func (h *heap[T, C]) push(v T) {
	h.items = append(h.items, v)
	h.up(h.len() - 1)
}

// pop removes and returns the root, the caller must ensure the heap isn't empty.
func (h *heap[T, C]) pop() T {
	var (
		last = h.len() - 1
		root = h.items[0]
		zero T
	)

	h.items[0] = h.items[last]
	h.items[last] = zero
	h.items = h.items[:last]

	h.down(0)

	return root
}

func (h *heap[T, C]) up(i int) {
	for i > 0 {
		p := parent(i)

		if !h.less(i, p) {
			return
		}

		h.swap(i, p)
		i = p
	}
}

func (h *heap[T, C]) down(i int) {
	for {
		c, ok := h.smallestChild(i)
		if !ok || !h.less(c, i) {
			return
		}

		h.swap(i, c)
		i = c
	}
}

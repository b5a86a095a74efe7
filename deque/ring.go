package deque

// mod returns numerator % denominator where the result is always non-negative (i.e. -5 % 3 is 1), which is the
// definition we want when wrapping indexes.
func mod(numerator, denominator int) int {
	m := numerator % denominator
	if m < 0 {
		m += denominator
	}

	return m
}

// ring is a fixed size circular buffer. It holds at most len(items)-1 values.
//
// NOTE: head == tail means the ring is empty, so there's always one unused slot.
type ring[T any] struct {
	// head is the index of the first value.
	head int

	// tail is the index of the next free slot after the last value.
	tail int

	items []T
}

func newRing[T any](capacity int) ring[T] {
	return ring[T]{items: make([]T, capacity+1)}
}

func (r *ring[T]) cap() int {
	return len(r.items) - 1
}

func (r *ring[T]) len() int {
	// The head may be after the tail in which case the values wrap around the end of the slice.
	if r.head > r.tail {
		return len(r.items) - r.head + r.tail
	}

	return r.tail - r.head
}

func (r *ring[T]) empty() bool {
	return r.head == r.tail
}

func (r *ring[T]) full() bool {
	return r.len() >= r.cap()
}

// at returns the value at the given offset from the head, the caller must ensure 0 <= i < len().
func (r *ring[T]) at(i int) T {
	return r.items[mod(r.head+i, len(r.items))]
}

func (r *ring[T]) pushFront(v T) {
	r.head = mod(r.head-1, len(r.items))
	r.items[r.head] = v
}

func (r *ring[T]) pushBack(v T) {
	r.items[r.tail] = v
	r.tail = mod(r.tail+1, len(r.items))
}

func (r *ring[T]) popFront() T {
	var zero T

	v := r.items[r.head]
	r.items[r.head] = zero
	r.head = mod(r.head+1, len(r.items))

	return v
}

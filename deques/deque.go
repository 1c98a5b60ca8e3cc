package deques

import "math/bits"

// Deque is a generic double-ended queue backed by a circular array.
// Elements can be pushed and popped at both ends in amortized O(1) time,
// which makes it suitable as a sliding buffer: evict at the front,
// append at the back.
type Deque[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the front element
	size int // number of elements currently held
	mask int // capacity - 1, used for fast modulo: idx & mask
}

// New creates a Deque with room for at least capacity elements before
// the first grow.
func New[T any](capacity int) *Deque[T] {
	if capacity <= 0 {
		capacity = 16
	}

	// round capacity up to the next power of two
	var n int
	if capacity <= 1 {
		n = 1
	} else {
		n = 1 << uint(bits.Len(uint(capacity-1)))
	}

	return &Deque[T]{
		buf:  make([]T, n),
		head: 0,
		size: 0,
		mask: n - 1,
	}
}

// grow doubles the backing array to hold at least size+extra elements and
// unwraps the contents so the front element sits at index 0 again.
func (d *Deque[T]) grow(extra int) {
	n := 1 << uint(bits.Len(uint(d.size+extra-1)))
	newBuf := make([]T, n)

	if d.head+d.size <= len(d.buf) {
		// contiguous
		copy(newBuf, d.buf[d.head:d.head+d.size])
	} else {
		// wrapped around: head..end, then start..tail
		k := copy(newBuf, d.buf[d.head:])
		tail := (d.head + d.size) & d.mask
		copy(newBuf[k:], d.buf[:tail])
	}

	clear(d.buf)
	d.buf = newBuf
	d.head = 0
	d.mask = n - 1
}

// PushBack appends v after the last element.
func (d *Deque[T]) PushBack(v T) {
	if d.size == len(d.buf) {
		d.grow(1)
	}
	d.buf[(d.head+d.size)&d.mask] = v
	d.size++
}

// PushFront inserts v before the first element.
func (d *Deque[T]) PushFront(v T) {
	if d.size == len(d.buf) {
		d.grow(1)
	}
	d.head = (d.head - 1) & d.mask
	d.buf[d.head] = v
	d.size++
}

// PopFront removes and returns the front (oldest) element.
func (d *Deque[T]) PopFront() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	value = d.buf[d.head]
	var zero T
	d.buf[d.head] = zero // clear reference
	d.head = (d.head + 1) & d.mask
	d.size--
	return value, true
}

// PopBack removes and returns the back (newest) element.
func (d *Deque[T]) PopBack() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	tail := (d.head + d.size - 1) & d.mask
	value = d.buf[tail]
	var zero T
	d.buf[tail] = zero // clear reference
	d.size--
	return value, true
}

// Front returns the front element without removing it.
func (d *Deque[T]) Front() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	return d.buf[d.head], true
}

// Back returns the back element without removing it.
func (d *Deque[T]) Back() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	return d.buf[(d.head+d.size-1)&d.mask], true
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.size
}

// IsEmpty returns true if the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.size == 0
}

// Clear removes all elements, keeping the current capacity.
func (d *Deque[T]) Clear() {
	clear(d.buf)
	d.head = 0
	d.size = 0
}

// Snapshot returns a newly allocated slice holding the deque's contents in
// front-to-back order. The result shares no memory with the deque, so later
// pushes and pops never affect it.
func (d *Deque[T]) Snapshot() []T {
	out := make([]T, d.size)
	d.CopyTo(out)
	return out
}

// CopyTo copies up to len(dst) elements into dst in front-to-back order
// without removing them, and returns the number copied.
func (d *Deque[T]) CopyTo(dst []T) int {
	n := d.size
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return 0
	}
	if d.head+n <= len(d.buf) {
		copy(dst, d.buf[d.head:d.head+n])
	} else {
		// wrapped around
		k := copy(dst, d.buf[d.head:])
		copy(dst[k:], d.buf[:n-k])
	}
	return n
}

package fringe

import (
	list "github.com/bahlo/generic-list-go"
)

// Deque is a double-ended queue. Items are always appended at the back;
// popping from the front yields FIFO order, popping from the back LIFO.
type Deque[T any] struct {
	l *list.List[T]
}

// NewDeque returns a deque holding items in order.
func NewDeque[T any](items ...T) *Deque[T] {
	d := &Deque[T]{l: list.New[T]()}
	for _, it := range items {
		d.l.PushBack(it)
	}

	return d
}

// Len returns the number of items.
func (d *Deque[T]) Len() int { return d.l.Len() }

// PushBack appends x at the tail.
func (d *Deque[T]) PushBack(x T) { d.l.PushBack(x) }

// PopFront removes the head item, or returns false when empty.
func (d *Deque[T]) PopFront() (T, bool) {
	e := d.l.Front()
	if e == nil {
		var zero T
		return zero, false
	}

	return d.l.Remove(e), true
}

// PopBack removes the tail item, or returns false when empty.
func (d *Deque[T]) PopBack() (T, bool) {
	e := d.l.Back()
	if e == nil {
		var zero T
		return zero, false
	}

	return d.l.Remove(e), true
}

// Pop removes from the back when lifo is set and from the front otherwise.
func (d *Deque[T]) Pop(lifo bool) (T, bool) {
	if lifo {
		return d.PopBack()
	}

	return d.PopFront()
}

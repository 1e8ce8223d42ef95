package fringe

import "container/heap"

// PriorityQueue is a max-first binary heap over Comparer values.
// The zero value is ready to use.
type PriorityQueue[T Comparer[T]] struct {
	items maxHeap[T]
}

// NewPriorityQueue returns a queue seeded with items.
func NewPriorityQueue[T Comparer[T]](items ...T) *PriorityQueue[T] {
	pq := &PriorityQueue[T]{items: make(maxHeap[T], 0, len(items))}
	pq.items = append(pq.items, items...)
	heap.Init(&pq.items)

	return pq
}

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }

// Push inserts x.
func (pq *PriorityQueue[T]) Push(x T) { heap.Push(&pq.items, x) }

// Pop removes and returns the greatest item, or false when empty.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	if len(pq.items) == 0 {
		var zero T
		return zero, false
	}

	return heap.Pop(&pq.items).(T), true
}

// Peek returns the greatest item without removing it.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if len(pq.items) == 0 {
		var zero T
		return zero, false
	}

	return pq.items[0], true
}

// maxHeap adapts a slice to heap.Interface, ordering by Compare descending.
type maxHeap[T Comparer[T]] []T

func (h maxHeap[T]) Len() int           { return len(h) }
func (h maxHeap[T]) Less(i, j int) bool { return h[i].Compare(h[j]) > 0 }
func (h maxHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *maxHeap[T]) Push(x any) { *h = append(*h, x.(T)) }

func (h *maxHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero
	*h = old[:n-1]

	return item
}

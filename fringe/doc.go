// Package fringe provides the frontier containers used by the search
// strategies, plus the ordering wrapper and visited set.
//
// What
//
//   - Deque[T]:         double-ended queue; PopFront gives breadth-first order,
//     PopBack gives depth-first order.
//   - PriorityQueue[T]: binary heap that always pops the element whose Compare
//     is greatest ("maximum first").
//   - Scored[T, C]:     pairs an item with a precomputed score and inverts the
//     natural order of that score, so a PriorityQueue of Scored values pops the
//     LOWEST score first.
//   - Visited[K]:       first-seen-wins membership set that remembers admission order.
//
// Why isolate the inversion?
//
//	Strategy code only ever asks the queue for "the best" item. Whether the
//	underlying heap is max- or min-oriented is decided in exactly one place,
//	Scored.Compare, so no strategy has to reason about heap direction.
//
// Complexity
//
//   - Deque:         O(1) push/pop at either end.
//   - PriorityQueue: O(log n) Push/Pop, O(1) Peek/Len.
//   - Visited:       O(1) amortized Insert/Contains.
//
// None of the containers are safe for concurrent use; each search owns its own.
package fringe

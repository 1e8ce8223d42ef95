// Package unguided provides breadth-first and depth-first exploration
// managers backed by a double-ended queue.
//
// What
//
//	Four managers, one per combination of result shape and deduplication:
//
//	                 | no dedup       | dedup (S comparable)
//	  solution only  | NoRoute        | HashableNoRoute
//	  full route     | Route          | HashableRoute
//
//	Successors are appended at the tail. Popping from the head gives
//	breadth-first order (the default); setting DepthFirst (or passing
//	WithDepthFirst) pops from the tail instead.
//
// Choosing a variant
//
//   - Hashable managers keep a visited set. Every distinct state enters the
//     frontier at most once (first seen wins), which guarantees termination on
//     finite spaces with cycles. The cost is memory proportional to the number
//     of distinct states seen.
//   - Non-hashable managers work for any state type but will revisit states;
//     on cyclic spaces they may never terminate.
//   - Route managers record every expanded state in an arena and return the
//     path start → solution; no-route managers return the solution alone.
//
// Breadth-first route managers return a path with the fewest steps.
//
// Usage
//
//	m := unguided.NewHashableRoute[Pos](maze, Pos{0, 0})
//	s, err := m.Searcher()
//	if err != nil {
//	    // ErrNilSpace or ErrOptionViolation
//	}
//	path, ok := s.Next()
package unguided

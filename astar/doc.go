// Package astar provides A* exploration managers. Each frontier item carries
// the cumulative edge cost from the start, and the item with the lowest
// cost + Score(state) is expanded next.
//
// What
//
//	                 | no dedup       | dedup (S comparable)
//	  solution only  | NoRoute        | HashableNoRoute
//	  full route     | Route          | HashableRoute
//
//	The space is a space.WeightedSpace: successors come paired with edge
//	costs, and Score is the estimated remaining cost. Costs are any
//	space.Number; the zero value starts every path.
//
// Optimality
//
//	With an admissible Score (never overestimating the remaining cost) the
//	non-hashable managers return a minimum-cost solution first. Hashable
//	managers admit each state the first time it is generated, so a later,
//	cheaper route to an admitted state is dropped. On open uniform-cost
//	grids with a Manhattan Score this rarely matters; on irregular costs
//	use a non-hashable manager with a budget.
//
// Complexity
//
//   - Time:  O(N log N) for N frontier insertions.
//   - Space: O(N) frontier, plus O(expanded) arena for route managers.
//
// Usage
//
//	m := astar.NewHashableRoute[Pos, int](maze, Pos{0, 0})
//	s, _ := m.Searcher()
//	path, ok := s.Next()
//	cost := m.LastCost()
package astar

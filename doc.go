// Package spacesearch is a generic state-space search toolkit: describe a
// problem as states, successors and a goal test, then pick a strategy.
//
// What is spacesearch?
//
//	A small family of packages built around one driver loop:
//		• space:     the contracts a problem domain implements
//		• search:    the pull-based Searcher and the Manager contract
//		• unguided:  breadth-first and depth-first managers
//		• guided:    greedy best-first managers (lowest score first)
//		• astar:     A* managers (lowest cost + score first)
//		• fringe:    frontier containers (deque, priority queue, visited set)
//		• arena:     parent arena for route reconstruction
//		• gridspace: ready-made 2D lattice and weighted grid spaces
//		• metrics:   Prometheus counters fed by search hooks
//
// Picking a manager
//
//	Every strategy package has four managers, chosen along two axes:
//
//	                 | no dedup       | dedup (S comparable)
//	  solution only  | NoRoute        | HashableNoRoute
//	  full route     | Route          | HashableRoute
//
//	Deduplicating managers terminate on finite spaces with cycles. Route
//	managers return the path start → solution.
//
// Quick start
//
//	g, start, _ := gridspace.ParseMaze([]string{"S..", ".#.", "..G"}, gridspace.Conn4)
//	m := astar.NewHashableRoute[gridspace.Point, int](g, start)
//	s, _ := m.Searcher(search.WithMaxExpansions(10_000))
//	for path := range s.All() {
//		fmt.Println(path, m.LastCost())
//	}
//
// The cmd/spacesearch binary runs the same search from a YAML file or flags.
package spacesearch

// Version is the spacesearch release.
const Version = "0.1.0"

package astar

import (
	"iter"

	"github.com/katalvlaran/spacesearch/arena"
	"github.com/katalvlaran/spacesearch/fringe"
	"github.com/katalvlaran/spacesearch/search"
	"github.com/katalvlaran/spacesearch/space"
)

// Route yields the path to each solution and keeps no visited set.
type Route[S any, C space.Number] struct {
	space    space.WeightedSpace[S, C]
	fringe   *fringe.PriorityQueue[fringe.Scored[arena.CostedLink[S, C], C]]
	parents  *arena.Arena[S]
	lastCost C
}

// NewRoute seeds a manager with start as the zero-cost root of every route.
func NewRoute[S any, C space.Number](sp space.WeightedSpace[S, C], start S) *Route[S, C] {
	m := &Route[S, C]{
		space:   sp,
		fringe:  fringe.NewPriorityQueue[fringe.Scored[arena.CostedLink[S, C], C]](),
		parents: arena.New[S](),
	}
	if sp != nil {
		m.Place(arena.CostedLink[S, C]{State: start, Parent: arena.Root})
	}

	return m
}

// Searcher wraps the manager in a search.Searcher.
func (m *Route[S, C]) Searcher(opts ...search.Option) (*search.Searcher[[]S], error) {
	return search.New[S, arena.CostedLink[S, C], arena.Anchor[C], space.Edge[S, C], []S](m, m.space, opts...)
}

// Len returns the number of frontier items.
func (m *Route[S, C]) Len() int { return m.fringe.Len() }

// Arena returns the parent arena of expanded states.
func (m *Route[S, C]) Arena() *arena.Arena[S] { return m.parents }

// LastCost returns the cumulative cost of the most recent route.
func (m *Route[S, C]) LastCost() C { return m.lastCost }

// Pop removes the item with the lowest cost + Score.
func (m *Route[S, C]) Pop() (arena.CostedLink[S, C], bool) {
	top, ok := m.fringe.Pop()
	return top.Item, ok
}

// Result records the route cost and rebuilds the route from the arena.
func (m *Route[S, C]) Result(item arena.CostedLink[S, C]) []S {
	m.lastCost = item.Cost
	return m.parents.Path(item.Link())
}

// Place queues item with priority cost + Score(state).
func (m *Route[S, C]) Place(item arena.CostedLink[S, C]) {
	m.fringe.Push(fringe.Score(item, item.Cost+m.space.Score(item.State)))
}

// Register stores item in the arena and anchors its children to it.
func (m *Route[S, C]) Register(item arena.CostedLink[S, C]) arena.Anchor[C] {
	return arena.Anchor[C]{Index: m.parents.Push(item.Link()), Cost: item.Cost}
}

// Wrap links next to its anchor and extends the cost by the edge cost.
func (m *Route[S, C]) Wrap(a arena.Anchor[C], next space.Edge[S, C]) arena.CostedLink[S, C] {
	return arena.CostedLink[S, C]{State: next.To, Parent: a.Index, Cost: a.Cost + next.Cost}
}

func (m *Route[S, C]) State(item arena.CostedLink[S, C]) S       { return item.State }
func (m *Route[S, C]) Admit(arena.CostedLink[S, C]) bool         { return true }
func (m *Route[S, C]) Successors(s S) iter.Seq[space.Edge[S, C]] { return space.Edges[S, C](m.space, s) }

// HashableRoute yields routes and admits each distinct state once.
type HashableRoute[S comparable, C space.Number] struct {
	space    space.WeightedSpace[S, C]
	fringe   *fringe.PriorityQueue[fringe.Scored[arena.CostedLink[S, C], C]]
	parents  *arena.Arena[S]
	visited  *fringe.Visited[S]
	lastCost C
}

// NewHashableRoute seeds a manager with start at zero cost and marks it visited.
func NewHashableRoute[S comparable, C space.Number](sp space.WeightedSpace[S, C], start S) *HashableRoute[S, C] {
	m := &HashableRoute[S, C]{
		space:   sp,
		fringe:  fringe.NewPriorityQueue[fringe.Scored[arena.CostedLink[S, C], C]](),
		parents: arena.New[S](),
		visited: fringe.NewVisited(start),
	}
	if sp != nil {
		m.Place(arena.CostedLink[S, C]{State: start, Parent: arena.Root})
	}

	return m
}

// Searcher wraps the manager in a search.Searcher.
func (m *HashableRoute[S, C]) Searcher(opts ...search.Option) (*search.Searcher[[]S], error) {
	return search.New[S, arena.CostedLink[S, C], arena.Anchor[C], space.Edge[S, C], []S](m, m.space, opts...)
}

// Len returns the number of frontier items.
func (m *HashableRoute[S, C]) Len() int { return m.fringe.Len() }

// Arena returns the parent arena of expanded states.
func (m *HashableRoute[S, C]) Arena() *arena.Arena[S] { return m.parents }

// Visited returns the set of admitted states.
func (m *HashableRoute[S, C]) Visited() *fringe.Visited[S] { return m.visited }

// LastCost returns the cumulative cost of the most recent route.
func (m *HashableRoute[S, C]) LastCost() C { return m.lastCost }

// Pop removes the item with the lowest cost + Score.
func (m *HashableRoute[S, C]) Pop() (arena.CostedLink[S, C], bool) {
	top, ok := m.fringe.Pop()
	return top.Item, ok
}

// Result records the route cost and rebuilds the route from the arena.
func (m *HashableRoute[S, C]) Result(item arena.CostedLink[S, C]) []S {
	m.lastCost = item.Cost
	return m.parents.Path(item.Link())
}

// Place queues item with priority cost + Score(state).
func (m *HashableRoute[S, C]) Place(item arena.CostedLink[S, C]) {
	m.fringe.Push(fringe.Score(item, item.Cost+m.space.Score(item.State)))
}

// Register stores item in the arena and anchors its children to it.
func (m *HashableRoute[S, C]) Register(item arena.CostedLink[S, C]) arena.Anchor[C] {
	return arena.Anchor[C]{Index: m.parents.Push(item.Link()), Cost: item.Cost}
}

// Wrap links next to its anchor and extends the cost by the edge cost.
func (m *HashableRoute[S, C]) Wrap(a arena.Anchor[C], next space.Edge[S, C]) arena.CostedLink[S, C] {
	return arena.CostedLink[S, C]{State: next.To, Parent: a.Index, Cost: a.Cost + next.Cost}
}

func (m *HashableRoute[S, C]) State(item arena.CostedLink[S, C]) S       { return item.State }
func (m *HashableRoute[S, C]) Admit(item arena.CostedLink[S, C]) bool    { return m.visited.Insert(item.State) }
func (m *HashableRoute[S, C]) Successors(s S) iter.Seq[space.Edge[S, C]] { return space.Edges[S, C](m.space, s) }

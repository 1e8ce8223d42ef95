package astar

import (
	"iter"

	"github.com/katalvlaran/spacesearch/arena"
	"github.com/katalvlaran/spacesearch/fringe"
	"github.com/katalvlaran/spacesearch/search"
	"github.com/katalvlaran/spacesearch/space"
)

// NoRoute yields solution states and keeps no visited set.
type NoRoute[S any, C space.Number] struct {
	space    space.WeightedSpace[S, C]
	fringe   *fringe.PriorityQueue[fringe.Scored[arena.Costed[S, C], C]]
	lastCost C
}

// NewNoRoute seeds a manager with start at zero cost.
func NewNoRoute[S any, C space.Number](sp space.WeightedSpace[S, C], start S) *NoRoute[S, C] {
	m := &NoRoute[S, C]{
		space:  sp,
		fringe: fringe.NewPriorityQueue[fringe.Scored[arena.Costed[S, C], C]](),
	}
	if sp != nil {
		m.Place(arena.Costed[S, C]{State: start})
	}

	return m
}

// Searcher wraps the manager in a search.Searcher.
func (m *NoRoute[S, C]) Searcher(opts ...search.Option) (*search.Searcher[S], error) {
	return search.New[S, arena.Costed[S, C], C, space.Edge[S, C], S](m, m.space, opts...)
}

// Len returns the number of frontier items.
func (m *NoRoute[S, C]) Len() int { return m.fringe.Len() }

// LastCost returns the cumulative cost of the most recent solution.
func (m *NoRoute[S, C]) LastCost() C { return m.lastCost }

// Pop removes the item with the lowest cost + Score.
func (m *NoRoute[S, C]) Pop() (arena.Costed[S, C], bool) {
	top, ok := m.fringe.Pop()
	return top.Item, ok
}

// Result records the solution cost and returns its state.
func (m *NoRoute[S, C]) Result(item arena.Costed[S, C]) S {
	m.lastCost = item.Cost
	return item.State
}

// Place queues item with priority cost + Score(state).
func (m *NoRoute[S, C]) Place(item arena.Costed[S, C]) {
	m.fringe.Push(fringe.Score(item, item.Cost+m.space.Score(item.State)))
}

// Wrap extends the parent's cumulative cost by the edge cost.
func (m *NoRoute[S, C]) Wrap(cost C, next space.Edge[S, C]) arena.Costed[S, C] {
	return arena.Costed[S, C]{State: next.To, Cost: cost + next.Cost}
}

func (m *NoRoute[S, C]) State(item arena.Costed[S, C]) S           { return item.State }
func (m *NoRoute[S, C]) Admit(arena.Costed[S, C]) bool             { return true }
func (m *NoRoute[S, C]) Register(item arena.Costed[S, C]) C        { return item.Cost }
func (m *NoRoute[S, C]) Successors(s S) iter.Seq[space.Edge[S, C]] { return space.Edges[S, C](m.space, s) }

// HashableNoRoute yields solution states and admits each distinct state once.
type HashableNoRoute[S comparable, C space.Number] struct {
	space    space.WeightedSpace[S, C]
	fringe   *fringe.PriorityQueue[fringe.Scored[arena.Costed[S, C], C]]
	visited  *fringe.Visited[S]
	lastCost C
}

// NewHashableNoRoute seeds a manager with start at zero cost and marks it visited.
func NewHashableNoRoute[S comparable, C space.Number](sp space.WeightedSpace[S, C], start S) *HashableNoRoute[S, C] {
	m := &HashableNoRoute[S, C]{
		space:   sp,
		fringe:  fringe.NewPriorityQueue[fringe.Scored[arena.Costed[S, C], C]](),
		visited: fringe.NewVisited(start),
	}
	if sp != nil {
		m.Place(arena.Costed[S, C]{State: start})
	}

	return m
}

// Searcher wraps the manager in a search.Searcher.
func (m *HashableNoRoute[S, C]) Searcher(opts ...search.Option) (*search.Searcher[S], error) {
	return search.New[S, arena.Costed[S, C], C, space.Edge[S, C], S](m, m.space, opts...)
}

// Len returns the number of frontier items.
func (m *HashableNoRoute[S, C]) Len() int { return m.fringe.Len() }

// Visited returns the set of admitted states.
func (m *HashableNoRoute[S, C]) Visited() *fringe.Visited[S] { return m.visited }

// LastCost returns the cumulative cost of the most recent solution.
func (m *HashableNoRoute[S, C]) LastCost() C { return m.lastCost }

// Pop removes the item with the lowest cost + Score.
func (m *HashableNoRoute[S, C]) Pop() (arena.Costed[S, C], bool) {
	top, ok := m.fringe.Pop()
	return top.Item, ok
}

// Result records the solution cost and returns its state.
func (m *HashableNoRoute[S, C]) Result(item arena.Costed[S, C]) S {
	m.lastCost = item.Cost
	return item.State
}

// Place queues item with priority cost + Score(state).
func (m *HashableNoRoute[S, C]) Place(item arena.Costed[S, C]) {
	m.fringe.Push(fringe.Score(item, item.Cost+m.space.Score(item.State)))
}

// Wrap extends the parent's cumulative cost by the edge cost.
func (m *HashableNoRoute[S, C]) Wrap(cost C, next space.Edge[S, C]) arena.Costed[S, C] {
	return arena.Costed[S, C]{State: next.To, Cost: cost + next.Cost}
}

func (m *HashableNoRoute[S, C]) State(item arena.Costed[S, C]) S           { return item.State }
func (m *HashableNoRoute[S, C]) Admit(item arena.Costed[S, C]) bool        { return m.visited.Insert(item.State) }
func (m *HashableNoRoute[S, C]) Register(item arena.Costed[S, C]) C        { return item.Cost }
func (m *HashableNoRoute[S, C]) Successors(s S) iter.Seq[space.Edge[S, C]] { return space.Edges[S, C](m.space, s) }

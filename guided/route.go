package guided

import (
	"cmp"
	"iter"

	"github.com/katalvlaran/spacesearch/arena"
	"github.com/katalvlaran/spacesearch/fringe"
	"github.com/katalvlaran/spacesearch/search"
	"github.com/katalvlaran/spacesearch/space"
)

// Route yields the path to each solution and keeps no visited set.
type Route[S any, C cmp.Ordered] struct {
	space   space.ScoredSpace[S, C]
	fringe  *fringe.PriorityQueue[fringe.Scored[arena.Link[S], C]]
	parents *arena.Arena[S]
}

// NewRoute seeds a manager with start as the root of every route.
func NewRoute[S any, C cmp.Ordered](sp space.ScoredSpace[S, C], start S) *Route[S, C] {
	m := &Route[S, C]{
		space:   sp,
		fringe:  fringe.NewPriorityQueue[fringe.Scored[arena.Link[S], C]](),
		parents: arena.New[S](),
	}
	if sp != nil {
		m.Place(arena.Link[S]{State: start, Parent: arena.Root})
	}

	return m
}

// Searcher wraps the manager in a search.Searcher.
func (m *Route[S, C]) Searcher(opts ...search.Option) (*search.Searcher[[]S], error) {
	return search.New[S, arena.Link[S], int, S, []S](m, m.space, opts...)
}

// Len returns the number of frontier items.
func (m *Route[S, C]) Len() int { return m.fringe.Len() }

// Arena returns the parent arena of expanded states.
func (m *Route[S, C]) Arena() *arena.Arena[S] { return m.parents }

// Pop removes the lowest-scoring item.
func (m *Route[S, C]) Pop() (arena.Link[S], bool) {
	top, ok := m.fringe.Pop()
	return top.Item, ok
}

// Place scores item by its state and queues it.
func (m *Route[S, C]) Place(item arena.Link[S]) {
	m.fringe.Push(fringe.Score(item, m.space.Score(item.State)))
}

func (m *Route[S, C]) State(item arena.Link[S]) S            { return item.State }
func (m *Route[S, C]) Result(item arena.Link[S]) []S         { return m.parents.Path(item) }
func (m *Route[S, C]) Admit(arena.Link[S]) bool              { return true }
func (m *Route[S, C]) Register(item arena.Link[S]) int       { return m.parents.Push(item) }
func (m *Route[S, C]) Wrap(parent int, next S) arena.Link[S] { return arena.Link[S]{State: next, Parent: parent} }
func (m *Route[S, C]) Successors(s S) iter.Seq[S]            { return m.space.Successors(s) }

// HashableRoute yields routes and admits each distinct state once.
type HashableRoute[S comparable, C cmp.Ordered] struct {
	space   space.ScoredSpace[S, C]
	fringe  *fringe.PriorityQueue[fringe.Scored[arena.Link[S], C]]
	parents *arena.Arena[S]
	visited *fringe.Visited[S]
}

// NewHashableRoute seeds a manager with start and marks it visited.
func NewHashableRoute[S comparable, C cmp.Ordered](sp space.ScoredSpace[S, C], start S) *HashableRoute[S, C] {
	m := &HashableRoute[S, C]{
		space:   sp,
		fringe:  fringe.NewPriorityQueue[fringe.Scored[arena.Link[S], C]](),
		parents: arena.New[S](),
		visited: fringe.NewVisited(start),
	}
	if sp != nil {
		m.Place(arena.Link[S]{State: start, Parent: arena.Root})
	}

	return m
}

// Searcher wraps the manager in a search.Searcher.
func (m *HashableRoute[S, C]) Searcher(opts ...search.Option) (*search.Searcher[[]S], error) {
	return search.New[S, arena.Link[S], int, S, []S](m, m.space, opts...)
}

// Len returns the number of frontier items.
func (m *HashableRoute[S, C]) Len() int { return m.fringe.Len() }

// Arena returns the parent arena of expanded states.
func (m *HashableRoute[S, C]) Arena() *arena.Arena[S] { return m.parents }

// Visited returns the set of admitted states.
func (m *HashableRoute[S, C]) Visited() *fringe.Visited[S] { return m.visited }

// Pop removes the lowest-scoring item.
func (m *HashableRoute[S, C]) Pop() (arena.Link[S], bool) {
	top, ok := m.fringe.Pop()
	return top.Item, ok
}

// Place scores item by its state and queues it.
func (m *HashableRoute[S, C]) Place(item arena.Link[S]) {
	m.fringe.Push(fringe.Score(item, m.space.Score(item.State)))
}

func (m *HashableRoute[S, C]) State(item arena.Link[S]) S            { return item.State }
func (m *HashableRoute[S, C]) Result(item arena.Link[S]) []S         { return m.parents.Path(item) }
func (m *HashableRoute[S, C]) Admit(item arena.Link[S]) bool         { return m.visited.Insert(item.State) }
func (m *HashableRoute[S, C]) Register(item arena.Link[S]) int       { return m.parents.Push(item) }
func (m *HashableRoute[S, C]) Wrap(parent int, next S) arena.Link[S] { return arena.Link[S]{State: next, Parent: parent} }
func (m *HashableRoute[S, C]) Successors(s S) iter.Seq[S]            { return m.space.Successors(s) }

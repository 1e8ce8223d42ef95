package unguided

import (
	"iter"

	"github.com/katalvlaran/spacesearch/arena"
	"github.com/katalvlaran/spacesearch/fringe"
	"github.com/katalvlaran/spacesearch/search"
	"github.com/katalvlaran/spacesearch/space"
)

// Route yields the path from the start to each solution and keeps no
// visited set.
type Route[S any] struct {
	// DepthFirst pops the newest item instead of the oldest.
	DepthFirst bool

	space   space.Space[S]
	fringe  *fringe.Deque[arena.Link[S]]
	parents *arena.Arena[S]
}

// NewRoute seeds a manager with start as the root of every route.
func NewRoute[S any](sp space.Space[S], start S, opts ...Option) *Route[S] {
	return &Route[S]{
		DepthFirst: apply(opts).depthFirst,
		space:      sp,
		fringe:     fringe.NewDeque(arena.Link[S]{State: start, Parent: arena.Root}),
		parents:    arena.New[S](),
	}
}

// Searcher wraps the manager in a search.Searcher.
func (m *Route[S]) Searcher(opts ...search.Option) (*search.Searcher[[]S], error) {
	return search.New[S, arena.Link[S], int, S, []S](m, m.space, opts...)
}

// Len returns the number of frontier items.
func (m *Route[S]) Len() int { return m.fringe.Len() }

// Arena returns the parent arena of expanded states.
func (m *Route[S]) Arena() *arena.Arena[S] { return m.parents }

func (m *Route[S]) Pop() (arena.Link[S], bool)            { return m.fringe.Pop(m.DepthFirst) }
func (m *Route[S]) State(item arena.Link[S]) S            { return item.State }
func (m *Route[S]) Result(item arena.Link[S]) []S         { return m.parents.Path(item) }
func (m *Route[S]) Admit(arena.Link[S]) bool              { return true }
func (m *Route[S]) Place(item arena.Link[S])              { m.fringe.PushBack(item) }
func (m *Route[S]) Register(item arena.Link[S]) int       { return m.parents.Push(item) }
func (m *Route[S]) Wrap(parent int, next S) arena.Link[S] { return arena.Link[S]{State: next, Parent: parent} }
func (m *Route[S]) Successors(s S) iter.Seq[S]            { return m.space.Successors(s) }

// HashableRoute yields routes and admits each distinct state once, so the
// route recorded for a state is the one through which it was first seen.
type HashableRoute[S comparable] struct {
	// DepthFirst pops the newest item instead of the oldest.
	DepthFirst bool

	space   space.Space[S]
	fringe  *fringe.Deque[arena.Link[S]]
	parents *arena.Arena[S]
	visited *fringe.Visited[S]
}

// NewHashableRoute seeds a manager with start and marks it visited.
func NewHashableRoute[S comparable](sp space.Space[S], start S, opts ...Option) *HashableRoute[S] {
	return &HashableRoute[S]{
		DepthFirst: apply(opts).depthFirst,
		space:      sp,
		fringe:     fringe.NewDeque(arena.Link[S]{State: start, Parent: arena.Root}),
		parents:    arena.New[S](),
		visited:    fringe.NewVisited(start),
	}
}

// Searcher wraps the manager in a search.Searcher.
func (m *HashableRoute[S]) Searcher(opts ...search.Option) (*search.Searcher[[]S], error) {
	return search.New[S, arena.Link[S], int, S, []S](m, m.space, opts...)
}

// Len returns the number of frontier items.
func (m *HashableRoute[S]) Len() int { return m.fringe.Len() }

// Arena returns the parent arena of expanded states.
func (m *HashableRoute[S]) Arena() *arena.Arena[S] { return m.parents }

// Visited returns the set of admitted states.
func (m *HashableRoute[S]) Visited() *fringe.Visited[S] { return m.visited }

func (m *HashableRoute[S]) Pop() (arena.Link[S], bool)            { return m.fringe.Pop(m.DepthFirst) }
func (m *HashableRoute[S]) State(item arena.Link[S]) S            { return item.State }
func (m *HashableRoute[S]) Result(item arena.Link[S]) []S         { return m.parents.Path(item) }
func (m *HashableRoute[S]) Admit(item arena.Link[S]) bool         { return m.visited.Insert(item.State) }
func (m *HashableRoute[S]) Place(item arena.Link[S])              { m.fringe.PushBack(item) }
func (m *HashableRoute[S]) Register(item arena.Link[S]) int       { return m.parents.Push(item) }
func (m *HashableRoute[S]) Wrap(parent int, next S) arena.Link[S] { return arena.Link[S]{State: next, Parent: parent} }
func (m *HashableRoute[S]) Successors(s S) iter.Seq[S]            { return m.space.Successors(s) }

package guided

import (
	"cmp"
	"iter"

	"github.com/katalvlaran/spacesearch/fringe"
	"github.com/katalvlaran/spacesearch/search"
	"github.com/katalvlaran/spacesearch/space"
)

// NoRoute yields solution states and keeps no visited set.
type NoRoute[S any, C cmp.Ordered] struct {
	space  space.ScoredSpace[S, C]
	fringe *fringe.PriorityQueue[fringe.Scored[S, C]]
}

// NewNoRoute seeds a manager with start.
func NewNoRoute[S any, C cmp.Ordered](sp space.ScoredSpace[S, C], start S) *NoRoute[S, C] {
	m := &NoRoute[S, C]{space: sp, fringe: fringe.NewPriorityQueue[fringe.Scored[S, C]]()}
	if sp != nil {
		m.Place(start)
	}

	return m
}

// Searcher wraps the manager in a search.Searcher.
func (m *NoRoute[S, C]) Searcher(opts ...search.Option) (*search.Searcher[S], error) {
	return search.New[S, S, struct{}, S, S](m, m.space, opts...)
}

// Len returns the number of frontier items.
func (m *NoRoute[S, C]) Len() int { return m.fringe.Len() }

// Pop removes the lowest-scoring state.
func (m *NoRoute[S, C]) Pop() (S, bool) {
	top, ok := m.fringe.Pop()
	return top.Item, ok
}

// Place scores item and queues it.
func (m *NoRoute[S, C]) Place(item S) {
	m.fringe.Push(fringe.Score(item, m.space.Score(item)))
}

func (m *NoRoute[S, C]) State(item S) S             { return item }
func (m *NoRoute[S, C]) Result(item S) S            { return item }
func (m *NoRoute[S, C]) Admit(S) bool               { return true }
func (m *NoRoute[S, C]) Register(S) struct{}        { return struct{}{} }
func (m *NoRoute[S, C]) Wrap(_ struct{}, next S) S  { return next }
func (m *NoRoute[S, C]) Successors(s S) iter.Seq[S] { return m.space.Successors(s) }

// HashableNoRoute yields solution states and admits each distinct state once.
type HashableNoRoute[S comparable, C cmp.Ordered] struct {
	space   space.ScoredSpace[S, C]
	fringe  *fringe.PriorityQueue[fringe.Scored[S, C]]
	visited *fringe.Visited[S]
}

// NewHashableNoRoute seeds a manager with start and marks it visited.
func NewHashableNoRoute[S comparable, C cmp.Ordered](sp space.ScoredSpace[S, C], start S) *HashableNoRoute[S, C] {
	m := &HashableNoRoute[S, C]{
		space:   sp,
		fringe:  fringe.NewPriorityQueue[fringe.Scored[S, C]](),
		visited: fringe.NewVisited(start),
	}
	if sp != nil {
		m.Place(start)
	}

	return m
}

// Searcher wraps the manager in a search.Searcher.
func (m *HashableNoRoute[S, C]) Searcher(opts ...search.Option) (*search.Searcher[S], error) {
	return search.New[S, S, struct{}, S, S](m, m.space, opts...)
}

// Len returns the number of frontier items.
func (m *HashableNoRoute[S, C]) Len() int { return m.fringe.Len() }

// Visited returns the set of admitted states.
func (m *HashableNoRoute[S, C]) Visited() *fringe.Visited[S] { return m.visited }

// Pop removes the lowest-scoring state.
func (m *HashableNoRoute[S, C]) Pop() (S, bool) {
	top, ok := m.fringe.Pop()
	return top.Item, ok
}

// Place scores item and queues it.
func (m *HashableNoRoute[S, C]) Place(item S) {
	m.fringe.Push(fringe.Score(item, m.space.Score(item)))
}

func (m *HashableNoRoute[S, C]) State(item S) S             { return item }
func (m *HashableNoRoute[S, C]) Result(item S) S            { return item }
func (m *HashableNoRoute[S, C]) Admit(item S) bool          { return m.visited.Insert(item) }
func (m *HashableNoRoute[S, C]) Register(S) struct{}        { return struct{}{} }
func (m *HashableNoRoute[S, C]) Wrap(_ struct{}, next S) S  { return next }
func (m *HashableNoRoute[S, C]) Successors(s S) iter.Seq[S] { return m.space.Successors(s) }

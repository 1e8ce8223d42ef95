package unguided

import (
	"iter"

	"github.com/katalvlaran/spacesearch/fringe"
	"github.com/katalvlaran/spacesearch/search"
	"github.com/katalvlaran/spacesearch/space"
)

// NoRoute yields solution states and keeps no visited set.
type NoRoute[S any] struct {
	// DepthFirst pops the newest item instead of the oldest.
	DepthFirst bool

	space  space.Space[S]
	fringe *fringe.Deque[S]
}

// NewNoRoute seeds a manager with start.
func NewNoRoute[S any](sp space.Space[S], start S, opts ...Option) *NoRoute[S] {
	return &NoRoute[S]{
		DepthFirst: apply(opts).depthFirst,
		space:      sp,
		fringe:     fringe.NewDeque(start),
	}
}

// Searcher wraps the manager in a search.Searcher.
func (m *NoRoute[S]) Searcher(opts ...search.Option) (*search.Searcher[S], error) {
	return search.New[S, S, struct{}, S, S](m, m.space, opts...)
}

// Len returns the number of frontier items.
func (m *NoRoute[S]) Len() int { return m.fringe.Len() }

func (m *NoRoute[S]) Pop() (S, bool)             { return m.fringe.Pop(m.DepthFirst) }
func (m *NoRoute[S]) State(item S) S             { return item }
func (m *NoRoute[S]) Result(item S) S            { return item }
func (m *NoRoute[S]) Admit(S) bool               { return true }
func (m *NoRoute[S]) Place(item S)               { m.fringe.PushBack(item) }
func (m *NoRoute[S]) Register(S) struct{}        { return struct{}{} }
func (m *NoRoute[S]) Wrap(_ struct{}, next S) S  { return next }
func (m *NoRoute[S]) Successors(s S) iter.Seq[S] { return m.space.Successors(s) }

// HashableNoRoute yields solution states and admits each distinct state once.
type HashableNoRoute[S comparable] struct {
	// DepthFirst pops the newest item instead of the oldest.
	DepthFirst bool

	space   space.Space[S]
	fringe  *fringe.Deque[S]
	visited *fringe.Visited[S]
}

// NewHashableNoRoute seeds a manager with start and marks it visited.
func NewHashableNoRoute[S comparable](sp space.Space[S], start S, opts ...Option) *HashableNoRoute[S] {
	return &HashableNoRoute[S]{
		DepthFirst: apply(opts).depthFirst,
		space:      sp,
		fringe:     fringe.NewDeque(start),
		visited:    fringe.NewVisited(start),
	}
}

// Searcher wraps the manager in a search.Searcher.
func (m *HashableNoRoute[S]) Searcher(opts ...search.Option) (*search.Searcher[S], error) {
	return search.New[S, S, struct{}, S, S](m, m.space, opts...)
}

// Len returns the number of frontier items.
func (m *HashableNoRoute[S]) Len() int { return m.fringe.Len() }

// Visited returns the set of admitted states.
func (m *HashableNoRoute[S]) Visited() *fringe.Visited[S] { return m.visited }

func (m *HashableNoRoute[S]) Pop() (S, bool)             { return m.fringe.Pop(m.DepthFirst) }
func (m *HashableNoRoute[S]) State(item S) S             { return item }
func (m *HashableNoRoute[S]) Result(item S) S            { return item }
func (m *HashableNoRoute[S]) Admit(item S) bool          { return m.visited.Insert(item) }
func (m *HashableNoRoute[S]) Place(item S)               { m.fringe.PushBack(item) }
func (m *HashableNoRoute[S]) Register(S) struct{}        { return struct{}{} }
func (m *HashableNoRoute[S]) Wrap(_ struct{}, next S) S  { return next }
func (m *HashableNoRoute[S]) Successors(s S) iter.Seq[S] { return m.space.Successors(s) }

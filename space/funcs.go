package space

import (
	"cmp"
	"iter"
	"slices"
)

// Funcs adapts plain closures to Space.
// A nil Next yields no successors; a nil Solved never reports a solution.
type Funcs[S any] struct {
	Next   func(S) iter.Seq[S]
	Solved func(S) bool
}

// Successors implements Space.
func (f Funcs[S]) Successors(s S) iter.Seq[S] {
	if f.Next == nil {
		return func(func(S) bool) {}
	}
	return f.Next(s)
}

// IsSolution implements Goal.
func (f Funcs[S]) IsSolution(s S) bool {
	return f.Solved != nil && f.Solved(s)
}

// ScoredFuncs adapts closures to ScoredSpace.
// A nil Rank scores every state with the zero value.
type ScoredFuncs[S any, C cmp.Ordered] struct {
	Funcs[S]
	Rank func(S) C
}

// Score implements Scorer.
func (f ScoredFuncs[S, C]) Score(s S) C {
	if f.Rank == nil {
		var zero C
		return zero
	}
	return f.Rank(s)
}

// WeightedFuncs adapts closures to WeightedSpace.
type WeightedFuncs[S any, C Number] struct {
	Next   func(S) iter.Seq2[S, C]
	Solved func(S) bool
	Rank   func(S) C
}

// WeightedSuccessors implements WeightedSpace.
func (f WeightedFuncs[S, C]) WeightedSuccessors(s S) iter.Seq2[S, C] {
	if f.Next == nil {
		return func(func(S, C) bool) {}
	}
	return f.Next(s)
}

// IsSolution implements Goal.
func (f WeightedFuncs[S, C]) IsSolution(s S) bool {
	return f.Solved != nil && f.Solved(s)
}

// Score implements Scorer.
func (f WeightedFuncs[S, C]) Score(s S) C {
	if f.Rank == nil {
		var zero C
		return zero
	}
	return f.Rank(s)
}

// Unit lifts a Space into a WeightedSpace where every edge costs one and the
// heuristic is h. Passing a nil h turns A* into uniform-cost search.
func Unit[S any, C Number](sp Space[S], h func(S) C) WeightedFuncs[S, C] {
	return WeightedFuncs[S, C]{
		Next: func(s S) iter.Seq2[S, C] {
			return func(yield func(S, C) bool) {
				for next := range sp.Successors(s) {
					if !yield(next, 1) {
						return
					}
				}
			}
		},
		Solved: sp.IsSolution,
		Rank:   h,
	}
}

// Values is a convenience for building a finite successor sequence.
func Values[S any](states ...S) iter.Seq[S] {
	return slices.Values(states)
}

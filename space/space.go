package space

import (
	"cmp"
	"iter"
)

// Number is the capability cost and score types must have for A*:
// the zero value is the additive identity and + is addition.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Goal identifies solution states.
type Goal[S any] interface {
	// IsSolution reports whether s is a solution state.
	IsSolution(s S) bool
}

// Space is the minimal contract for breadth-first and depth-first search.
type Space[S any] interface {
	Goal[S]

	// Successors yields every state reachable from s in one step.
	Successors(s S) iter.Seq[S]
}

// Scorer estimates how far a state is from a solution.
type Scorer[S any, C cmp.Ordered] interface {
	// Score must decrease with proximity to a solution.
	Score(s S) C
}

// ScoredSpace is a Space whose states can be ranked by a heuristic.
type ScoredSpace[S any, C cmp.Ordered] interface {
	Space[S]
	Scorer[S, C]
}

// Edge is a successor state together with the cost of reaching it.
type Edge[S any, C Number] struct {
	To   S
	Cost C
}

// WeightedSpace is the contract for A*: successors carry edge costs and
// Score is the estimated remaining cost to a solution.
type WeightedSpace[S any, C Number] interface {
	Goal[S]
	Scorer[S, C]

	// WeightedSuccessors yields each successor of s with its edge cost.
	WeightedSuccessors(s S) iter.Seq2[S, C]
}

// Edges adapts WeightedSuccessors into a sequence of Edge values.
func Edges[S any, C Number](ws WeightedSpace[S, C], s S) iter.Seq[Edge[S, C]] {
	return func(yield func(Edge[S, C]) bool) {
		for to, cost := range ws.WeightedSuccessors(s) {
			if !yield(Edge[S, C]{To: to, Cost: cost}) {
				return
			}
		}
	}
}

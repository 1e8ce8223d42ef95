package fringe

import "cmp"

// Comparer is implemented by values that define a total order against
// values of the same type. Compare returns a negative number when the
// receiver orders before other, zero when equal, positive when after.
type Comparer[T any] interface {
	Compare(other T) int
}

// Scored wraps an item with its precomputed score.
//
// Equality and order are defined purely by Score, and the order is the
// reverse of the score's natural order: a Scored with a smaller Score
// compares as greater. A max-first PriorityQueue of Scored values therefore
// behaves as a min-priority queue on Score.
//
// Float NaN scores follow cmp.Compare (NaN below every number), so after the
// inversion they are popped first. Do not produce NaN scores.
type Scored[T any, C cmp.Ordered] struct {
	Item  T
	Score C
}

// Score pairs item with score.
func Score[T any, C cmp.Ordered](item T, score C) Scored[T, C] {
	return Scored[T, C]{Item: item, Score: score}
}

// Compare implements Comparer with the inverted score order.
func (s Scored[T, C]) Compare(other Scored[T, C]) int {
	return cmp.Compare(other.Score, s.Score)
}

// Equal reports whether both entries carry the same score.
func (s Scored[T, C]) Equal(other Scored[T, C]) bool {
	return s.Compare(other) == 0
}

// Less reports whether s orders before other under the inverted order,
// i.e. whether s carries a strictly higher score.
func (s Scored[T, C]) Less(other Scored[T, C]) bool {
	return s.Compare(other) < 0
}

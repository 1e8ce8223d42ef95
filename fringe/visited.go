package fringe

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Visited is a first-seen-wins set. It records the order in which keys were
// first inserted so callers can inspect discovery order after a search.
type Visited[K comparable] struct {
	seen *orderedmap.OrderedMap[K, int]
}

// NewVisited returns a set already containing keys, in order.
func NewVisited[K comparable](keys ...K) *Visited[K] {
	v := &Visited[K]{seen: orderedmap.New[K, int]()}
	for _, k := range keys {
		v.Insert(k)
	}

	return v
}

// Insert adds k and reports true, or reports false if k was already present.
// A repeated insert never overwrites the first admission.
func (v *Visited[K]) Insert(k K) bool {
	if _, ok := v.seen.Get(k); ok {
		return false
	}
	v.seen.Set(k, v.seen.Len())

	return true
}

// Contains reports whether k has been inserted.
func (v *Visited[K]) Contains(k K) bool {
	_, ok := v.seen.Get(k)
	return ok
}

// Rank returns the zero-based admission position of k.
func (v *Visited[K]) Rank(k K) (int, bool) {
	return v.seen.Get(k)
}

// Len returns the number of distinct keys.
func (v *Visited[K]) Len() int { return v.seen.Len() }

// All yields keys in admission order.
func (v *Visited[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := v.seen.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Package arena holds the context carriers that travel with frontier items
// and the append-only parent arena used to rebuild solution routes.
//
// Children never point at their parents. They carry an integer index into an
// Arena, which only grows, so an index recorded once stays valid for the
// lifetime of the search. Route reconstruction walks those indices back to
// the root in O(path length).
package arena

import "fmt"

// Root is the parent index of the initial state.
const Root = -1

// Link is a state plus the arena index of its parent (Root for the start).
type Link[S any] struct {
	State  S
	Parent int
}

// Costed is a state plus the total edge cost accrued from the start.
type Costed[S, C any] struct {
	State S
	Cost  C
}

// CostedLink carries both a parent index and a cumulative cost.
type CostedLink[S, C any] struct {
	State  S
	Parent int
	Cost   C
}

// Link drops the cost, keeping what the arena stores.
func (c CostedLink[S, C]) Link() Link[S] {
	return Link[S]{State: c.State, Parent: c.Parent}
}

// Anchor is the expansion context handed to children of a registered state:
// where the parent sits in the arena and what it cost to reach it.
type Anchor[C any] struct {
	Index int
	Cost  C
}

// Arena is an append-only store of expanded states, indexed by position.
type Arena[S any] struct {
	links []Link[S]
}

// New returns an empty arena.
func New[S any]() *Arena[S] {
	return &Arena[S]{}
}

// Push appends l and returns its index.
func (a *Arena[S]) Push(l Link[S]) int {
	a.links = append(a.links, l)
	return len(a.links) - 1
}

// Len returns the number of registered entries.
func (a *Arena[S]) Len() int { return len(a.links) }

// Get returns the entry at index i.
// An out-of-range index means a parent was referenced before it was pushed,
// which is a bug in the caller; Get panics rather than returning an error.
func (a *Arena[S]) Get(i int) Link[S] {
	if i < 0 || i >= len(a.links) {
		panic(fmt.Sprintf("arena: parent index %d out of range [0,%d)", i, len(a.links)))
	}

	return a.links[i]
}

// Path rebuilds the route from the root to terminal, inclusive on both ends.
// It does not modify the arena, so calling it twice yields equal slices.
func (a *Arena[S]) Path(terminal Link[S]) []S {
	depth := 1
	for p := terminal.Parent; p != Root; p = a.Get(p).Parent {
		depth++
	}

	path := make([]S, depth)
	cur := terminal
	for i := depth - 1; i >= 0; i-- {
		path[i] = cur.State
		if cur.Parent == Root {
			break
		}
		cur = a.Get(cur.Parent)
	}

	return path
}

package gridspace

import "iter"

// Plane is the unbounded integer lattice with a single goal point.
// Every move costs 1.
type Plane struct {
	Goal Point
	Conn Connectivity
}

// NewPlane returns a plane searching for goal under conn.
func NewPlane(goal Point, conn Connectivity) Plane {
	return Plane{Goal: goal, Conn: conn}
}

// IsSolution reports whether p is the goal.
func (pl Plane) IsSolution(p Point) bool { return p == pl.Goal }

// Score is the move distance from p to the goal.
func (pl Plane) Score(p Point) int { return pl.Conn.Distance(p, pl.Goal) }

// Successors yields the neighbors of p.
func (pl Plane) Successors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range pl.Conn.Offsets() {
			if !yield(p.Add(d)) {
				return
			}
		}
	}
}

// WeightedSuccessors yields the neighbors of p, each at cost 1.
func (pl Plane) WeightedSuccessors(p Point) iter.Seq2[Point, int] {
	return func(yield func(Point, int) bool) {
		for _, d := range pl.Conn.Offsets() {
			if !yield(p.Add(d), 1) {
				return
			}
		}
	}
}

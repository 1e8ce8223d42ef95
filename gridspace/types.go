package gridspace

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and maze parsing.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridspace: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridspace: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridspace: point out of bounds")
	// ErrBlocked indicates a point on a wall cell.
	ErrBlocked = errors.New("gridspace: point is blocked")
	// ErrNoStart indicates a maze without an 'S' cell.
	ErrNoStart = errors.New("gridspace: maze has no start cell")
	// ErrNoGoal indicates a maze without a 'G' cell.
	ErrNoGoal = errors.New("gridspace: maze has no goal cell")
	// ErrBadCell indicates an unknown or duplicated maze character.
	ErrBadCell = errors.New("gridspace: invalid maze cell")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("connectivity(%d)", int(c))
	}
}

var (
	offsets4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor deltas for c in clockwise order from north.
// The returned slice is shared and must not be modified.
func (c Connectivity) Offsets() []Point {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}

// Distance is the minimum number of moves between a and b under c:
// Manhattan for Conn4, Chebyshev for Conn8.
func (c Connectivity) Distance(a, b Point) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if c == Conn8 {
		return max(dx, dy)
	}

	return dx + dy
}

// Point is a lattice coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{p.X + d.X, p.Y + d.Y} }

// String formats p as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

package gridspace

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Wall is the cell value of an impassable cell.
const Wall = 0

// Grid is a rectangular weighted grid with a single goal cell.
// Cells[y][x] is the cost to enter (x, y); Wall cells cannot be entered.
// A Grid is immutable once built.
type Grid struct {
	Width, Height int
	Cells         [][]int
	Conn          Connectivity
	Goal          Point

	cheapest int
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input. Negative values are treated as walls.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrOutOfBounds / ErrBlocked
// for an unusable goal.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int, goal Point, conn Connectivity) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	cheapest := 0
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = make([]int, w)
		for x, v := range row {
			if v < 0 {
				v = Wall
			}
			cells[y][x] = v
			if v != Wall && (cheapest == 0 || v < cheapest) {
				cheapest = v
			}
		}
	}
	g := &Grid{Width: w, Height: h, Cells: cells, Conn: conn, Goal: goal, cheapest: cheapest}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}
	if !g.Passable(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrBlocked, goal)
	}

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Passable reports whether p is inside the grid and not a wall.
func (g *Grid) Passable(p Point) bool {
	return g.InBounds(p) && g.Cells[p.Y][p.X] != Wall
}

// Cost returns the cost to enter p, or false if p cannot be entered.
func (g *Grid) Cost(p Point) (int, bool) {
	if !g.Passable(p) {
		return 0, false
	}

	return g.Cells[p.Y][p.X], true
}

// IsSolution reports whether p is the goal.
func (g *Grid) IsSolution(p Point) bool { return p == g.Goal }

// Score is the move distance to the goal times the cheapest cell cost.
func (g *Grid) Score(p Point) int { return g.Conn.Distance(p, g.Goal) * g.cheapest }

// Successors yields the passable neighbors of p.
func (g *Grid) Successors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for next := range g.WeightedSuccessors(p) {
			if !yield(next) {
				return
			}
		}
	}
}

// WeightedSuccessors yields the passable neighbors of p with their entry cost.
func (g *Grid) WeightedSuccessors(p Point) iter.Seq2[Point, int] {
	return func(yield func(Point, int) bool) {
		for _, d := range g.Conn.Offsets() {
			next := p.Add(d)
			cost, ok := g.Cost(next)
			if !ok {
				continue
			}
			if !yield(next, cost) {
				return
			}
		}
	}
}

// PathCost sums the entry costs along path, skipping its first point.
// It returns false if a step is not a legal move.
func (g *Grid) PathCost(path []Point) (int, bool) {
	total := 0
	for i := 1; i < len(path); i++ {
		if g.Conn.Distance(path[i-1], path[i]) != 1 {
			return 0, false
		}
		cost, ok := g.Cost(path[i])
		if !ok {
			return 0, false
		}
		total += cost
	}

	return total, true
}

// Render draws the grid as maze text with path marked by '*'.
// Walls print as '#', unit cells as '.', other costs as their digit
// ('+' above 9), the goal as 'G' and the first path point as 'S'.
func (g *Grid) Render(path []Point) []string {
	onPath := make(map[Point]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	rows := make([]string, g.Height)
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			p := Point{x, y}
			_, marked := onPath[p]
			v := g.Cells[y][x]
			switch {
			case p == g.Goal:
				sb.WriteByte('G')
			case len(path) > 0 && p == path[0]:
				sb.WriteByte('S')
			case marked:
				sb.WriteByte('*')
			case v == Wall:
				sb.WriteByte('#')
			case v == 1:
				sb.WriteByte('.')
			case v <= 9:
				sb.WriteString(strconv.Itoa(v))
			default:
				sb.WriteByte('+')
			}
		}
		rows[y] = sb.String()
	}

	return rows
}

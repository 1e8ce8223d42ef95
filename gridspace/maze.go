package gridspace

import "fmt"

// ParseMaze reads rows of maze text into a Grid and its start point.
//
//	'#'       wall
//	'.'       cost 1
//	'1'..'9'  that cost
//	'S'       start, cost 1
//	'G'       goal, cost 1
//
// Exactly one 'S' and one 'G' are required.
func ParseMaze(rows []string, conn Connectivity) (*Grid, Point, error) {
	values := make([][]int, len(rows))
	var start, goal Point
	var hasStart, hasGoal bool
	for y, row := range rows {
		values[y] = make([]int, len(row))
		for x, ch := range []byte(row) {
			p := Point{x, y}
			switch {
			case ch == '#':
				values[y][x] = Wall
			case ch == '.':
				values[y][x] = 1
			case ch >= '1' && ch <= '9':
				values[y][x] = int(ch - '0')
			case ch == 'S':
				if hasStart {
					return nil, Point{}, fmt.Errorf("%w: second 'S' at %v", ErrBadCell, p)
				}
				start, hasStart = p, true
				values[y][x] = 1
			case ch == 'G':
				if hasGoal {
					return nil, Point{}, fmt.Errorf("%w: second 'G' at %v", ErrBadCell, p)
				}
				goal, hasGoal = p, true
				values[y][x] = 1
			default:
				return nil, Point{}, fmt.Errorf("%w: %q at %v", ErrBadCell, ch, p)
			}
		}
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, Point{}, ErrEmptyGrid
	}
	if !hasStart {
		return nil, Point{}, ErrNoStart
	}
	if !hasGoal {
		return nil, Point{}, ErrNoGoal
	}

	g, err := NewGrid(values, goal, conn)
	if err != nil {
		return nil, Point{}, err
	}

	return g, start, nil
}

// Package gridspace provides ready-made 2D search spaces for the strategy
// packages: an unbounded lattice (Plane) and a rectangular weighted grid
// (Grid), plus a text maze parser.
//
// What:
//
//   - Point is an integer (X, Y) coordinate. Y grows downward.
//   - Conn4 moves N, E, S, W; Conn8 adds the four diagonals.
//   - Plane has unit step costs and scores by Manhattan (Conn4) or
//     Chebyshev (Conn8) distance to its goal.
//   - Grid holds per-cell entry costs: 0 is a wall, n > 0 costs n to enter.
//     Its score is distance × cheapest cell, which never overestimates.
//   - ParseMaze reads '#', '.', '1'..'9', 'S' and 'G' rows into a Grid.
//
// Every type implements space.Space, space.ScoredSpace[Point, int] and
// space.WeightedSpace[Point, int], so one value drives unguided, guided and
// astar managers alike.
//
// Complexity:
//
//   - Successors: O(d) per call, d = 4 or 8.
//   - NewGrid, ParseMaze: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: the goal lies outside the grid.
//   - ErrBlocked: the goal is a wall.
//   - ErrNoStart, ErrNoGoal, ErrBadCell: maze text is malformed.
package gridspace

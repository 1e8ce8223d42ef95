package solve_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacesearch/gridspace"
	"github.com/katalvlaran/spacesearch/internal/config"
	"github.com/katalvlaran/spacesearch/internal/logging"
	"github.com/katalvlaran/spacesearch/internal/solve"
	"github.com/katalvlaran/spacesearch/search"
)

func request(t *testing.T, rows []string) solve.Request {
	t.Helper()
	g, start, err := gridspace.ParseMaze(rows, gridspace.Conn4)
	require.NoError(t, err)

	return solve.Request{
		Grid:      g,
		Start:     start,
		Solutions: 1,
		Options:   []search.Option{search.WithMaxExpansions(100)},
	}
}

func TestRun_EveryManager(t *testing.T) {
	for _, strategy := range []string{config.BFS, config.DFS, config.Guided, config.AStar} {
		for _, route := range []bool{false, true} {
			for _, hashable := range []bool{false, true} {
				label := solve.Label(strategy, route, hashable)
				t.Run(label, func(t *testing.T) {
					req := request(t, []string{"G..S"})
					req.Strategy, req.Route, req.Hashable = strategy, route, hashable

					rep, err := solve.Run(req)
					require.NoError(t, err)
					assert.Equal(t, label, rep.Label)
					require.Len(t, rep.Solutions, 1)

					sol := rep.Solutions[0]
					assert.Equal(t, gridspace.Point{}, sol.Path[len(sol.Path)-1])
					if route {
						assert.Len(t, sol.Path, 4)
					} else {
						assert.Len(t, sol.Path, 1)
					}
					if route || strategy == config.AStar {
						assert.True(t, sol.HasCost)
						assert.Equal(t, 3, sol.Cost)
					} else {
						assert.False(t, sol.HasCost)
					}
				})
			}
		}
	}
}

func TestRun_BudgetStop(t *testing.T) {
	// depth-first without dedup bounces between the first two cells
	req := request(t, []string{"S..G"})
	req.Strategy = config.DFS

	rep, err := solve.Run(req)
	require.NoError(t, err)
	assert.Empty(t, rep.Solutions)
	assert.Equal(t, search.Stopped, rep.Status)
	assert.ErrorIs(t, rep.Err, search.ErrBudgetExceeded)
	assert.Equal(t, 100, rep.Stats.Expanded)
}

func TestRun_Exhausted(t *testing.T) {
	req := request(t, []string{"S.#G"})
	req.Strategy, req.Hashable, req.Solutions = config.AStar, true, 3

	rep, err := solve.Run(req)
	require.NoError(t, err)
	assert.Empty(t, rep.Solutions)
	assert.Equal(t, search.Exhausted, rep.Status)
	assert.NoError(t, rep.Err)
}

func TestRun_SolutionLimit(t *testing.T) {
	req := request(t, []string{
		"S.",
		".G",
	})
	req.Strategy, req.Route, req.Solutions = config.BFS, true, 2

	rep, err := solve.Run(req)
	require.NoError(t, err)
	require.Len(t, rep.Solutions, 2, "two shortest routes around the square")
	assert.Equal(t, search.Solved, rep.Status)
	assert.NotEqual(t, rep.Solutions[0].Path, rep.Solutions[1].Path)
}

func TestRun_Errors(t *testing.T) {
	_, err := solve.Run(solve.Request{Strategy: config.BFS})
	require.ErrorIs(t, err, solve.ErrNoGrid)

	req := request(t, []string{"SG"})
	req.Strategy = "ida"
	_, err = solve.Run(req)
	require.ErrorIs(t, err, solve.ErrStrategy)

	req.Strategy = config.BFS
	req.Options = []search.Option{search.WithMaxExpansions(-1)}
	_, err = solve.Run(req)
	require.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	req := request(t, []string{"SG"})
	req.Strategy, req.Hashable = config.Guided, true
	req.Logger = logging.NewWriter(&buf, 0)

	_, err := solve.Run(req)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "manager=guided/no-route/hashable")
	assert.Contains(t, buf.String(), "status=solved")
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Maze = []string{"S.", ".G"}
	cfg.Connectivity = 8
	cfg.MaxExpansions = 50

	req, err := solve.FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, gridspace.Conn8, req.Grid.Conn)
	assert.Equal(t, gridspace.Point{}, req.Start)
	assert.Len(t, req.Options, 1)

	rep, err := solve.Run(req)
	require.NoError(t, err)
	require.Len(t, rep.Solutions, 1)
	assert.Len(t, rep.Solutions[0].Path, 2, "diagonal step")

	cfg.Maze = []string{"..G"}
	_, err = solve.FromConfig(cfg)
	require.ErrorIs(t, err, gridspace.ErrNoStart)
}

// Package solve runs one configured search over a gridspace maze.
package solve

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/spacesearch/astar"
	"github.com/katalvlaran/spacesearch/gridspace"
	"github.com/katalvlaran/spacesearch/guided"
	"github.com/katalvlaran/spacesearch/internal/config"
	"github.com/katalvlaran/spacesearch/internal/logging"
	"github.com/katalvlaran/spacesearch/search"
	"github.com/katalvlaran/spacesearch/unguided"
)

// P is the state type of every maze search.
type P = gridspace.Point

var (
	// ErrNoGrid is returned when Request.Grid is nil.
	ErrNoGrid = errors.New("solve: grid is nil")

	// ErrStrategy is returned for an unknown strategy name.
	ErrStrategy = errors.New("solve: unknown strategy")
)

// Request selects the manager and its inputs.
type Request struct {
	Grid      *gridspace.Grid
	Start     P
	Strategy  string
	Route     bool
	Hashable  bool
	Solutions int
	Options   []search.Option
	Logger    *slog.Logger
}

// Solution is one result. Path holds the route, or only the end point
// for no-route managers. Cost is meaningful when HasCost is set.
type Solution struct {
	Path    []P
	Cost    int
	HasCost bool
}

// Report is the outcome of Run.
type Report struct {
	Label     string
	Solutions []Solution
	Stats     search.Stats
	Status    search.Status
	Err       error
}

// Label names the manager a request selects, e.g. "astar/route/hashable".
func Label(strategy string, route, hashable bool) string {
	shape, dedup := "no-route", "plain"
	if route {
		shape = "route"
	}
	if hashable {
		dedup = "hashable"
	}

	return strategy + "/" + shape + "/" + dedup
}

// FromConfig builds a request from a validated config.
func FromConfig(cfg config.Config) (Request, error) {
	conn := gridspace.Conn4
	if cfg.Connectivity == 8 {
		conn = gridspace.Conn8
	}
	g, start, err := gridspace.ParseMaze(cfg.Maze, conn)
	if err != nil {
		return Request{}, fmt.Errorf("solve: maze: %w", err)
	}

	req := Request{
		Grid:      g,
		Start:     start,
		Strategy:  cfg.Strategy,
		Route:     cfg.Route,
		Hashable:  cfg.Hashable,
		Solutions: cfg.Solutions,
	}
	if cfg.MaxExpansions > 0 {
		req.Options = append(req.Options, search.WithMaxExpansions(cfg.MaxExpansions))
	}

	return req, nil
}

// Run builds the selected manager and pulls up to req.Solutions results.
// Exhaustion and budget stops are reported in the Report, not as errors.
func Run(req Request) (*Report, error) {
	if req.Grid == nil {
		return nil, ErrNoGrid
	}
	log := req.Logger
	if log == nil {
		log = logging.NewNop()
	}

	var (
		rep *Report
		err error
	)
	switch req.Strategy {
	case config.BFS, config.DFS:
		rep, err = runUnguided(req)
	case config.Guided:
		rep, err = runGuided(req)
	case config.AStar:
		rep, err = runAStar(req)
	default:
		return nil, fmt.Errorf("%w: %q", ErrStrategy, req.Strategy)
	}
	if err != nil {
		return nil, err
	}

	rep.Label = Label(req.Strategy, req.Route, req.Hashable)
	log.Info("solve: done",
		slog.String("manager", rep.Label),
		slog.String("status", rep.Status.String()),
		slog.Int("solutions", len(rep.Solutions)),
		slog.Int("expanded", rep.Stats.Expanded),
		slog.Any("err", rep.Err),
	)

	return rep, nil
}

func runUnguided(req Request) (*Report, error) {
	var opts []unguided.Option
	if req.Strategy == config.DFS {
		opts = append(opts, unguided.WithDepthFirst())
	}
	g, start, k := req.Grid, req.Start, req.Solutions

	switch {
	case req.Route && req.Hashable:
		s, err := unguided.NewHashableRoute[P](g, start, opts...).Searcher(req.Options...)
		return pull(s, err, k, route(g))
	case req.Route:
		s, err := unguided.NewRoute[P](g, start, opts...).Searcher(req.Options...)
		return pull(s, err, k, route(g))
	case req.Hashable:
		s, err := unguided.NewHashableNoRoute[P](g, start, opts...).Searcher(req.Options...)
		return pull(s, err, k, point)
	default:
		s, err := unguided.NewNoRoute[P](g, start, opts...).Searcher(req.Options...)
		return pull(s, err, k, point)
	}
}

func runGuided(req Request) (*Report, error) {
	g, start, k := req.Grid, req.Start, req.Solutions

	switch {
	case req.Route && req.Hashable:
		s, err := guided.NewHashableRoute[P, int](g, start).Searcher(req.Options...)
		return pull(s, err, k, route(g))
	case req.Route:
		s, err := guided.NewRoute[P, int](g, start).Searcher(req.Options...)
		return pull(s, err, k, route(g))
	case req.Hashable:
		s, err := guided.NewHashableNoRoute[P, int](g, start).Searcher(req.Options...)
		return pull(s, err, k, point)
	default:
		s, err := guided.NewNoRoute[P, int](g, start).Searcher(req.Options...)
		return pull(s, err, k, point)
	}
}

func runAStar(req Request) (*Report, error) {
	g, start, k := req.Grid, req.Start, req.Solutions

	switch {
	case req.Route && req.Hashable:
		m := astar.NewHashableRoute[P, int](g, start)
		s, err := m.Searcher(req.Options...)
		return pull(s, err, k, costedRoute(m.LastCost))
	case req.Route:
		m := astar.NewRoute[P, int](g, start)
		s, err := m.Searcher(req.Options...)
		return pull(s, err, k, costedRoute(m.LastCost))
	case req.Hashable:
		m := astar.NewHashableNoRoute[P, int](g, start)
		s, err := m.Searcher(req.Options...)
		return pull(s, err, k, costedPoint(m.LastCost))
	default:
		m := astar.NewNoRoute[P, int](g, start)
		s, err := m.Searcher(req.Options...)
		return pull(s, err, k, costedPoint(m.LastCost))
	}
}

// pull drains up to k results from s, converting each with conv.
func pull[R any](s *search.Searcher[R], err error, k int, conv func(R) Solution) (*Report, error) {
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	rep := &Report{}
	for len(rep.Solutions) < max(k, 1) {
		r, ok := s.Next()
		if !ok {
			break
		}
		rep.Solutions = append(rep.Solutions, conv(r))
	}
	rep.Stats = s.Stats()
	rep.Status = s.Status()
	rep.Err = s.Err()

	return rep, nil
}

func point(p P) Solution { return Solution{Path: []P{p}} }

func route(g *gridspace.Grid) func([]P) Solution {
	return func(path []P) Solution {
		cost, ok := g.PathCost(path)
		return Solution{Path: path, Cost: cost, HasCost: ok}
	}
}

func costedRoute(last func() int) func([]P) Solution {
	return func(path []P) Solution {
		return Solution{Path: path, Cost: last(), HasCost: true}
	}
}

func costedPoint(last func() int) func(P) Solution {
	return func(p P) Solution {
		return Solution{Path: []P{p}, Cost: last(), HasCost: true}
	}
}

package search

import (
	"iter"
	"log/slog"

	"github.com/katalvlaran/spacesearch/space"
)

// Manager is the exploration-manager contract. A strategy decides ordering,
// deduplication and result shape; the driver only sequences these calls.
//
// Construction plays the role of initialize: a fresh Manager holds exactly one
// frontier item derived from the start state (already marked visited when the
// manager deduplicates).
type Manager[S, I, X, N, R any] interface {
	// Pop removes the next item by the manager's ordering policy.
	// It returns false when the frontier is empty.
	Pop() (I, bool)

	// State returns the state wrapped by item.
	State(item I) S

	// Result packages a terminal item: the bare state, or the route to it.
	Result(item I) R

	// Admit reports whether a candidate should enter the frontier.
	// Deduplicating managers return true exactly once per distinct state.
	Admit(item I) bool

	// Place stores an admitted item in the frontier.
	Place(item I)

	// Register is called once per popped non-solution item before its
	// successors are generated, and returns the context for its children.
	Register(item I) X

	// Wrap builds a frontier item from a raw successor and its parent's context.
	Wrap(ctx X, next N) I

	// Successors yields the raw successors of s.
	Successors(s S) iter.Seq[N]
}

// Searcher is a pull-based iterator over the solutions a Manager finds.
type Searcher[R any] struct {
	opts   Options
	status Status
	stats  Stats
	err    error
	pull   func() (R, bool)
}

// New wraps m in a Searcher. goal is the domain's solution predicate,
// normally the same space the manager was built over.
// Returns ErrNilManager, ErrNilSpace or ErrOptionViolation for invalid input.
func New[S, I, X, N, R any](m Manager[S, I, X, N, R], goal space.Goal[S], opts ...Option) (*Searcher[R], error) {
	if m == nil {
		return nil, ErrNilManager
	}
	if goal == nil {
		return nil, ErrNilSpace
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &Searcher[R]{opts: o, status: Ready}
	d := &driver[S, I, X, N, R]{m: m, goal: goal}
	s.pull = func() (R, bool) { return d.next(s) }

	return s, nil
}

// Next advances the search until it produces a solution and returns it.
// It returns false once the space is exhausted or the searcher has stopped.
func (s *Searcher[R]) Next() (R, bool) {
	if s.status == Exhausted || s.status == Stopped {
		var zero R
		return zero, false
	}

	return s.pull()
}

// All yields successive solutions until exhaustion or a stop.
func (s *Searcher[R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for {
			r, ok := s.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// Status returns the lifecycle position after the last pull.
func (s *Searcher[R]) Status() Status { return s.status }

// Stats returns a snapshot of the counters.
func (s *Searcher[R]) Stats() Stats { return s.stats }

// Err returns why the searcher stopped, or nil.
func (s *Searcher[R]) Err() error { return s.err }

// driver holds the typed manager behind a Searcher.
type driver[S, I, X, N, R any] struct {
	m    Manager[S, I, X, N, R]
	goal space.Goal[S]
}

// next runs pop/expand steps until a solution, exhaustion or a stop.
func (d *driver[S, I, X, N, R]) next(s *Searcher[R]) (R, bool) {
	var zero R
	s.status = Ready
	for {
		if err := s.opts.Ctx.Err(); err != nil {
			return zero, s.stop(err)
		}

		item, ok := d.m.Pop()
		if !ok {
			s.status = Exhausted
			s.opts.Hook(EventExhaust)
			s.log("search: exhausted")
			return zero, false
		}
		s.stats.Popped++
		s.opts.Hook(EventPop)

		state := d.m.State(item)
		if d.goal.IsSolution(state) {
			s.stats.Solutions++
			s.status = Solved
			s.opts.Hook(EventSolve)
			s.log("search: solved")
			return d.m.Result(item), true
		}

		if s.opts.MaxExpansions > 0 && s.stats.Expanded >= s.opts.MaxExpansions {
			return zero, s.stop(ErrBudgetExceeded)
		}
		ctx := d.m.Register(item)
		s.stats.Expanded++
		s.opts.Hook(EventExpand)

		for n := range d.m.Successors(state) {
			if err := s.opts.Ctx.Err(); err != nil {
				return zero, s.stop(err)
			}
			s.stats.Generated++
			next := d.m.Wrap(ctx, n)
			if !d.m.Admit(next) {
				s.stats.Rejected++
				s.opts.Hook(EventReject)
				continue
			}
			s.stats.Admitted++
			s.opts.Hook(EventAdmit)
			d.m.Place(next)
		}
	}
}

// stop moves the searcher to Stopped and records err. It always returns false.
func (s *Searcher[R]) stop(err error) bool {
	s.status = Stopped
	s.err = err
	s.opts.Logger.Debug("search: stopped", s.attrs(slog.Any("err", err))...)

	return false
}

func (s *Searcher[R]) log(msg string) {
	s.opts.Logger.Debug(msg, s.attrs()...)
}

func (s *Searcher[R]) attrs(extra ...any) []any {
	return append([]any{
		slog.Int("popped", s.stats.Popped),
		slog.Int("expanded", s.stats.Expanded),
		slog.Int("admitted", s.stats.Admitted),
		slog.Int("rejected", s.stats.Rejected),
		slog.Int("solutions", s.stats.Solutions),
	}, extra...)
}

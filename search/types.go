package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for searcher construction and stopping.
var (
	// ErrNilManager is returned when New receives a nil Manager.
	ErrNilManager = errors.New("search: manager is nil")

	// ErrNilSpace is returned when New receives a nil solution predicate.
	ErrNilSpace = errors.New("search: space is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBudgetExceeded is reported by Err once MaxExpansions is used up.
	ErrBudgetExceeded = errors.New("search: expansion budget exceeded")
)

// Status is the position of a Searcher in its lifecycle.
type Status int

const (
	// Ready means the next pull will resume exploration.
	Ready Status = iota
	// Solved means the last pull produced a solution. Pulling again resumes.
	Solved
	// Exhausted means the frontier is empty. It is permanent.
	Exhausted
	// Stopped means cancellation or the expansion budget ended the search.
	// It is permanent; Err reports the cause.
	Stopped
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Event identifies a step of the driver loop, reported to hooks.
type Event int

const (
	// EventPop fires for every item taken from the frontier.
	EventPop Event = iota
	// EventExpand fires when a popped non-solution item is registered.
	EventExpand
	// EventAdmit fires when a successor is placed on the frontier.
	EventAdmit
	// EventReject fires when a successor is refused by Admit.
	EventReject
	// EventSolve fires when a solution is returned.
	EventSolve
	// EventExhaust fires once, when the frontier runs dry.
	EventExhaust
)

// String implements fmt.Stringer.
func (e Event) String() string {
	switch e {
	case EventPop:
		return "pop"
	case EventExpand:
		return "expand"
	case EventAdmit:
		return "admit"
	case EventReject:
		return "reject"
	case EventSolve:
		return "solve"
	case EventExhaust:
		return "exhaust"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// Stats counts what a Searcher has done so far. Admitted+Rejected == Generated.
type Stats struct {
	Popped    int // items removed from the frontier
	Expanded  int // popped items whose successors were generated
	Generated int // successors produced by the space
	Admitted  int // successors placed on the frontier
	Rejected  int // successors refused by deduplication
	Solutions int // results returned
}

// Option configures a Searcher via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the Searcher configuration.
type Options struct {
	// Ctx allows cancellation; checked once per pop and once per successor.
	Ctx context.Context

	// MaxExpansions, if > 0, stops the search after that many expansions.
	// 0 disables the limit.
	MaxExpansions int

	// Logger receives debug records. Defaults to a discarding logger.
	Logger *slog.Logger

	// Hook is invoked for every Event. Defaults to a no-op.
	Hook func(Event)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no budget,
// a discarding logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Hook:          func(Event) {},
	}
}

// WithContext sets a context whose cancellation stops the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions limits the number of expansions.
//
//	n > 0:  stop after n expansions
//	n == 0: no limit
//	n < 0:  invalid → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHook registers fn for every Event. Multiple hooks run in registration order.
func WithHook(fn func(Event)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.Hook
		o.Hook = func(e Event) {
			prev(e)
			fn(e)
		}
	}
}

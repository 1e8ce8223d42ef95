// Package search provides the strategy-agnostic driver that pulls an
// exploration Manager one step at a time until it yields a solution.
//
// What
//
//   - Manager[S, I, X, N, R]: the contract every strategy implements.
//     S = state, I = frontier item, X = expansion context,
//     N = raw successor (a state, or a state plus edge cost for A*),
//     R = result (a solution state, or the route to it).
//   - Searcher[R]: pull-based iterator over solutions (Next, All).
//   - Status: Ready, then Solved (resumable), Exhausted or Stopped (final).
//   - Stats: counts of pops, expansions, generated/admitted/rejected successors.
//
// The loop
//
//	item := Pop()                      // empty frontier → Exhausted
//	if goal.IsSolution(State(item))    // Solved: return Result(item)
//	ctx := Register(item)              // arena index, cumulative cost, ...
//	for n := range Successors(State(item)) {
//	    next := Wrap(ctx, n)
//	    if Admit(next) { Place(next) } // dedup, then enqueue
//	}
//
// Pulling again after a solution resumes from whatever the frontier holds, so
// All enumerates successive solutions. Once the frontier is empty every pull
// reports false.
//
// Options
//
//   - WithContext(ctx):       stop with ctx.Err() once ctx is done.
//   - WithMaxExpansions(n):   stop with ErrBudgetExceeded after n expansions (n>0).
//   - WithLogger(l):          debug records on solve, exhaust and stop.
//   - WithHook(fn):           called for every Event; see the metrics package.
//
// Errors
//
//   - ErrNilManager, ErrNilSpace from New.
//   - ErrOptionViolation for invalid options (e.g. negative budget).
//   - ErrBudgetExceeded, or the context error, from Err after a Stopped pull.
//
// The search itself has no recoverable errors. A Searcher is not safe for
// concurrent use.
package search

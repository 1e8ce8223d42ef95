// Package space defines the contract between a search strategy and the
// state space it explores.
//
// What
//
//   - Space[S]:            successor generation plus a solution predicate.
//   - ScoredSpace[S, C]:   adds a heuristic Score used by guided strategies.
//   - WeightedSpace[S, C]: successors paired with edge costs, used by A*.
//   - Funcs, ScoredFuncs, WeightedFuncs: closure adapters for all three.
//
// The core never looks inside a state. It only asks the space for successors,
// asks whether a state is a solution, and (optionally) asks for a score.
//
// Score convention
//
//	Lower scores are explored first. A guided Score must decrease as a state
//	gets closer to a solution. An A* Score is the estimated remaining cost and
//	should never overestimate it (admissible); the priority of a state is
//	cumulative cost + Score. Violating either contract never crashes a search,
//	it only voids the ordering and optimality guarantees.
//
// Successors
//
//	Successors are lazy iter.Seq values, so an infinite neighbourhood is fine
//	as long as the strategy eventually finds a solution. A state with no
//	successors simply ends that branch.
package space

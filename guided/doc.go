// Package guided provides greedy best-first exploration managers: the
// frontier is a priority queue and the state with the LOWEST Score is
// expanded next.
//
// What
//
//	                 | no dedup       | dedup (S comparable)
//	  solution only  | NoRoute        | HashableNoRoute
//	  full route     | Route          | HashableRoute
//
//	Scores come from space.ScoredSpace and are computed once, when a state is
//	placed on the frontier. There is no depth-first toggle; order is fully
//	determined by score.
//
// Score contract
//
//	Scores must decrease as states approach a solution. A score that does not
//	still terminates on finite deduplicated spaces, it just explores in a
//	worse order. Guided search gives no shortest-path guarantee; use astar
//	for that.
//
// Ties between equal scores are broken by the heap and carry no meaning.
package guided

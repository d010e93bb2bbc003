// Package space defines the state-space contract that every problem domain
// satisfies, together with the two data structures the search engine is
// built on: Path and Frontier.
//
// What:
//
//   - State: an immutable, domain-defined value with equality, a goal test,
//     a validity predicate for moves, and a pure transition function.
//   - Estimator: the optional heuristic capability of a State. Informed and
//     optimal strategies require it.
//   - Rule: a production rule, independent of any state. A Problem exposes
//     an ordered slice of rules; that order fixes tie-breaks among children.
//   - Move: a Rule bound to a State, with a cost.
//   - Path: an ordered, loop-checked sequence of states with accumulated cost.
//   - Frontier: the ordered open list of paths. Position 0 is expanded next.
//
// Caller obligations (not validated at runtime):
//
//   - Equal must be reflexive and symmetric; loop detection relies on it.
//   - Move costs must be non-negative for the cost-ordered strategies.
//   - Heuristic estimates must be admissible for A* to return optimal paths.
//
// Example:
//
//	f := space.InitialFrontier(problem)
//	first := f.PopFront()
//	for child := range first.Expand(problem.Rules()) {
//	    if !child.HasLoop() {
//	        f.Append(child)
//	    }
//	}
package space

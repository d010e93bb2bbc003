// Package search implements a family of state-space search strategies on
// top of one shared algorithm template.
//
// The template (Run) keeps a Frontier of paths, seeded with the single-state
// path at the problem's start. Every iteration it takes paths from the
// frontier, expands them into loop-free children, lets the strategy merge the
// children back, optionally prunes, and tests for a goal. A strategy is a
// value of type Strategy that selects one set of hooks; there is no
// inheritance between strategies.
//
//	| Strategy | Take           | Merge                                   | Goal test    |
//	|----------|----------------|-----------------------------------------|--------------|
//	| DFS      | front          | prepend children                        | new paths    |
//	| BFS      | front          | append children                         | new paths    |
//	| NDS      | front          | each child at a random position         | new paths    |
//	| IDS      | depth-limited DFS with limit 1, 2, 3, ...                              |
//	| HC       | front          | sort children by h, prepend             | new paths    |
//	| GS       | front          | append, sort frontier by h              | new paths    |
//	| BS       | whole frontier | sort all children by h, keep Width      | new paths    |
//	| UC       | front          | append, sort frontier by cost           | new paths    |
//	| OUC      | front          | as UC                                   | front only   |
//	| BBUC     | front          | as UC, drop paths above best goal cost  | front only   |
//	| EEUC     | front          | append, sort frontier by cost + h       | front only   |
//	| AS       | front          | as EEUC, drop dominated paths           | front only   |
//
// All sorts are stable, so ties keep rule-application order and traces are
// reproducible. NDS is the only randomized strategy; its source is injected
// with WithRand or WithSeed.
//
// Options:
//
//   - WithDepthLimit(d)  expand only paths holding fewer than d states (d ≥ 0).
//   - WithBeamWidth(w)   beam width, required (> 0) for BS.
//   - WithRand(r)        random source for NDS; WithSeed(n) for a PCG source.
//   - WithTrace(fn)      per-iteration frontier snapshots.
//   - WithLogger(l)      *slog.Logger for debug and summary records.
//
// Errors:
//
//   - ErrNilProblem, ErrNilStart       invalid problem.
//   - ErrUnknownStrategy               Strategy out of range.
//   - ErrOptionViolation               negative depth limit.
//   - ErrBadBeamWidth                  BS without a positive width.
//   - ErrNoHeuristic                   informed strategy, start state lacks space.Estimator.
//
// Exhaustion is not an error: Run returns a Result with Found == false.
//
// Termination: on a finite state space every strategy terminates, since
// paths never repeat a state. IDS stops deepening once a round cuts no path
// off. On infinite spaces only a depth limit bounds DFS, BFS and NDS.
//
// Complexity:
//
//   - Per iteration O(b·L) to expand and loop-check b children of length L,
//     plus O(n log n) for the strategies that re-sort an n-path frontier and
//     O(n²·L) for A*'s redundancy deletion.
package search

package search

import (
	"math"

	"github.com/katalvlaran/lvsearch/space"
)

var infinity = math.Inf(1)

// policy is the set of hooks that turns the shared template into a concrete
// strategy.
//
//   - take removes the paths to expand from the frontier.
//   - insert merges the loop-free children into the frontier and returns
//     the "new paths" in the order they are tested for a goal.
//   - prune, if set, filters the frontier after insertion.
//   - frontOnly accepts a goal only at the front of the frontier instead of
//     among the new paths.
type policy struct {
	take      func(f *space.Frontier) []space.Path
	insert    func(r *runner, children []space.Path) []space.Path
	prune     func(r *runner, newPaths []space.Path)
	frontOnly bool
}

// policies maps every strategy run by the template to its hooks.
// IDS is driven by deepen and reuses the DFS entry.
var policies = map[Strategy]policy{
	// uninformed
	DFS: {take: takeFront, insert: prependChildren},
	BFS: {take: takeFront, insert: appendChildren},
	NDS: {take: takeFront, insert: scatterChildren},

	// heuristic
	HC: {take: takeFront, insert: prependSorted(space.ByHeuristic)},
	GS: {take: takeFront, insert: appendAndSort(space.ByHeuristic)},
	BS: {take: takeAll, insert: keepBeam},

	// cost-aware
	UC:   {take: takeFront, insert: appendAndSort(space.ByCost)},
	OUC:  {take: takeFront, insert: appendAndSort(space.ByCost), frontOnly: true},
	BBUC: {take: takeFront, insert: appendAndSort(space.ByCost), prune: pruneAboveBound, frontOnly: true},
	EEUC: {take: takeFront, insert: appendAndSort(space.ByEstimate), frontOnly: true},
	AS:   {take: takeFront, insert: appendAndSort(space.ByEstimate), prune: pruneRedundant, frontOnly: true},
}

func takeFront(f *space.Frontier) []space.Path {
	return []space.Path{f.PopFront()}
}

// takeAll consumes the whole frontier; beam search expands every path of
// the current round.
func takeAll(f *space.Frontier) []space.Path {
	return f.Clear()
}

func prependChildren(r *runner, children []space.Path) []space.Path {
	r.frontier.Prepend(children...)
	return children
}

func appendChildren(r *runner, children []space.Path) []space.Path {
	r.frontier.Append(children...)
	return children
}

// scatterChildren inserts each child at an independently drawn position in
// [0, Len()].
func scatterChildren(r *runner, children []space.Path) []space.Path {
	for _, c := range children {
		r.frontier.InsertAt(r.rng.IntN(r.frontier.Len()+1), c)
	}

	return children
}

// prependSorted sorts the children by key and prepends them as a block.
func prependSorted(key func(space.Path) float64) func(*runner, []space.Path) []space.Path {
	return func(r *runner, children []space.Path) []space.Path {
		space.SortPaths(children, key)
		r.frontier.Prepend(children...)
		return children
	}
}

// appendAndSort appends the children and re-sorts the whole frontier.
func appendAndSort(key func(space.Path) float64) func(*runner, []space.Path) []space.Path {
	return func(r *runner, children []space.Path) []space.Path {
		r.frontier.Append(children...)
		r.frontier.SortStable(key)
		return children
	}
}

// keepBeam replaces the frontier with the best BeamWidth children.
func keepBeam(r *runner, children []space.Path) []space.Path {
	space.SortPaths(children, space.ByHeuristic)
	if len(children) > r.opts.BeamWidth {
		children = children[:r.opts.BeamWidth]
	}
	r.frontier.ReplaceAll(children)

	return children
}

// pruneAboveBound lowers the bound to the cheapest goal-reaching child and
// drops every path costing more than the bound.
func pruneAboveBound(r *runner, newPaths []space.Path) {
	for _, p := range newPaths {
		if p.ReachesGoal() && p.Cost() < r.bound {
			r.bound = p.Cost()
		}
	}
	if math.IsInf(r.bound, 1) {
		return
	}
	r.frontier.Filter(func(_ int, p space.Path) bool {
		return p.Cost() <= r.bound
	})
}

// pruneRedundant deletes dominated paths: p is dropped when another path q
// of the frontier passes through p's last state at no greater cost. When q
// and p end in the same state at equal cost they dominate each other; the
// one ahead in the frontier survives.
func pruneRedundant(r *runner, _ []space.Path) {
	snapshot := r.frontier.Paths()
	r.frontier.Filter(func(i int, p space.Path) bool {
		last := p.Last()
		for j, q := range snapshot {
			if j == i || q.Cost() > p.Cost() || !q.Contains(last) {
				continue
			}
			if q.Cost() == p.Cost() && q.Last().Equal(last) && j > i {
				continue
			}
			return false
		}
		return true
	})
}

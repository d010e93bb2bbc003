package search

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/katalvlaran/lvsearch/space"
)

// runner encapsulates the mutable state of one depth-limited search run.
// A runner is used once and discarded.
type runner struct {
	rules      []space.Rule
	strategy   Strategy
	pol        policy
	opts       Options
	rng        Rand
	log        *slog.Logger
	depthLimit int // -1: unbounded

	frontier *space.Frontier
	bound    float64 // cheapest goal cost seen (branch-and-bound)
	cutoff   bool    // some path was left unexpanded because of depthLimit
	res      *Result
}

// Run searches p with strategy s and returns the outcome.
//
// Errors are configuration errors only and are reported before the first
// iteration: ErrNilProblem, ErrNilStart, ErrUnknownStrategy,
// ErrOptionViolation, ErrBadBeamWidth, ErrNoHeuristic. A search that
// exhausts its frontier returns a Result with Found == false and a nil error.
//
// Contract violations by the problem domain (inconsistent equality, a state
// that stops implementing space.Estimator mid-search) are not recovered.
func Run(p space.Problem, s Strategy, opts ...Option) (*Result, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	start := p.Start()
	if start == nil {
		return nil, ErrNilStart
	}
	if s == BS && o.BeamWidth <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadBeamWidth, o.BeamWidth)
	}
	if s.NeedsHeuristic() {
		if _, ok := start.(space.Estimator); !ok {
			return nil, fmt.Errorf("%w: %s on %T", ErrNoHeuristic, s.Abbrev(), start)
		}
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	began := time.Now()
	var res *Result
	if s == IDS {
		res = deepen(p, o)
	} else {
		r := newRunner(p, s, policies[s], o, o.DepthLimit)
		r.search()
		res = r.res
	}
	res.MaxFrontier = slices.Max(res.FrontierSizes)
	res.Elapsed = time.Since(began)

	o.Logger.Info("search finished",
		slog.String("strategy", s.Abbrev()),
		slog.String("status", res.Status.String()),
		slog.Int("iterations", res.Iterations),
		slog.Int("max_frontier", res.MaxFrontier),
		slog.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

// newRunner prepares a run over a fresh initial frontier.
func newRunner(p space.Problem, s Strategy, pol policy, o Options, depthLimit int) *runner {
	return &runner{
		rules:      p.Rules(),
		strategy:   s,
		pol:        pol,
		opts:       o,
		rng:        o.Rand,
		log:        o.Logger.With(slog.String("strategy", s.Abbrev())),
		depthLimit: depthLimit,
		frontier:   space.InitialFrontier(p),
		bound:      infinity,
		res: &Result{
			Strategy:   s,
			Status:     Ready,
			DepthLimit: depthLimit,
		},
	}
}

// search is the template shared by every strategy but IDS:
//
//  1. accept the initial path if it already reaches the goal;
//  2. while the frontier is non-empty and no goal was accepted:
//     take paths, expand them (respecting the depth limit, dropping loops),
//     insert the children, prune, and test for acceptance.
func (r *runner) search() {
	f := r.frontier
	r.res.FrontierSizes = append(r.res.FrontierSizes, f.Len())
	r.trace(nil, nil)

	if f.Front().ReachesGoal() {
		r.succeed(f.Front())
		return
	}

	r.res.Status = Running
	for !f.Empty() && r.res.Status == Running {
		r.res.Iterations++
		r.res.FrontierSizes = append(r.res.FrontierSizes, f.Len())

		removed := r.pol.take(f)
		children := r.expand(removed)
		newPaths := r.pol.insert(r, children)
		if r.pol.prune != nil {
			r.pol.prune(r, newPaths)
		}

		r.log.Debug("iteration",
			slog.Int("n", r.res.Iterations),
			slog.Int("removed", len(removed)),
			slog.Int("new", len(newPaths)),
			slog.Int("frontier", f.Len()),
		)
		r.trace(removed, newPaths)
		r.accept(newPaths)
	}
	if r.res.Status == Running {
		r.res.Status = Exhausted
	}
}

// expand returns the loop-free children of paths, in order. Paths at or
// beyond the depth limit produce no children.
func (r *runner) expand(paths []space.Path) []space.Path {
	var out []space.Path
	for _, p := range paths {
		if r.depthLimit >= 0 && p.Len() >= r.depthLimit {
			r.cutoff = true
			continue
		}
		for child := range p.Expand(r.rules) {
			if !child.HasLoop() {
				out = append(out, child)
			}
		}
	}

	return out
}

// accept applies the strategy's acceptance rule after an iteration.
func (r *runner) accept(newPaths []space.Path) {
	if r.pol.frontOnly {
		if !r.frontier.Empty() && r.frontier.Front().ReachesGoal() {
			r.succeed(r.frontier.Front())
		}
		return
	}
	for _, p := range newPaths {
		if p.ReachesGoal() {
			r.succeed(p)
			return
		}
	}
}

func (r *runner) succeed(p space.Path) {
	r.res.Status = Succeeded
	r.res.Found = true
	r.res.Path = p
}

// trace hands a snapshot to the OnStep hook, if any.
func (r *runner) trace(removed, newPaths []space.Path) {
	if r.opts.OnStep == nil {
		return
	}
	r.opts.OnStep(Step{
		Iteration:  r.res.Iterations,
		DepthLimit: r.depthLimit,
		Removed:    slices.Clone(removed),
		NewPaths:   slices.Clone(newPaths),
		Frontier:   r.frontier.Paths(),
	})
}

// deepen runs depth-limited DFS with limits 1, 2, 3, ... until a round
// succeeds, a round finishes without cutting any path off (the loop-free
// space is exhausted), or the configured depth limit is passed.
func deepen(p space.Problem, o Options) *Result {
	res := &Result{
		Strategy:      IDS,
		Status:        Running,
		FrontierSizes: []int{1},
		DepthLimit:    0,
	}
	if start := p.Start(); start.IsGoal() {
		res.Status = Succeeded
		res.Found = true
		res.Path = space.NewPath(start)
		return res
	}

	for limit := 1; o.DepthLimit < 0 || limit <= o.DepthLimit; limit++ {
		round := newRunner(p, DFS, policies[DFS], o, limit)
		round.log = o.Logger.With(slog.String("strategy", IDS.Abbrev()), slog.Int("depth", limit))
		round.search()

		res.Iterations += round.res.Iterations
		res.FrontierSizes = append(res.FrontierSizes, round.res.FrontierSizes...)
		res.DepthLimit = limit

		if round.res.Found {
			res.Status = Succeeded
			res.Found = true
			res.Path = round.res.Path
			return res
		}
		if !round.cutoff {
			break
		}
	}
	res.Status = Exhausted

	return res
}

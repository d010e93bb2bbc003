// Package search defines the strategy enumeration, functional options,
// sentinel errors, and result types of the search engine.
package search

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"reflect"
	"strings"
	"time"

	"github.com/katalvlaran/lvsearch/space"
)

// Sentinel errors. Configuration errors are returned by Run before the
// first iteration.
var (
	// ErrNilProblem is returned when a nil problem is passed to Run.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilStart is returned when the problem's start state is nil.
	ErrNilStart = errors.New("search: start state is nil")

	// ErrUnknownStrategy is returned for a Strategy outside the known set.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBadBeamWidth is returned when beam search runs without a positive width.
	ErrBadBeamWidth = errors.New("search: beam width must be positive")

	// ErrNoHeuristic is returned when an informed strategy is asked to search
	// a problem whose start state does not implement space.Estimator.
	ErrNoHeuristic = errors.New("search: strategy requires a heuristic")
)

// Strategy selects a frontier-management policy.
type Strategy int

const (
	// DFS is depth-first search: children go to the front.
	DFS Strategy = iota
	// BFS is breadth-first search: children go to the back.
	BFS
	// NDS is non-deterministic search: each child goes to a random position.
	NDS
	// IDS is iterative deepening: depth-limited DFS with limits 1, 2, 3, ...
	IDS
	// HC is hill climbing: children sorted by heuristic, then prepended.
	HC
	// GS is greedy search: whole frontier sorted by heuristic.
	GS
	// BS is beam search: best Width children of the whole frontier per round.
	BS
	// UC is uniform cost: whole frontier sorted by accumulated cost.
	UC
	// OUC is optimal uniform cost: UC accepting a goal only at the front.
	OUC
	// BBUC is branch-and-bound uniform cost: OUC pruning paths above the
	// cheapest goal cost seen.
	BBUC
	// EEUC is estimate-extended uniform cost: OUC ordered by cost + heuristic.
	EEUC
	// AS is A*: EEUC with redundant-path deletion.
	AS

	strategyCount
)

var strategyNames = [strategyCount]struct{ abbrev, name string }{
	DFS:  {"DFS", "Depth-first search"},
	BFS:  {"BFS", "Breadth-first search"},
	NDS:  {"NDS", "Non-deterministic search"},
	IDS:  {"IDS", "Iterative deepening search"},
	HC:   {"HC", "Hill climbing"},
	GS:   {"GS", "Greedy search"},
	BS:   {"BS", "Beam search"},
	UC:   {"UC", "Uniform cost"},
	OUC:  {"OUC", "Optimal uniform cost"},
	BBUC: {"BBUC", "Branch-and-bound extended uniform cost"},
	EEUC: {"EEUC", "Estimate extended uniform cost"},
	AS:   {"AS", "A*"},
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	out := make([]Strategy, strategyCount)
	for i := range out {
		out[i] = Strategy(i)
	}

	return out
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool { return s >= 0 && s < strategyCount }

// String returns the human-readable algorithm name.
func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s].name
}

// Abbrev returns the short name, e.g. "AS".
func (s Strategy) Abbrev() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s].abbrev
}

// NeedsHeuristic reports whether s orders paths by a heuristic estimate.
func (s Strategy) NeedsHeuristic() bool {
	switch s {
	case HC, GS, BS, EEUC, AS:
		return true
	}

	return false
}

// Optimal reports whether s guarantees a least-cost path (for A*, given an
// admissible heuristic).
func (s Strategy) Optimal() bool {
	switch s {
	case OUC, BBUC, EEUC, AS:
		return true
	}

	return false
}

// ParseStrategy resolves an abbreviation ("bfs", "AS", "a*") or full name.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.TrimSpace(name)
	if strings.EqualFold(n, "A*") || strings.EqualFold(n, "astar") {
		return AS, nil
	}
	for i, sn := range strategyNames {
		if strings.EqualFold(n, sn.abbrev) || strings.EqualFold(n, sn.name) {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Rand is the random source used by non-deterministic search.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// Step is a snapshot handed to the trace hook after every iteration.
// Iteration 0 is the initial frontier.
type Step struct {
	Iteration  int
	DepthLimit int          // -1 when unbounded
	Removed    []space.Path // paths taken from the frontier
	NewPaths   []space.Path // loop-free children as inserted
	Frontier   []space.Path // frontier after insertion and pruning
}

// Option configures Run via functional arguments.
// An invalid Option is recorded and surfaced as an error by Run.
type Option func(*Options)

// Options holds the parameters of a search run.
type Options struct {
	// DepthLimit is the maximum path length (state count) that is still
	// expanded beyond. -1 means unbounded; 0 means never expand.
	DepthLimit int

	// BeamWidth is the number of paths kept per round by beam search.
	BeamWidth int

	// Rand drives non-deterministic search. nil selects a fresh source per run.
	Rand Rand

	// OnStep, if non-nil, receives a snapshot after every iteration.
	OnStep func(Step)

	// Logger receives debug records per iteration and an info record when
	// the run terminates.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no depth limit (DepthLimit == -1)
//   - no beam width (BeamWidth == 0, beam search then fails fast)
//   - per-run random source
//   - no trace hook
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		DepthLimit: -1,
		BeamWidth:  0,
		Rand:       nil,
		OnStep:     nil,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDepthLimit stops expansion of paths holding d or more states.
//
//	d > 0: expand paths shorter than d
//	d == 0: never expand
//	d < 0: invalid option → ErrOptionViolation
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithBeamWidth sets how many paths beam search keeps per round.
// Non-positive widths are recorded and reported as ErrBadBeamWidth.
func WithBeamWidth(w int) Option {
	return func(o *Options) {
		if w <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadBeamWidth, w)
			return
		}
		o.BeamWidth = w
	}
}

// WithRand injects the random source for non-deterministic search.
// A nil source, including a typed nil such as (*rand.Rand)(nil), is
// recorded as ErrOptionViolation.
func WithRand(r Rand) Option {
	return func(o *Options) {
		if isNil(r) {
			o.err = fmt.Errorf("%w: random source is nil", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// isNil reports whether r is nil or wraps a nil pointer, map, func, etc.
func isNil(r Rand) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}

	return false
}

// WithSeed is shorthand for WithRand with a PCG source seeded by seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithTrace registers a hook receiving a Step after every iteration.
func WithTrace(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
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

// Status is the engine state: Ready → Running → {Succeeded, Exhausted}.
type Status int

const (
	// Ready is the state before the first iteration.
	Ready Status = iota
	// Running means the loop is still taking paths from the frontier.
	Running
	// Succeeded means a goal path was accepted.
	Succeeded
	// Exhausted means the frontier ran empty without a goal.
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of a search run.
type Result struct {
	Strategy Strategy
	Status   Status

	// Found is true iff Status == Succeeded.
	Found bool

	// Path is the path to the goal; zero-length when nothing was found.
	Path space.Path

	// Iterations counts loop iterations (summed over rounds for IDS).
	Iterations int

	// FrontierSizes records the frontier length before every iteration,
	// starting with the initial frontier.
	FrontierSizes []int

	// MaxFrontier is the largest entry of FrontierSizes.
	MaxFrontier int

	// DepthLimit is the configured limit, or the last limit tried by IDS.
	// -1 means unbounded.
	DepthLimit int

	Elapsed time.Duration
}

// Summary renders the result the way the reporting layer prints it.
func (r *Result) Summary() string {
	var b strings.Builder
	outcome := "FAILURE"
	if r.Found {
		outcome = "SUCCESS"
	}
	fmt.Fprintf(&b, "ALGORITHM: %s\n", r.Strategy)
	fmt.Fprintf(&b, "RESULT: %s\n", outcome)
	fmt.Fprintf(&b, "Elapsed time: %s\n", r.Elapsed)
	fmt.Fprintf(&b, "Number of iterations: %d\n", r.Iterations)
	fmt.Fprintf(&b, "Maximum length of queue: %d\n", r.MaxFrontier)

	return b.String()
}

package space

import (
	"fmt"
	"iter"
	"strings"
)

// Path is an ordered sequence of states from a root state together with the
// accumulated cost of the moves between them.
//
// Path is a value type. Extending a path copies its states, so a parent and
// its children never share backing storage.
type Path struct {
	states []State
	cost   float64
}

// NewPath returns the single-state path rooted at s with cost 0.
func NewPath(s State) Path {
	return Path{states: []State{s}}
}

// PathOf builds a path from explicit states and cost. It is meant for tests
// and for domains that reconstruct paths; the states are copied.
func PathOf(cost float64, states ...State) Path {
	cp := make([]State, len(states))
	copy(cp, states)

	return Path{states: cp, cost: cost}
}

// Len returns the number of states (edges + 1).
func (p Path) Len() int { return len(p.states) }

// Cost returns the accumulated move cost.
func (p Path) Cost() float64 { return p.cost }

// First returns the root state.
func (p Path) First() State { return p.states[0] }

// Last returns the most recently reached state.
func (p Path) Last() State { return p.states[len(p.states)-1] }

// At returns the i-th state.
func (p Path) At(i int) State { return p.states[i] }

// States returns a copy of the states.
func (p Path) States() []State {
	cp := make([]State, len(p.states))
	copy(cp, p.states)

	return cp
}

// ReachesGoal reports whether the last state is a goal.
func (p Path) ReachesGoal() bool { return p.Last().IsGoal() }

// Heuristic returns the estimate of the last state. The last state must
// implement Estimator.
func (p Path) Heuristic() float64 {
	return p.Last().(Estimator).Heuristic()
}

// F returns cost + heuristic, the ordering key of estimate-extended search.
func (p Path) F() float64 { return p.cost + p.Heuristic() }

// HasLoop reports whether the last state equals any earlier state.
// Only the last state is checked: every shorter prefix was loop-free when it
// was accepted.
func (p Path) HasLoop() bool {
	last := p.Last()
	for _, s := range p.states[:len(p.states)-1] {
		if last.Equal(s) {
			return true
		}
	}

	return false
}

// Contains reports whether s occurs anywhere on the path.
func (p Path) Contains(s State) bool {
	for _, st := range p.states {
		if st.Equal(s) {
			return true
		}
	}

	return false
}

// Extend returns the child path obtained by applying m to the last state.
// The validity of m is not checked.
func (p Path) Extend(m Move) Path {
	states := make([]State, len(p.states), len(p.states)+1)
	copy(states, p.states)
	states = append(states, m.Apply())

	return Path{states: states, cost: p.cost + m.Cost}
}

// Expand lazily yields one child per valid move of the last state, in rule
// order. Children with loops are yielded too; filtering them is the
// engine's job.
func (p Path) Expand(rules []Rule) iter.Seq[Path] {
	return func(yield func(Path) bool) {
		last := p.Last()
		for _, r := range rules {
			m := r.Apply(last)
			if !m.Valid() {
				continue
			}
			if !yield(p.Extend(m)) {
				return
			}
		}
	}
}

// Children collects Expand into a slice.
func (p Path) Children(rules []Rule) []Path {
	var out []Path
	for c := range p.Expand(rules) {
		out = append(out, c)
	}

	return out
}

// Format renders the path using name for every state, joined by sep.
func (p Path) Format(name func(State) string, sep string) string {
	parts := make([]string, len(p.states))
	for i, s := range p.states {
		parts[i] = name(s)
	}

	return strings.Join(parts, sep)
}

// String renders the path as "[s0 s1 ...]".
func (p Path) String() string {
	return "[" + p.Format(func(s State) string { return fmt.Sprint(s) }, " ") + "]"
}

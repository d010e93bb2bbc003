package space

// State is a node of a state space. Implementations are immutable: ApplyMove
// returns a new State and never mutates the receiver.
type State interface {
	// Equal reports whether two states are interchangeable for loop
	// detection and redundancy pruning.
	Equal(other State) bool

	// IsGoal is the terminal test.
	IsGoal() bool

	// ValidMove reports whether m may be applied to this state.
	ValidMove(m Move) bool

	// ApplyMove returns the state reached by applying m.
	ApplyMove(m Move) State
}

// Estimator is implemented by states that can estimate their remaining cost
// to a goal. The estimate must be non-negative.
type Estimator interface {
	Heuristic() float64
}

// Rule is a production rule: an action defined independently of any state.
// Apply binds the rule to s and decides the cost of the resulting move.
type Rule interface {
	Apply(s State) Move
}

// Problem is a search problem: an ordered set of rules and a start state.
type Problem interface {
	// Rules returns the production rules in application order.
	Rules() []Rule

	// Start returns the initial state.
	Start() State
}

// Move is a Rule applied to a State, with the cost of taking it.
type Move struct {
	State State
	Rule  Rule
	Cost  float64
}

// NewMove binds r to s with zero cost.
func NewMove(s State, r Rule) Move {
	return Move{State: s, Rule: r}
}

// Valid delegates to the state's validity predicate.
func (m Move) Valid() bool { return m.State.ValidMove(m) }

// Apply returns the state reached by the move.
func (m Move) Apply() State { return m.State.ApplyMove(m) }

// ApplyRules binds every rule to s, preserving rule order.
func ApplyRules(s State, rules []Rule) []Move {
	moves := make([]Move, len(rules))
	for i, r := range rules {
		moves[i] = r.Apply(s)
	}

	return moves
}

// InitialFrontier returns a frontier holding one single-state path at the
// problem's start state.
func InitialFrontier(p Problem) *Frontier {
	return NewFrontier(NewPath(p.Start()))
}

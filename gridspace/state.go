package gridspace

import (
	"github.com/katalvlaran/lvsearch/space"
)

// Rule moves by (DRow, DCol).
type Rule struct {
	DRow, DCol int
	Name       string
}

// The orthogonal and diagonal move rules.
var (
	Left      = Rule{DRow: 0, DCol: -1, Name: "L"}
	Right     = Rule{DRow: 0, DCol: 1, Name: "R"}
	Up        = Rule{DRow: -1, DCol: 0, Name: "U"}
	Down      = Rule{DRow: 1, DCol: 0, Name: "D"}
	UpLeft    = Rule{DRow: -1, DCol: -1, Name: "UL"}
	UpRight   = Rule{DRow: -1, DCol: 1, Name: "UR"}
	DownLeft  = Rule{DRow: 1, DCol: -1, Name: "DL"}
	DownRight = Rule{DRow: 1, DCol: 1, Name: "DR"}
)

// DefaultRules returns L, R, U, D, followed by the diagonals for Conn8.
func DefaultRules(conn Connectivity) []Rule {
	rules := []Rule{Left, Right, Up, Down}
	if conn == Conn8 {
		rules = append(rules, UpLeft, UpRight, DownLeft, DownRight)
	}

	return rules
}

// ParseRule resolves a rule name such as "L" or "DR".
func ParseRule(name string) (Rule, bool) {
	for _, r := range DefaultRules(Conn8) {
		if r.Name == name {
			return r, true
		}
	}

	return Rule{}, false
}

// Apply binds the rule to s at the maze's step cost.
func (r Rule) Apply(s space.State) space.Move {
	m := space.NewMove(s, r)
	if st, ok := s.(State); ok {
		m.Cost = st.maze.stepCost
	}

	return m
}

func (r Rule) String() string { return r.Name }

// State is the search state "standing at Pos".
type State struct {
	maze *Maze
	Pos  Position
}

func (s State) target(m space.Move) Position {
	r := m.Rule.(Rule)
	return Position{Row: s.Pos.Row + r.DRow, Col: s.Pos.Col + r.DCol}
}

// Equal compares positions.
func (s State) Equal(other space.State) bool {
	o, ok := other.(State)
	return ok && o.Pos == s.Pos
}

// IsGoal reports whether s stands on the goal cell.
func (s State) IsGoal() bool { return s.Pos == s.maze.goal }

// ValidMove reports whether the move stays in the grid and off walls.
func (s State) ValidMove(m space.Move) bool {
	if _, ok := m.Rule.(Rule); !ok {
		return false
	}

	return s.maze.Passable(s.target(m))
}

// ApplyMove returns the state at the move's target.
func (s State) ApplyMove(m space.Move) space.State {
	return State{maze: s.maze, Pos: s.target(m)}
}

// Heuristic returns the grid distance to the goal times the step cost.
func (s State) Heuristic() float64 { return s.maze.distance(s.Pos) }

func (s State) String() string { return s.Pos.String() }

var (
	_ space.State     = State{}
	_ space.Estimator = State{}
	_ space.Rule      = Rule{}
)

// Positions returns the positions along p.
func Positions(p space.Path) []Position {
	out := make([]Position, p.Len())
	for i := range out {
		out[i] = p.At(i).(State).Pos
	}

	return out
}

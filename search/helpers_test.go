package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/graphspace"
	"github.com/katalvlaran/lvsearch/gridspace"
	"github.com/katalvlaran/lvsearch/space"
)

// buildTriangle returns S–A (1), A–G (1), S–G (5) with h(S)=2, h(A)=1, h(G)=0.
func buildTriangle(t testing.TB, opts ...graphspace.Option) *graphspace.Graph {
	t.Helper()
	g, err := graphspace.Build(
		[]graphspace.Edge{{U: "S", V: "A", Cost: 1}, {U: "A", V: "G", Cost: 1}, {U: "S", V: "G", Cost: 5}},
		map[string]float64{"S": 2, "A": 1, "G": 0},
		opts...,
	)
	require.NoError(t, err)

	return g
}

// buildRoadMap returns the classic eight-city road map with edges
// S–A 3, S–D 4, A–B 4, A–D 5, B–C 4, B–E 5, D–E 2, E–F 4, F–G 3
// and an admissible heuristic. The cheapest route is S D E F G (cost 13);
// the fewest-edges route is the same one (4 edges).
func buildRoadMap(t testing.TB) *graphspace.Graph {
	t.Helper()
	g, err := graphspace.Build(
		[]graphspace.Edge{
			{U: "S", V: "A", Cost: 3}, {U: "S", V: "D", Cost: 4},
			{U: "A", V: "B", Cost: 4}, {U: "A", V: "D", Cost: 5},
			{U: "B", V: "C", Cost: 4}, {U: "B", V: "E", Cost: 5},
			{U: "D", V: "E", Cost: 2}, {U: "E", V: "F", Cost: 4},
			{U: "F", V: "G", Cost: 3},
		},
		map[string]float64{
			"S": 11, "A": 10.4, "B": 6.7, "C": 4, "D": 8.9, "E": 6.9, "F": 3, "G": 0,
		},
	)
	require.NoError(t, err)

	return g
}

// buildMaze returns a 3×4 maze whose shortest route takes 5 moves.
func buildMaze(t testing.TB) *gridspace.Maze {
	t.Helper()
	m, err := gridspace.ParseMaze([]string{
		"*..#",
		".#..",
		"...o",
	}, gridspace.DefaultMazeOptions())
	require.NoError(t, err)

	return m
}

// names renders paths as concatenated vertex IDs.
func names(ps []space.Path) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = graphspace.FormatPath(p)
	}

	return out
}

// counter is a domain without a heuristic: states are integers, rules add
// fixed amounts and cost that amount. Values above limit are invalid.
type counter struct {
	n, goal, limit int
}

func (c counter) Equal(o space.State) bool {
	oc, ok := o.(counter)
	return ok && oc.n == c.n
}
func (c counter) IsGoal() bool { return c.n == c.goal }
func (c counter) ValidMove(m space.Move) bool {
	return c.n+m.Rule.(add).by <= c.limit
}
func (c counter) ApplyMove(m space.Move) space.State {
	c.n += m.Rule.(add).by
	return c
}

type add struct{ by int }

func (a add) Apply(s space.State) space.Move {
	return space.Move{State: s, Rule: a, Cost: float64(a.by)}
}

type counterProblem struct {
	start counter
	rules []space.Rule
}

func (p counterProblem) Rules() []space.Rule { return p.rules }
func (p counterProblem) Start() space.State  { return p.start }

// newCounter counts from 0 towards goal using +1 and +2 steps.
func newCounter(goal, limit int) counterProblem {
	return counterProblem{
		start: counter{n: 0, goal: goal, limit: limit},
		rules: []space.Rule{add{1}, add{2}},
	}
}

// nilStart is a problem whose start state is missing.
type nilStart struct{}

func (nilStart) Rules() []space.Rule { return nil }
func (nilStart) Start() space.State  { return nil }

// checkPath asserts the path invariants every strategy must uphold:
// consecutive states are joined by valid moves, no state repeats, and the
// cost is the sum of the move costs.
func checkPath(t *testing.T, rules []space.Rule, p space.Path) {
	t.Helper()
	require.Positive(t, p.Len())
	states := p.States()
	var cost float64
	for i := 1; i < len(states); i++ {
		found := false
		for _, r := range rules {
			m := r.Apply(states[i-1])
			if m.Valid() && m.Apply().Equal(states[i]) {
				cost += m.Cost
				found = true
				break
			}
		}
		require.Truef(t, found, "no valid move from %v to %v", states[i-1], states[i])
		for j := 0; j < i; j++ {
			require.Falsef(t, states[i].Equal(states[j]), "state %v repeats", states[i])
		}
	}
	require.InDelta(t, cost, p.Cost(), 1e-9)
}

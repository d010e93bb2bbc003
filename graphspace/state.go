package graphspace

import (
	"github.com/katalvlaran/lvsearch/space"
)

// Rule moves to vertex Next.
type Rule struct {
	Next string
}

// Apply binds the rule to s; the move costs the edge cost from s to Next,
// or DefaultCost if there is no such edge.
func (r Rule) Apply(s space.State) space.Move {
	m := space.NewMove(s, r)
	m.Cost = DefaultCost
	if st, ok := s.(State); ok {
		if c, ok := st.graph.Cost(st.Vertex, r.Next); ok {
			m.Cost = c
		}
	}

	return m
}

func (r Rule) String() string { return r.Next }

// State is the search state "currently at Vertex".
type State struct {
	graph  *Graph
	Vertex string
}

// Equal compares vertices.
func (s State) Equal(other space.State) bool {
	o, ok := other.(State)
	return ok && o.Vertex == s.Vertex
}

// IsGoal reports whether s is at the goal vertex.
func (s State) IsGoal() bool { return s.Vertex == s.graph.GoalID() }

// ValidMove reports whether the move's target is a neighbour.
func (s State) ValidMove(m space.Move) bool {
	r, ok := m.Rule.(Rule)
	return ok && s.graph.Adjacent(s.Vertex, r.Next)
}

// ApplyMove returns the state at the rule's target vertex.
func (s State) ApplyMove(m space.Move) space.State {
	return State{graph: s.graph, Vertex: m.Rule.(Rule).Next}
}

// Heuristic returns the vertex's estimate.
func (s State) Heuristic() float64 { return s.graph.Heuristic(s.Vertex) }

func (s State) String() string { return s.Vertex }

var (
	_ space.State     = State{}
	_ space.Estimator = State{}
	_ space.Rule      = Rule{}
)

// FormatPath renders p as concatenated vertex IDs, e.g. "SAG".
func FormatPath(p space.Path) string {
	return p.Format(func(s space.State) string { return s.(State).Vertex }, "")
}

// Vertices returns the vertex IDs along p.
func Vertices(p space.Path) []string {
	out := make([]string, p.Len())
	for i := range out {
		out[i] = p.At(i).(State).Vertex
	}

	return out
}

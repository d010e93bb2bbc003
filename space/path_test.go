package space_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/graphspace"
	"github.com/katalvlaran/lvsearch/space"
)

// buildTriangle returns S–A (1), A–G (1), S–G (5) with h(S)=2, h(A)=1, h(G)=0.
func buildTriangle(t *testing.T) *graphspace.Graph {
	t.Helper()
	g, err := graphspace.Build(
		[]graphspace.Edge{{U: "S", V: "A", Cost: 1}, {U: "A", V: "G", Cost: 1}, {U: "S", V: "G", Cost: 5}},
		map[string]float64{"S": 2, "A": 1, "G": 0},
	)
	require.NoError(t, err)

	return g
}

// pathThrough builds the path along ids, summing edge costs.
func pathThrough(g *graphspace.Graph, ids ...string) space.Path {
	p := space.NewPath(g.StateAt(ids[0]))
	for _, id := range ids[1:] {
		p = p.Extend(graphspace.Rule{Next: id}.Apply(p.Last()))
	}

	return p
}

func TestNewPath_SingleState(t *testing.T) {
	g := buildTriangle(t)
	p := space.NewPath(g.Start())

	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 0.0, p.Cost())
	assert.True(t, p.First().Equal(p.Last()))
	assert.False(t, p.HasLoop())
	assert.False(t, p.ReachesGoal())
	assert.Equal(t, 2.0, p.Heuristic())
	assert.Equal(t, 2.0, p.F())
}

func TestPath_ExpandOrderAndCosts(t *testing.T) {
	g := buildTriangle(t)
	root := space.NewPath(g.Start())

	children := root.Children(g.Rules())
	require.Len(t, children, 2, "S has neighbours A and G; rule S is invalid")

	assert.Equal(t, "SA", graphspace.FormatPath(children[0]))
	assert.Equal(t, 1.0, children[0].Cost())
	assert.Equal(t, "SG", graphspace.FormatPath(children[1]))
	assert.Equal(t, 5.0, children[1].Cost())
	assert.True(t, children[1].ReachesGoal())

	// parent is untouched
	assert.Equal(t, 1, root.Len())
}

func TestPath_ExpandDoesNotFilterLoops(t *testing.T) {
	g := buildTriangle(t)
	sa := pathThrough(g, "S", "A")

	var names []string
	for c := range sa.Expand(g.Rules()) {
		names = append(names, graphspace.FormatPath(c))
	}
	assert.Equal(t, []string{"SAG", "SAS"}, names)

	children := sa.Children(g.Rules())
	assert.False(t, children[0].HasLoop())
	assert.True(t, children[1].HasLoop())
}

func TestPath_ExpandStopsEarly(t *testing.T) {
	g := buildTriangle(t)
	root := space.NewPath(g.Start())

	n := 0
	for range root.Expand(g.Rules()) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestPath_SiblingsDoNotShareStorage(t *testing.T) {
	g := buildTriangle(t)
	sa := pathThrough(g, "S", "A")
	children := sa.Children(g.Rules())
	require.Len(t, children, 2)

	// Extending one sibling must not overwrite the other.
	longer := children[0].Extend(graphspace.Rule{Next: "S"}.Apply(children[0].Last()))
	assert.Equal(t, "SAGS", graphspace.FormatPath(longer))
	assert.Equal(t, "SAG", graphspace.FormatPath(children[0]))
	assert.Equal(t, "SAS", graphspace.FormatPath(children[1]))
}

func TestPath_ContainsAndStates(t *testing.T) {
	g := buildTriangle(t)
	p := pathThrough(g, "S", "A", "G")

	assert.True(t, p.Contains(g.StateAt("A")))
	assert.False(t, pathThrough(g, "S", "G").Contains(g.StateAt("A")))
	assert.Equal(t, 2.0, p.Cost())
	assert.Equal(t, []string{"S", "A", "G"}, graphspace.Vertices(p))

	states := p.States()
	states[0] = g.StateAt("G")
	assert.Equal(t, "S", p.First().(graphspace.State).Vertex, "States returns a copy")
}

func TestPath_String(t *testing.T) {
	g := buildTriangle(t)
	assert.Equal(t, "[S A G]", pathThrough(g, "S", "A", "G").String())
}

func TestApplyRules_PreservesRuleOrder(t *testing.T) {
	g := buildTriangle(t)
	moves := space.ApplyRules(g.Start(), g.Rules())
	require.Len(t, moves, 3)

	var targets []string
	var valid []bool
	for _, m := range moves {
		targets = append(targets, m.Rule.(graphspace.Rule).Next)
		valid = append(valid, m.Valid())
	}
	assert.Equal(t, []string{"A", "G", "S"}, targets)
	assert.Equal(t, []bool{true, true, false}, valid)
	assert.Equal(t, "A", moves[0].Apply().(graphspace.State).Vertex)
}

func TestInitialFrontier(t *testing.T) {
	g := buildTriangle(t)
	f := space.InitialFrontier(g)

	require.Equal(t, 1, f.Len())
	assert.Equal(t, "S", graphspace.FormatPath(f.Front()))
}

// Package graphspace turns an undirected, weighted graph into a search
// problem: states are vertices, there is one production rule per vertex
// ("go to V"), and a move is valid when V is a neighbour of the current
// vertex. Each vertex carries a heuristic estimate h.
//
// The Graph is safe for concurrent use; many searches may share one graph.
package graphspace

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/lvsearch/space"
)

// Sentinel errors for graph construction and validation.
var (
	// ErrEmptyID indicates an empty vertex identifier.
	ErrEmptyID = errors.New("graphspace: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a missing vertex.
	ErrVertexNotFound = errors.New("graphspace: vertex not found")

	// ErrNegativeCost indicates an edge with a negative cost.
	ErrNegativeCost = errors.New("graphspace: edge cost is negative")

	// ErrNegativeHeuristic indicates a vertex with a negative estimate.
	ErrNegativeHeuristic = errors.New("graphspace: heuristic is negative")

	// ErrStartNotFound indicates the start vertex is not in the graph.
	ErrStartNotFound = errors.New("graphspace: start vertex not found")

	// ErrGoalNotFound indicates the goal vertex is not in the graph.
	ErrGoalNotFound = errors.New("graphspace: goal vertex not found")

	// ErrDuplicateRule indicates a vertex listed twice in the rule order.
	ErrDuplicateRule = errors.New("graphspace: duplicate vertex in rule order")
)

// DefaultCost is the cost of a move along a pair of vertices without an edge
// cost. Such moves are invalid anyway; the value only shows up in traces.
const DefaultCost = 1.0

// Option configures a Graph at construction.
type Option func(g *Graph)

// WithStart sets the start vertex (default "S").
func WithStart(id string) Option {
	return func(g *Graph) { g.start = id }
}

// WithGoal sets the goal vertex (default "G").
func WithGoal(id string) Option {
	return func(g *Graph) { g.goal = id }
}

// WithRuleOrder fixes the order in which "go to" rules are applied.
// Without it, rules follow the vertex IDs in ascending order.
func WithRuleOrder(ids ...string) Option {
	return func(g *Graph) { g.order = append([]string(nil), ids...) }
}

// Graph is an undirected graph with per-edge costs and per-vertex
// heuristic estimates. It implements space.Problem.
type Graph struct {
	mu sync.RWMutex // guards every field below

	start, goal string
	order       []string

	heuristic map[string]float64            // vertex ID → h
	adjacency map[string]map[string]float64 // u → v → cost
}

// NewGraph returns an empty graph with start "S" and goal "G".
// Complexity: O(1).
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		start:     "S",
		goal:      "G",
		heuristic: make(map[string]float64),
		adjacency: make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddVertex inserts id with estimate h, or updates h if id exists.
func (g *Graph) AddVertex(id string, h float64) error {
	if id == "" {
		return ErrEmptyID
	}
	if h < 0 {
		return fmt.Errorf("%w: h(%s)=%g", ErrNegativeHeuristic, id, h)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)
	g.heuristic[id] = h

	return nil
}

// SetHeuristic updates the estimate of an existing vertex.
func (g *Graph) SetHeuristic(id string, h float64) error {
	if h < 0 {
		return fmt.Errorf("%w: h(%s)=%g", ErrNegativeHeuristic, id, h)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.heuristic[id]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	g.heuristic[id] = h

	return nil
}

// AddEdge connects u and v in both directions with the given cost, adding
// missing vertices with h = 0. Re-adding an edge overwrites its cost.
func (g *Graph) AddEdge(u, v string, cost float64) error {
	if u == "" || v == "" {
		return ErrEmptyID
	}
	if cost < 0 {
		return fmt.Errorf("%w: %s–%s cost=%g", ErrNegativeCost, u, v, cost)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(u)
	g.addVertexLocked(v)
	g.adjacency[u][v] = cost
	g.adjacency[v][u] = cost

	return nil
}

// addVertexLocked registers id with h = 0 if missing. Caller holds mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.heuristic[id]; !ok {
		g.heuristic[id] = 0
	}
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]float64)
	}
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.heuristic[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.heuristic))
	for id := range g.heuristic {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the neighbours of id sorted ascending.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, 0, len(adj))
	for v := range adj {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// Adjacent reports whether an edge u–v exists.
func (g *Graph) Adjacent(u, v string) bool {
	_, ok := g.Cost(u, v)
	return ok
}

// Cost returns the cost of edge u–v.
func (g *Graph) Cost(u, v string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.adjacency[u][v]

	return c, ok
}

// Heuristic returns h(id); missing vertices report 0.
func (g *Graph) Heuristic(id string) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.heuristic[id]
}

// StartID returns the start vertex.
func (g *Graph) StartID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start
}

// GoalID returns the goal vertex.
func (g *Graph) GoalID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.goal
}

// Validate checks that start, goal and every ID of the rule order exist,
// and that the rule order names each vertex at most once.
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.heuristic[g.start]; !ok {
		return fmt.Errorf("%w: %q", ErrStartNotFound, g.start)
	}
	if _, ok := g.heuristic[g.goal]; !ok {
		return fmt.Errorf("%w: %q", ErrGoalNotFound, g.goal)
	}
	seen := make(map[string]bool, len(g.order))
	for _, id := range g.order {
		if _, ok := g.heuristic[id]; !ok {
			return fmt.Errorf("%w: rule order names %q", ErrVertexNotFound, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: %q", ErrDuplicateRule, id)
		}
		seen[id] = true
	}

	return nil
}

// Rules returns one "go to" rule per vertex, in the configured order or
// ascending by ID.
func (g *Graph) Rules() []space.Rule {
	g.mu.RLock()
	ids := g.order
	g.mu.RUnlock()
	if len(ids) == 0 {
		ids = g.Vertices()
	}
	rules := make([]space.Rule, len(ids))
	for i, id := range ids {
		rules[i] = Rule{Next: id}
	}

	return rules
}

// Start returns the state at the start vertex.
func (g *Graph) Start() space.State {
	return State{graph: g, Vertex: g.StartID()}
}

// StateAt returns the state at vertex id.
func (g *Graph) StateAt(id string) State {
	return State{graph: g, Vertex: id}
}

var _ space.Problem = (*Graph)(nil)

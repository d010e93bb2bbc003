// Package problemfile reads search problems from YAML documents.
//
// A graph problem:
//
//	kind: graph
//	start: S
//	goal: G
//	order: [A, G, S]          # optional rule order
//	heuristic: {S: 2, A: 1, G: 0}
//	edges:
//	  - [S, A, 1]
//	  - [A, G, 1]
//	  - [S, G]                # cost defaults to 1
//	  - {from: A, to: B, cost: 3}
//
// A maze problem:
//
//	kind: maze
//	maze:
//	  rows: ["*..", ".#.", "..o"]
//	  step_cost: 1            # optional, default 1
//	  connectivity: 4         # 4 or 8
//	  rules: [L, R, U, D]     # optional rule order
package problemfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/graphspace"
	"github.com/katalvlaran/lvsearch/gridspace"
	"github.com/katalvlaran/lvsearch/space"
)

// Sentinel errors for problem files.
var (
	// ErrUnknownKind indicates a kind other than "graph" or "maze".
	ErrUnknownKind = errors.New("problemfile: unknown problem kind")

	// ErrBadEdge indicates a malformed edge entry.
	ErrBadEdge = errors.New("problemfile: malformed edge")

	// ErrMissingMaze indicates a maze problem without a maze section.
	ErrMissingMaze = errors.New("problemfile: maze section is missing")

	// ErrBadRule indicates an unknown maze rule name.
	ErrBadRule = errors.New("problemfile: unknown maze rule")

	// ErrBadConnectivity indicates a connectivity other than 4 or 8.
	ErrBadConnectivity = errors.New("problemfile: connectivity must be 4 or 8")
)

// Kind names a problem domain.
type Kind string

const (
	KindGraph Kind = "graph"
	KindMaze  Kind = "maze"
)

// document mirrors the YAML layout.
type document struct {
	Kind      Kind               `yaml:"kind"`
	Start     string             `yaml:"start"`
	Goal      string             `yaml:"goal"`
	Order     []string           `yaml:"order"`
	Heuristic map[string]float64 `yaml:"heuristic"`
	Edges     []edgeSpec         `yaml:"edges"`
	Maze      *mazeSpec          `yaml:"maze"`
}

type mazeSpec struct {
	Rows         []string `yaml:"rows"`
	StepCost     *float64 `yaml:"step_cost"`
	Connectivity int      `yaml:"connectivity"`
	Rules        []string `yaml:"rules"`
}

// edgeSpec accepts [u, v], [u, v, cost] or {from, to, cost}.
type edgeSpec graphspace.Edge

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *edgeSpec) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.MappingNode:
		var m struct {
			From string   `yaml:"from"`
			To   string   `yaml:"to"`
			Cost *float64 `yaml:"cost"`
		}
		if err := n.Decode(&m); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadEdge, n.Line, err)
		}
		e.U, e.V, e.Cost = m.From, m.To, graphspace.DefaultCost
		if m.Cost != nil {
			e.Cost = *m.Cost
		}
	case yaml.SequenceNode:
		if len(n.Content) != 2 && len(n.Content) != 3 {
			return fmt.Errorf("%w: line %d: want [u, v] or [u, v, cost], got %d items", ErrBadEdge, n.Line, len(n.Content))
		}
		e.U, e.V, e.Cost = n.Content[0].Value, n.Content[1].Value, graphspace.DefaultCost
		if len(n.Content) == 3 {
			c, err := strconv.ParseFloat(n.Content[2].Value, 64)
			if err != nil {
				return fmt.Errorf("%w: line %d: cost %q: %v", ErrBadEdge, n.Line, n.Content[2].Value, err)
			}
			e.Cost = c
		}
	default:
		return fmt.Errorf("%w: line %d: want a sequence or mapping", ErrBadEdge, n.Line)
	}
	if e.U == "" || e.V == "" {
		return fmt.Errorf("%w: line %d: empty vertex", ErrBadEdge, n.Line)
	}

	return nil
}

// Problem is a loaded search problem with a domain-aware path formatter.
type Problem struct {
	space.Problem
	Kind  Kind
	Graph *graphspace.Graph // set for KindGraph
	Maze  *gridspace.Maze   // set for KindMaze
}

// Format renders a path in the domain's notation: vertex IDs for graphs,
// a marked grid for mazes.
func (p *Problem) Format(path space.Path) string {
	if path.Len() == 0 {
		return ""
	}
	if p.Kind == KindMaze {
		return p.Maze.Render(path)
	}

	return graphspace.FormatPath(path)
}

// Load reads and parses the file at path.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problemfile: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse decodes one YAML problem document.
func Parse(data []byte) (*Problem, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("problemfile: decode: %w", err)
	}
	switch Kind(strings.ToLower(string(doc.Kind))) {
	case KindGraph, "":
		return buildGraph(doc)
	case KindMaze:
		return buildMaze(doc)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, doc.Kind)
}

func buildGraph(doc document) (*Problem, error) {
	var opts []graphspace.Option
	if doc.Start != "" {
		opts = append(opts, graphspace.WithStart(doc.Start))
	}
	if doc.Goal != "" {
		opts = append(opts, graphspace.WithGoal(doc.Goal))
	}
	if len(doc.Order) > 0 {
		opts = append(opts, graphspace.WithRuleOrder(doc.Order...))
	}
	edges := make([]graphspace.Edge, len(doc.Edges))
	for i, e := range doc.Edges {
		edges[i] = graphspace.Edge(e)
	}
	g, err := graphspace.Build(edges, doc.Heuristic, opts...)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return &Problem{Problem: g, Kind: KindGraph, Graph: g}, nil
}

func buildMaze(doc document) (*Problem, error) {
	if doc.Maze == nil {
		return nil, ErrMissingMaze
	}
	opts := gridspace.DefaultMazeOptions()
	switch doc.Maze.Connectivity {
	case 0, 4:
		opts.Conn = gridspace.Conn4
	case 8:
		opts.Conn = gridspace.Conn8
	default:
		return nil, fmt.Errorf("%w: got %d", ErrBadConnectivity, doc.Maze.Connectivity)
	}
	if doc.Maze.StepCost != nil {
		opts.StepCost = *doc.Maze.StepCost
	}
	for _, name := range doc.Maze.Rules {
		r, ok := gridspace.ParseRule(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadRule, name)
		}
		opts.Rules = append(opts.Rules, r)
	}
	m, err := gridspace.ParseMaze(doc.Maze.Rows, opts)
	if err != nil {
		return nil, err
	}

	return &Problem{Problem: m, Kind: KindMaze, Maze: m}, nil
}

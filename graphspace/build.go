package graphspace

// Edge is an undirected edge description used by Build.
type Edge struct {
	U, V string
	Cost float64
}

// Build creates a graph from edges and per-vertex estimates. Vertices named
// only in heuristic are added too. The first error aborts construction.
func Build(edges []Edge, heuristic map[string]float64, opts ...Option) (*Graph, error) {
	g := NewGraph(opts...)
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V, e.Cost); err != nil {
			return nil, err
		}
	}
	for id, h := range heuristic {
		if err := g.AddVertex(id, h); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Unit builds edges of cost 1 from vertex pairs, e.g. Unit("S", "A", "A", "G").
// A trailing unpaired ID is ignored.
func Unit(ids ...string) []Edge {
	out := make([]Edge, 0, len(ids)/2)
	for i := 0; i+1 < len(ids); i += 2 {
		out = append(out, Edge{U: ids[i], V: ids[i+1], Cost: 1})
	}

	return out
}

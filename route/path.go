package route

import "github.com/go-graphkit/graphkit/graph"

// Path is an ordered sequence of (from, to, edge) triples. Producers
// (TSP solvers, ShortestPaths.Path) are responsible for any tour
// invariant — contiguity, closure, one visit per vertex — Path itself
// enforces nothing beyond storing what it is given.
type Path[I comparable, E any] struct {
	edges []graph.Edge3[I, E]
}

// NewPath returns an empty Path.
func NewPath[I comparable, E any]() *Path[I, E] {
	return &Path[I, E]{}
}

// Push appends one more edge to the end of the path.
func (p *Path[I, E]) Push(from, to I, e E) {
	p.edges = append(p.edges, graph.Edge3[I, E]{From: from, To: to, Edge: e})
}

// Edges returns the underlying edge triples, in path order.
func (p *Path[I, E]) Edges() []graph.Edge3[I, E] {
	out := make([]graph.Edge3[I, E], len(p.edges))
	copy(out, p.edges)
	return out
}

// Vertices returns every vertex visited, in order: the first edge's From,
// then every edge's To. Empty for an empty path.
func (p *Path[I, E]) Vertices() []I {
	if len(p.edges) == 0 {
		return nil
	}
	out := make([]I, 0, len(p.edges)+1)
	out = append(out, p.edges[0].From)
	for _, e := range p.edges {
		out = append(out, e.To)
	}
	return out
}

// Len returns the number of edges in the path.
func (p *Path[I, E]) Len() int { return len(p.edges) }

// IsEmpty reports whether the path has no edges.
func (p *Path[I, E]) IsEmpty() bool { return len(p.edges) == 0 }

// TotalCost sums the weight of every edge in the path.
func TotalCost[I comparable, E graph.Weighted[W], W graph.Number](p *Path[I, E]) W {
	var total W
	for _, e := range p.edges {
		total += e.Edge.Weight()
	}
	return total
}

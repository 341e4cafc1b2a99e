package graph

import "golang.org/x/exp/constraints"

// Graph is a thin facade wrapping one Backend[I,V,E] realisation. Every
// method forwards directly; the facade exists so call sites depend on
// Graph, not on a concrete backend package, and so construction can pick
// list or matrix storage behind one name.
type Graph[I constraints.Ordered, V Identifiable[I], E any] struct {
	backend Backend[I, V, E]
}

// WrapBackend builds a Graph facade around an already-constructed backend.
// adjlist.New and adjmatrix.New return a Backend[I,V,E] directly; callers
// who want the facade call WrapBackend around either.
func WrapBackend[I constraints.Ordered, V Identifiable[I], E any](b Backend[I, V, E]) *Graph[I, V, E] {
	return &Graph[I, V, E]{backend: b}
}

// WrapFromVerticesAndEdges populates a fresh Graph wrapping a backend
// obtained from emptyFn, failing on the first invariant violation in
// vertex-then-edge order. It delegates to the package-level
// FromVerticesAndEdges (backend.go) and wraps the result.
func WrapFromVerticesAndEdges[I constraints.Ordered, V Identifiable[I], E any](
	emptyFn func() Backend[I, V, E],
	vertices []V,
	edges []Edge3[I, E],
) (*Graph[I, V, E], error) {
	b, err := FromVerticesAndEdges(emptyFn, vertices, edges)
	if err != nil {
		return nil, err
	}
	return WrapBackend(b), nil
}

// Backend returns the underlying Backend, for algorithm packages that take
// a Backend[I,V,E] parameter directly rather than a *Graph.
func (g *Graph[I, V, E]) Backend() Backend[I, V, E] {
	return g.backend
}

// AddVertex inserts v. Fails with *DuplicateVertexError[I] if v.ID()
// already exists.
func (g *Graph[I, V, E]) AddVertex(v V) error {
	return g.backend.AddVertex(v)
}

// AddEdge inserts an edge from->to carrying payload e.
func (g *Graph[I, V, E]) AddEdge(from, to I, e E) error {
	return g.backend.AddEdge(from, to, e)
}

// Vertex returns the vertex payload for id, and whether it exists.
func (g *Graph[I, V, E]) Vertex(id I) (V, bool) {
	return g.backend.Vertex(id)
}

// VertexPtr returns a pointer into the backend's own storage for id, and
// whether it exists.
func (g *Graph[I, V, E]) VertexPtr(id I) (*V, bool) {
	return g.backend.VertexPtr(id)
}

// Edge returns the edge payload stored for the directed slot (from, to).
func (g *Graph[I, V, E]) Edge(from, to I) (E, bool) {
	return g.backend.Edge(from, to)
}

// SetEdge overwrites the payload already stored for (from, to).
func (g *Graph[I, V, E]) SetEdge(from, to I, e E) error {
	return g.backend.SetEdge(from, to, e)
}

// EdgePtr returns a pointer into the backend's own storage for (from, to).
func (g *Graph[I, V, E]) EdgePtr(from, to I) (*E, bool) {
	return g.backend.EdgePtr(from, to)
}

// Vertices returns every vertex, in backend storage order.
func (g *Graph[I, V, E]) Vertices() []V {
	return g.backend.Vertices()
}

// Edges returns every edge, canonicalised once per undirected pair.
func (g *Graph[I, V, E]) Edges() []Edge3[I, E] {
	return g.backend.Edges()
}

// Neighbors returns the ids reachable from id by one outgoing edge.
func (g *Graph[I, V, E]) Neighbors(id I) ([]I, error) {
	return g.backend.Neighbors(id)
}

// NeighborEdges returns, for each neighbour of id, the connecting triple.
func (g *Graph[I, V, E]) NeighborEdges(id I) ([]Edge3[I, E], error) {
	return g.backend.NeighborEdges(id)
}

// VertexCount returns the number of vertices.
func (g *Graph[I, V, E]) VertexCount() int {
	return g.backend.VertexCount()
}

// EdgeCount returns the number of edges.
func (g *Graph[I, V, E]) EdgeCount() int {
	return g.backend.EdgeCount()
}

// Directed reports whether this Graph was constructed with a Directed
// marker.
func (g *Graph[I, V, E]) Directed() bool {
	return g.backend.Directed()
}

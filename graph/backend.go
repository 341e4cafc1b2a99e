package graph

import "golang.org/x/exp/constraints"

// Backend is the polymorphic seat of storage. adjlist and adjmatrix are the
// two provided realisations; algorithms are written once against this
// interface and monomorphise over either.
//
// Construction lives outside the interface (Go has no static/constructor
// methods on interfaces): each backend package exposes New, NewWithCapacity
// and FromVerticesAndEdges as free functions with the same signatures.
//
// Vertex ids are constraints.Ordered, not just comparable: Edges() must
// canonicalise each undirected pair by From <= To, which needs a total
// order, not just equality.
//
// Edge insertion is direction-polymorphic: an Undirected-constructed backend
// inserts both half-arcs on one AddEdge call (so Neighbors/NeighborEdges see
// the mirror from either endpoint), but Edges()/EdgeCount() report each
// undirected pair exactly once, oriented so From <= To regardless of which
// order the caller passed to AddEdge.
type Backend[I constraints.Ordered, V Identifiable[I], E any] interface {
	// AddVertex inserts v. Fails with *DuplicateVertexError[I] if v.ID()
	// already exists.
	AddVertex(v V) error

	// AddEdge inserts an edge from->to carrying payload e. Fails with
	// *VertexNotFoundError[I] if either endpoint is absent, or
	// *DuplicateEdgeError[I] if that directed slot is already filled.
	AddEdge(from, to I, e E) error

	// Vertex returns the vertex payload for id, and whether it exists.
	Vertex(id I) (V, bool)

	// VertexPtr returns a pointer into the backend's own storage for id,
	// and whether it exists. Used by mutable traversal; the pointer must
	// not outlive the backend.
	VertexPtr(id I) (*V, bool)

	// Edge returns the edge payload stored for the directed slot
	// (from, to), and whether it exists.
	Edge(from, to I) (E, bool)

	// EdgePtr returns a pointer into the backend's own storage for the
	// directed slot (from, to), and whether it exists — the edge
	// counterpart to VertexPtr, used when a caller needs to mutate a field
	// of E in place (Edmonds-Karp's flow write-back) rather than replace
	// the whole payload via SetEdge. The pointer must not outlive the
	// backend, and for an Undirected backend only the (from, to) view is
	// returned; mutating through it does not itself update the mirrored
	// (to, from) slot — use SetEdge when both views must change together.
	EdgePtr(from, to I) (*E, bool)

	// SetEdge overwrites the payload already stored for (from, to) — unlike
	// AddEdge, it never inserts a new slot. Fails with
	// *EdgeNotFoundError[I] if AddEdge has never populated that slot. For an
	// Undirected backend this updates both the (from,to) and (to,from)
	// views of the same logical edge. Used by algorithms (Edmonds-Karp's
	// residual graph) that mutate an edge payload in place instead of
	// rebuilding the backend.
	SetEdge(from, to I, e E) error

	// Vertices returns every vertex, in backend storage order.
	Vertices() []V

	// Edges returns every edge exactly once. For a Directed backend this is
	// one entry per AddEdge call, in call order, with From/To as given.
	// For an Undirected backend, each stored pair is reported with From <=
	// To regardless of the order the caller originally passed.
	Edges() []Edge3[I, E]

	// Neighbors returns the ids reachable from id by one outgoing edge, in
	// neighbour-insertion order. Fails with *VertexNotFoundError[I] if id
	// is absent.
	Neighbors(id I) ([]I, error)

	// NeighborEdges returns, for each neighbour of id, the (id, neighbour,
	// edge) triple connecting them — same order and failure mode as
	// Neighbors.
	NeighborEdges(id I) ([]Edge3[I, E], error)

	// VertexCount returns the number of vertices.
	VertexCount() int

	// EdgeCount returns len(Edges()): one per AddEdge call for a Directed
	// backend, one per canonicalised undirected pair otherwise.
	EdgeCount() int

	// Directed reports whether this backend was constructed with a
	// Directed marker.
	Directed() bool
}

// TotalWeight sums the weight of every edge returned by b.Edges(). Since
// Edges() already reports each undirected pair once, no halving is needed
// here.
func TotalWeight[I constraints.Ordered, V Identifiable[I], E Weighted[W], W Number](b Backend[I, V, E]) W {
	var total W
	for _, e := range b.Edges() {
		total += e.Edge.Weight()
	}
	return total
}

// FromVerticesAndEdges builds a fresh Backend of the same concrete type as
// empty (obtained by calling emptyFn, typically a backend package's New
// function closed over I/V/E) and populates it from vertices and edges in
// order, failing on the first invariant violation — the one constructor
// external collaborators (a corpus loader, a benchmark harness) are meant to
// use.
func FromVerticesAndEdges[I constraints.Ordered, V Identifiable[I], E any](
	emptyFn func() Backend[I, V, E],
	vertices []V,
	edges []Edge3[I, E],
) (Backend[I, V, E], error) {
	b := emptyFn()
	for _, v := range vertices {
		if err := b.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if err := b.AddEdge(e.From, e.To, e.Edge); err != nil {
			return nil, err
		}
	}
	return b, nil
}

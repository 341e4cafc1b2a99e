package adjlist

import (
	"golang.org/x/exp/constraints"

	"github.com/go-graphkit/graphkit/graph"
)

type halfArc[I comparable, E any] struct {
	to   I
	edge E
}

// Backend is the adjacency-list realisation of graph.Backend[I,V,E].
type Backend[I constraints.Ordered, V graph.Identifiable[I], E any] struct {
	directed bool

	order    []I          // vertex insertion order
	vertices map[I]*V     // id -> stored vertex
	adj      map[I][]halfArc[I, E]
	adjIndex map[I]map[I]int // from -> to -> index into adj[from], for O(1) presence checks

	edges   []graph.Edge3[I, E] // one entry per AddEdge call, insertion order
	edgeIdx map[I]map[I]int     // from -> to -> index into edges, for SetEdge
}

// New returns an empty adjacency-list backend tagged with d.
func New[I constraints.Ordered, V graph.Identifiable[I], E any](d graph.Direction) *Backend[I, V, E] {
	return NewWithCapacity[I, V, E](d, 0)
}

// NewWithCapacity returns an empty adjacency-list backend tagged with d,
// pre-sizing its vertex storage for n vertices.
func NewWithCapacity[I constraints.Ordered, V graph.Identifiable[I], E any](d graph.Direction, n int) *Backend[I, V, E] {
	return &Backend[I, V, E]{
		directed: graph.IsDirected(d),
		order:    make([]I, 0, n),
		vertices: make(map[I]*V, n),
		adj:      make(map[I][]halfArc[I, E], n),
		adjIndex: make(map[I]map[I]int, n),
		edgeIdx:  make(map[I]map[I]int, n),
	}
}

// FromVerticesAndEdges builds a new adjacency-list backend tagged with d,
// populated from vertices then edges, failing on the first invariant
// violation.
func FromVerticesAndEdges[I constraints.Ordered, V graph.Identifiable[I], E any](
	d graph.Direction, vertices []V, edges []graph.Edge3[I, E],
) (*Backend[I, V, E], error) {
	b := NewWithCapacity[I, V, E](d, len(vertices))
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

func (b *Backend[I, V, E]) AddVertex(v V) error {
	id := v.ID()
	if _, exists := b.vertices[id]; exists {
		return &graph.DuplicateVertexError[I]{ID: id}
	}
	vv := v
	b.vertices[id] = &vv
	b.order = append(b.order, id)
	b.adj[id] = nil
	b.adjIndex[id] = make(map[I]int)
	b.edgeIdx[id] = make(map[I]int)
	return nil
}

func (b *Backend[I, V, E]) AddEdge(from, to I, e E) error {
	if _, ok := b.vertices[from]; !ok {
		return &graph.VertexNotFoundError[I]{ID: from}
	}
	if _, ok := b.vertices[to]; !ok {
		return &graph.VertexNotFoundError[I]{ID: to}
	}
	if _, dup := b.adjIndex[from][to]; dup {
		return &graph.DuplicateEdgeError[I]{From: from, To: to}
	}

	b.adjIndex[from][to] = len(b.adj[from])
	b.adj[from] = append(b.adj[from], halfArc[I, E]{to: to, edge: e})

	if !b.directed && from != to {
		b.adjIndex[to][from] = len(b.adj[to])
		b.adj[to] = append(b.adj[to], halfArc[I, E]{to: from, edge: e})
	}

	b.edgeIdx[from][to] = len(b.edges)
	if !b.directed && from != to {
		b.edgeIdx[to][from] = len(b.edges)
	}
	b.edges = append(b.edges, graph.Edge3[I, E]{From: from, To: to, Edge: e})
	return nil
}

func (b *Backend[I, V, E]) Vertex(id I) (V, bool) {
	p, ok := b.vertices[id]
	if !ok {
		var zero V
		return zero, false
	}
	return *p, true
}

func (b *Backend[I, V, E]) VertexPtr(id I) (*V, bool) {
	p, ok := b.vertices[id]
	return p, ok
}

func (b *Backend[I, V, E]) Edge(from, to I) (E, bool) {
	idx, ok := b.adjIndex[from][to]
	if !ok {
		var zero E
		return zero, false
	}
	return b.adj[from][idx].edge, true
}

func (b *Backend[I, V, E]) EdgePtr(from, to I) (*E, bool) {
	idx, ok := b.adjIndex[from][to]
	if !ok {
		return nil, false
	}
	return &b.adj[from][idx].edge, true
}

func (b *Backend[I, V, E]) SetEdge(from, to I, e E) error {
	idx, ok := b.adjIndex[from][to]
	if !ok {
		return &graph.EdgeNotFoundError[I]{From: from, To: to}
	}
	b.adj[from][idx].edge = e

	if !b.directed && from != to {
		revIdx := b.adjIndex[to][from]
		b.adj[to][revIdx].edge = e
	}

	listIdx := b.edgeIdx[from][to]
	b.edges[listIdx].Edge = e
	return nil
}

func (b *Backend[I, V, E]) Vertices() []V {
	out := make([]V, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.vertices[id])
	}
	return out
}

func (b *Backend[I, V, E]) Edges() []graph.Edge3[I, E] {
	out := make([]graph.Edge3[I, E], len(b.edges))
	for i, e := range b.edges {
		if !b.directed && e.To < e.From {
			e.From, e.To = e.To, e.From
		}
		out[i] = e
	}
	return out
}

func (b *Backend[I, V, E]) Neighbors(id I) ([]I, error) {
	arcs, ok := b.adj[id]
	if !ok {
		return nil, &graph.VertexNotFoundError[I]{ID: id}
	}
	out := make([]I, len(arcs))
	for i, a := range arcs {
		out[i] = a.to
	}
	return out, nil
}

func (b *Backend[I, V, E]) NeighborEdges(id I) ([]graph.Edge3[I, E], error) {
	arcs, ok := b.adj[id]
	if !ok {
		return nil, &graph.VertexNotFoundError[I]{ID: id}
	}
	out := make([]graph.Edge3[I, E], len(arcs))
	for i, a := range arcs {
		out[i] = graph.Edge3[I, E]{From: id, To: a.to, Edge: a.edge}
	}
	return out, nil
}

func (b *Backend[I, V, E]) VertexCount() int { return len(b.order) }

func (b *Backend[I, V, E]) EdgeCount() int { return len(b.edges) }

func (b *Backend[I, V, E]) Directed() bool { return b.directed }

package adjmatrix

import (
	"github.com/go-graphkit/graphkit/graph"
)

// Backend is the adjacency-matrix realisation of graph.Backend[I,V,E]: a
// flat, row-major []*E of size n*n, one cell per ordered (row, col) pair.
// A nil cell means no edge. Index maps a vertex id to its row/column,
// mirroring the teacher's AdjacencyMatrix.Index.
type Backend[I ~int, V graph.Identifiable[I], E any] struct {
	directed bool

	order    []I      // vertex insertion order
	index    map[I]int // id -> row/col index
	vertices []*V      // row index -> stored vertex
	cells    []*E       // flat n*n, row-major: cells[row*n+col]
	n        int

	edges   []graph.Edge3[I, E] // one entry per AddEdge call, insertion order
	edgeIdx map[[2]I]int        // (from,to) -> index into edges, for SetEdge
}

// New returns an empty adjacency-matrix backend tagged with d.
func New[I ~int, V graph.Identifiable[I], E any](d graph.Direction) *Backend[I, V, E] {
	return NewWithCapacity[I, V, E](d, 0)
}

// NewWithCapacity returns an empty adjacency-matrix backend tagged with d,
// pre-sizing its dense storage for n vertices.
func NewWithCapacity[I ~int, V graph.Identifiable[I], E any](d graph.Direction, n int) *Backend[I, V, E] {
	if n < 0 {
		n = 0
	}
	b := &Backend[I, V, E]{
		directed: graph.IsDirected(d),
		order:    make([]I, 0, n),
		index:    make(map[I]int, n),
		vertices: make([]*V, 0, n),
		edgeIdx:  make(map[[2]I]int),
	}
	b.growTo(n)
	return b
}

// FromVerticesAndEdges builds a new adjacency-matrix backend tagged with d,
// populated from vertices then edges, failing on the first invariant
// violation.
func FromVerticesAndEdges[I ~int, V graph.Identifiable[I], E any](
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

// growTo reallocates cells to an n x n grid, copying existing entries into
// the top-left corner. Called whenever a new vertex pushes n past the
// current dimension.
func (b *Backend[I, V, E]) growTo(newN int) {
	if newN <= b.n {
		return
	}
	newCells := make([]*E, newN*newN)
	for row := 0; row < b.n; row++ {
		copy(newCells[row*newN:row*newN+b.n], b.cells[row*b.n:row*b.n+b.n])
	}
	b.cells = newCells
	b.n = newN
}

func (b *Backend[I, V, E]) cellIndex(rowID, colID I) (int, bool) {
	row, ok := b.index[rowID]
	if !ok {
		return 0, false
	}
	col, ok := b.index[colID]
	if !ok {
		return 0, false
	}
	return row*b.n + col, true
}

func (b *Backend[I, V, E]) AddVertex(v V) error {
	id := v.ID()
	if _, exists := b.index[id]; exists {
		return &graph.DuplicateVertexError[I]{ID: id}
	}
	row := len(b.order)
	if int(id) != row {
		return graph.OperationFailedf("adjmatrix: vertex id %v must equal insertion index %d", id, row)
	}
	b.growTo(row + 1)

	vv := v
	b.index[id] = row
	b.order = append(b.order, id)
	b.vertices = append(b.vertices, &vv)
	return nil
}

func (b *Backend[I, V, E]) AddEdge(from, to I, e E) error {
	rowFrom, ok := b.index[from]
	if !ok {
		return &graph.VertexNotFoundError[I]{ID: from}
	}
	rowTo, ok := b.index[to]
	if !ok {
		return &graph.VertexNotFoundError[I]{ID: to}
	}

	if b.cells[rowFrom*b.n+rowTo] != nil {
		return &graph.DuplicateEdgeError[I]{From: from, To: to}
	}

	ee := e
	b.cells[rowFrom*b.n+rowTo] = &ee
	if !b.directed && from != to {
		eeMirror := e
		b.cells[rowTo*b.n+rowFrom] = &eeMirror
	}

	b.edgeIdx[[2]I{from, to}] = len(b.edges)
	if !b.directed && from != to {
		b.edgeIdx[[2]I{to, from}] = len(b.edges)
	}
	b.edges = append(b.edges, graph.Edge3[I, E]{From: from, To: to, Edge: e})
	return nil
}

func (b *Backend[I, V, E]) EdgePtr(from, to I) (*E, bool) {
	idx, ok := b.cellIndex(from, to)
	if !ok || b.cells[idx] == nil {
		return nil, false
	}
	return b.cells[idx], true
}

func (b *Backend[I, V, E]) SetEdge(from, to I, e E) error {
	idx, ok := b.cellIndex(from, to)
	if !ok || b.cells[idx] == nil {
		return &graph.EdgeNotFoundError[I]{From: from, To: to}
	}
	*b.cells[idx] = e

	if !b.directed && from != to {
		revIdx, _ := b.cellIndex(to, from)
		*b.cells[revIdx] = e
	}

	listIdx := b.edgeIdx[[2]I{from, to}]
	b.edges[listIdx].Edge = e
	return nil
}

func (b *Backend[I, V, E]) Vertex(id I) (V, bool) {
	row, ok := b.index[id]
	if !ok {
		var zero V
		return zero, false
	}
	return *b.vertices[row], true
}

func (b *Backend[I, V, E]) VertexPtr(id I) (*V, bool) {
	row, ok := b.index[id]
	if !ok {
		return nil, false
	}
	return b.vertices[row], true
}

func (b *Backend[I, V, E]) Edge(from, to I) (E, bool) {
	idx, ok := b.cellIndex(from, to)
	if !ok || b.cells[idx] == nil {
		var zero E
		return zero, false
	}
	return *b.cells[idx], true
}

func (b *Backend[I, V, E]) Vertices() []V {
	out := make([]V, len(b.order))
	for i, id := range b.order {
		row := b.index[id]
		out[i] = *b.vertices[row]
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
	row, ok := b.index[id]
	if !ok {
		return nil, &graph.VertexNotFoundError[I]{ID: id}
	}
	var out []I
	for col := 0; col < b.n; col++ {
		if b.cells[row*b.n+col] != nil {
			out = append(out, b.order[col])
		}
	}
	return out, nil
}

func (b *Backend[I, V, E]) NeighborEdges(id I) ([]graph.Edge3[I, E], error) {
	row, ok := b.index[id]
	if !ok {
		return nil, &graph.VertexNotFoundError[I]{ID: id}
	}
	var out []graph.Edge3[I, E]
	for col := 0; col < b.n; col++ {
		cell := b.cells[row*b.n+col]
		if cell == nil {
			continue
		}
		toID := b.order[col]
		out = append(out, graph.Edge3[I, E]{From: id, To: toID, Edge: *cell})
	}
	return out, nil
}

func (b *Backend[I, V, E]) VertexCount() int { return len(b.order) }

func (b *Backend[I, V, E]) EdgeCount() int { return len(b.edges) }

func (b *Backend[I, V, E]) Directed() bool { return b.directed }

package traverse

import (
	"golang.org/x/exp/constraints"

	"github.com/go-graphkit/graphkit/graph"
)

// VertexIter is the pull-iterator contract shared by BFSIter and DFSIter:
// call Next until it reports false, reading Vertex/ID after each true.
type VertexIter[I comparable, V any] interface {
	Next() bool
	Vertex() V
	ID() I
}

// Kind selects which traversal algorithm Iter dispatches to.
type Kind int

const (
	KindBFS Kind = iota
	KindDFS
)

func (k Kind) String() string {
	switch k {
	case KindBFS:
		return "BFS"
	case KindDFS:
		return "DFS"
	default:
		return "unknown"
	}
}

// BFSIter lazily yields vertices in breadth-first order from start,
// discovering each vertex's neighbours the moment it is dequeued rather
// than walking the whole graph up front.
type BFSIter[I constraints.Ordered, V graph.Identifiable[I], E any] struct {
	backend graph.Backend[I, V, E]
	queue   []I
	visited map[I]bool
	current I
}

// NewBFSIter returns a BFSIter starting at start. Fails with
// *graph.VertexNotFoundError[I] if start does not exist in b.
func NewBFSIter[I constraints.Ordered, V graph.Identifiable[I], E any](b graph.Backend[I, V, E], start I) (*BFSIter[I, V, E], error) {
	if _, ok := b.Vertex(start); !ok {
		return nil, &graph.VertexNotFoundError[I]{ID: start}
	}
	return &BFSIter[I, V, E]{
		backend: b,
		queue:   []I{start},
		visited: map[I]bool{start: true},
	}, nil
}

// Next advances to the next vertex in BFS order and reports whether one
// was available.
func (it *BFSIter[I, V, E]) Next() bool {
	if len(it.queue) == 0 {
		return false
	}
	id := it.queue[0]
	it.queue = it.queue[1:]
	it.current = id

	neighbors, _ := it.backend.Neighbors(id) // id came from the backend: cannot fail
	for _, n := range neighbors {
		if !it.visited[n] {
			it.visited[n] = true
			it.queue = append(it.queue, n)
		}
	}
	return true
}

// Vertex returns the vertex payload discovered by the most recent Next.
func (it *BFSIter[I, V, E]) Vertex() V {
	v, _ := it.backend.Vertex(it.current)
	return v
}

// ID returns the id of the vertex discovered by the most recent Next.
func (it *BFSIter[I, V, E]) ID() I { return it.current }

// BFSMutIter is BFSIter's mutable counterpart: VertexPtr returns a pointer
// into the backend's own storage instead of a copy.
//
// Precondition (documented, not compiler-enforced): do not retain a
// pointer returned by VertexPtr past the next call to Next, and do not
// mutate the backend's vertex set while this iterator is in use. Each
// vertex is yielded at most once, so aliasing two live pointers from the
// same iterator cannot happen as long as the caller drops the previous
// pointer before calling Next again.
type BFSMutIter[I constraints.Ordered, V graph.Identifiable[I], E any] struct {
	inner *BFSIter[I, V, E]
}

// NewBFSMutIter returns a BFSMutIter starting at start.
func NewBFSMutIter[I constraints.Ordered, V graph.Identifiable[I], E any](b graph.Backend[I, V, E], start I) (*BFSMutIter[I, V, E], error) {
	inner, err := NewBFSIter[I, V, E](b, start)
	if err != nil {
		return nil, err
	}
	return &BFSMutIter[I, V, E]{inner: inner}, nil
}

// Next advances to the next vertex in BFS order.
func (it *BFSMutIter[I, V, E]) Next() bool { return it.inner.Next() }

// ID returns the id of the vertex discovered by the most recent Next.
func (it *BFSMutIter[I, V, E]) ID() I { return it.inner.ID() }

// VertexPtr returns a pointer into the backend's storage for the vertex
// discovered by the most recent Next.
func (it *BFSMutIter[I, V, E]) VertexPtr() *V {
	p, _ := it.inner.backend.VertexPtr(it.inner.current)
	return p
}

// DFSIter lazily yields vertices in depth-first order from start, using
// an explicit stack rather than recursion.
type DFSIter[I constraints.Ordered, V graph.Identifiable[I], E any] struct {
	backend graph.Backend[I, V, E]
	stack   []I
	visited map[I]bool
	current I
}

// NewDFSIter returns a DFSIter starting at start. Fails with
// *graph.VertexNotFoundError[I] if start does not exist in b.
func NewDFSIter[I constraints.Ordered, V graph.Identifiable[I], E any](b graph.Backend[I, V, E], start I) (*DFSIter[I, V, E], error) {
	if _, ok := b.Vertex(start); !ok {
		return nil, &graph.VertexNotFoundError[I]{ID: start}
	}
	return &DFSIter[I, V, E]{
		backend: b,
		stack:   []I{start},
		visited: map[I]bool{start: true},
	}, nil
}

// Next advances to the next vertex in DFS order and reports whether one
// was available.
func (it *DFSIter[I, V, E]) Next() bool {
	if len(it.stack) == 0 {
		return false
	}
	last := len(it.stack) - 1
	id := it.stack[last]
	it.stack = it.stack[:last]
	it.current = id

	neighbors, _ := it.backend.Neighbors(id)
	for _, n := range neighbors {
		if !it.visited[n] {
			it.visited[n] = true
			it.stack = append(it.stack, n)
		}
	}
	return true
}

// Vertex returns the vertex payload discovered by the most recent Next.
func (it *DFSIter[I, V, E]) Vertex() V {
	v, _ := it.backend.Vertex(it.current)
	return v
}

// ID returns the id of the vertex discovered by the most recent Next.
func (it *DFSIter[I, V, E]) ID() I { return it.current }

// Iter dispatches to NewBFSIter or NewDFSIter by kind, returning both
// behind the shared VertexIter interface.
func Iter[I constraints.Ordered, V graph.Identifiable[I], E any](b graph.Backend[I, V, E], start I, kind Kind) (VertexIter[I, V], error) {
	switch kind {
	case KindDFS:
		return NewDFSIter[I, V, E](b, start)
	default:
		return NewBFSIter[I, V, E](b, start)
	}
}

// VertexMutIter is the pull-iterator contract for mutable traversal: like
// VertexIter, but VertexPtr replaces Vertex.
type VertexMutIter[I comparable, V any] interface {
	Next() bool
	ID() I
	VertexPtr() *V
}

// IterMut is Iter's mutable counterpart. Only BFS has a mutable variant, so
// this always returns a BFSMutIter; it exists to give callers a single
// dispatch entry point for mutable traversal, symmetric with Iter.
func IterMut[I constraints.Ordered, V graph.Identifiable[I], E any](b graph.Backend[I, V, E], start I) (VertexMutIter[I, V], error) {
	return NewBFSMutIter[I, V, E](b, start)
}

// CountConnectedComponents counts the maximal reachable sets of b, running
// kind (default BFS) from each unvisited vertex in storage order and
// following only outgoing edges — for a Directed backend this counts
// weakly-reachable-by-forward-edge components, not strongly connected
// components; callers who need strong connectivity must run it from both
// a graph and its transpose themselves.
func CountConnectedComponents[I constraints.Ordered, V graph.Identifiable[I], E any](b graph.Backend[I, V, E], kind Kind) int {
	visited := make(map[I]bool, b.VertexCount())
	count := 0
	for _, v := range b.Vertices() {
		id := v.ID()
		if visited[id] {
			continue
		}
		count++
		it, _ := Iter[I, V, E](b, id, kind) // id came from b.Vertices(): cannot fail
		for it.Next() {
			visited[it.ID()] = true
		}
	}
	return count
}

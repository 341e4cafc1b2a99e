package mst

import (
	"container/heap"
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/go-graphkit/graphkit/graph"
	"github.com/go-graphkit/graphkit/unionfind"
)

// Prim grows a minimum spanning tree of input outward from start (or an
// arbitrary vertex, if start is nil) into output, using a min-heap of
// edges crossing the frontier between the tree and the rest of the graph.
// Fails with *graph.VertexNotFoundError[I] if start is non-nil and absent
// from input.
func Prim[I constraints.Ordered, V graph.Identifiable[I], E graph.Weighted[W], W graph.Number](
	input graph.Backend[I, V, E],
	output graph.Backend[I, V, E],
	start *I,
) error {
	vertices := input.Vertices()
	if len(vertices) == 0 {
		return nil
	}

	startID := vertices[0].ID()
	if start != nil {
		startID = *start
	}
	startVertex, ok := input.Vertex(startID)
	if !ok {
		return &graph.VertexNotFoundError[I]{ID: startID}
	}
	if err := output.AddVertex(startVertex); err != nil {
		return err
	}

	inTree := map[I]bool{startID: true}
	pq := &edgePQ[I, E, W]{}
	heap.Init(pq)

	pushIncident := func(id I) error {
		edges, err := input.NeighborEdges(id)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if !inTree[e.To] {
				heap.Push(pq, e)
			}
		}
		return nil
	}
	if err := pushIncident(startID); err != nil {
		return err
	}

	for pq.Len() > 0 && len(inTree) < len(vertices) {
		e := heap.Pop(pq).(graph.Edge3[I, E])
		if inTree[e.To] {
			continue
		}

		headVertex, _ := input.Vertex(e.To) // e.To came from input.NeighborEdges: cannot fail
		if err := output.AddVertex(headVertex); err != nil {
			return err
		}
		if err := output.AddEdge(e.From, e.To, e.Edge); err != nil {
			return err
		}
		inTree[e.To] = true

		if err := pushIncident(e.To); err != nil {
			return err
		}
	}
	return nil
}

// Kruskal builds a minimum spanning tree of input into output by sorting
// every edge ascending by weight and adding each one whose endpoints are
// still in different union-find components, stopping after |V|-1 edges.
func Kruskal[I constraints.Ordered, V graph.Identifiable[I], E graph.Weighted[W], W graph.Number](
	input graph.Backend[I, V, E],
	output graph.Backend[I, V, E],
) error {
	vertices := input.Vertices()
	if len(vertices) == 0 {
		return nil
	}

	uf := unionfind.NewWithCapacity[I](len(vertices))
	for _, v := range vertices {
		if err := output.AddVertex(v); err != nil {
			return err
		}
		if err := uf.MakeSet(v.ID()); err != nil {
			return err
		}
	}

	edges := input.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Edge.Weight() < edges[j].Edge.Weight()
	})

	need := len(vertices) - 1
	added := 0
	for _, e := range edges {
		if added >= need {
			break
		}
		merged, err := uf.Union(e.From, e.To)
		if err != nil {
			return err
		}
		if !merged {
			continue // endpoints already connected: this edge would close a cycle
		}
		if err := output.AddEdge(e.From, e.To, e.Edge); err != nil {
			return err
		}
		added++
	}
	return nil
}

// edgePQ is a min-heap of graph.Edge3, ordered by the carried edge's
// Weight ascending. Used by Prim to track edges crossing the current cut.
type edgePQ[I comparable, E graph.Weighted[W], W graph.Number] []graph.Edge3[I, E]

func (pq edgePQ[I, E, W]) Len() int { return len(pq) }
func (pq edgePQ[I, E, W]) Less(i, j int) bool {
	return pq[i].Edge.Weight() < pq[j].Edge.Weight()
}
func (pq edgePQ[I, E, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ[I, E, W]) Push(x any) {
	*pq = append(*pq, x.(graph.Edge3[I, E]))
}

func (pq *edgePQ[I, E, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

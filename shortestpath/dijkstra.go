package shortestpath

import (
	"container/heap"

	"golang.org/x/exp/constraints"

	"github.com/go-graphkit/graphkit/graph"
	"github.com/go-graphkit/graphkit/route"
)

// Dijkstra computes shortest-path costs from start to every vertex
// reachable with non-negative edge weights, terminating early if goal is
// non-nil and is popped off the heap before the heap empties. Fails with
// *graph.VertexNotFoundError[I] if start is absent from b.
func Dijkstra[I constraints.Ordered, V graph.Identifiable[I], E graph.Weighted[W], W graph.Number](
	b graph.Backend[I, V, E],
	start I,
	goal *I,
) (*route.ShortestPaths[I, W], error) {
	if _, ok := b.Vertex(start); !ok {
		return nil, &graph.VertexNotFoundError[I]{ID: start}
	}

	var zero W
	costs := map[I]W{start: zero}
	predecessors := map[I]I{}
	settled := map[I]bool{}

	pq := &costPQ[I, W]{}
	heap.Init(pq)
	heap.Push(pq, costItem[I, W]{id: start, cost: zero})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(costItem[I, W])
		if settled[item.id] {
			continue
		}
		settled[item.id] = true
		if goal != nil && item.id == *goal {
			break
		}

		edges, err := b.NeighborEdges(item.id)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if settled[e.To] {
				continue
			}
			newCost := item.cost + e.Edge.Weight()
			if cur, ok := costs[e.To]; ok && newCost >= cur {
				continue
			}
			costs[e.To] = newCost
			predecessors[e.To] = item.id
			heap.Push(pq, costItem[I, W]{id: e.To, cost: newCost})
		}
	}

	return route.NewShortestPaths(start, costs, predecessors), nil
}

// costItem pairs a vertex id with its tentative cost, the unit stored in
// costPQ.
type costItem[I comparable, W graph.Number] struct {
	id   I
	cost W
}

// costPQ is a min-heap of costItem ordered by cost ascending, using the
// same lazy decrease-key strategy as the teacher's nodePQ: a vertex may be
// pushed more than once, and stale entries are discarded on pop via the
// settled set.
type costPQ[I comparable, W graph.Number] []costItem[I, W]

func (pq costPQ[I, W]) Len() int            { return len(pq) }
func (pq costPQ[I, W]) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq costPQ[I, W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *costPQ[I, W]) Push(x any)         { *pq = append(*pq, x.(costItem[I, W])) }
func (pq *costPQ[I, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

package shortestpath

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/go-graphkit/graphkit/graph"
	"github.com/go-graphkit/graphkit/route"
)

// NegativeCycleError is returned by BellmanFord when start can reach a
// negative-weight cycle. Cycle is an ordered vertex walk that returns to
// its own first element (Cycle[0] == Cycle[len(Cycle)-1]).
type NegativeCycleError[I any] struct {
	Cycle []I
}

func (e *NegativeCycleError[I]) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, v := range e.Cycle {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("shortestpath: negative cycle reachable from start: %s", strings.Join(parts, " -> "))
}

// BellmanFord computes shortest-path costs from start using a queue-based
// (SPFA-style) relaxation: only vertices whose cost improved in the
// previous pass ("the frontier") have their outgoing edges relaxed in the
// next one. Fails with *graph.VertexNotFoundError[I] if start is absent
// from b, or with *NegativeCycleError[I] if a pass still changes something
// on the |V|-th iteration.
func BellmanFord[I constraints.Ordered, V graph.Identifiable[I], E graph.Weighted[W], W graph.Number](
	b graph.Backend[I, V, E],
	start I,
) (*route.ShortestPaths[I, W], error) {
	if _, ok := b.Vertex(start); !ok {
		return nil, &graph.VertexNotFoundError[I]{ID: start}
	}

	n := b.VertexCount()
	var zero W
	costs := map[I]W{start: zero}
	predecessors := map[I]I{}
	frontier := map[I]bool{start: true}

	for pass := 0; pass < n; pass++ {
		nextFrontier := map[I]bool{}
		changed := false

		for v := range frontier {
			edges, err := b.NeighborEdges(v)
			if err != nil {
				return nil, err
			}
			for _, e := range edges {
				newCost := costs[v] + e.Edge.Weight()
				if cur, ok := costs[e.To]; ok && newCost >= cur {
					continue
				}
				costs[e.To] = newCost
				predecessors[e.To] = v
				nextFrontier[e.To] = true
				changed = true
			}
		}

		if !changed {
			return route.NewShortestPaths(start, costs, predecessors), nil
		}
		if pass == n-1 {
			return nil, &NegativeCycleError[I]{Cycle: reconstructCycle(nextFrontier, predecessors)}
		}
		frontier = nextFrontier
	}

	return route.NewShortestPaths(start, costs, predecessors), nil
}

// reconstructCycle follows predecessors from an arbitrary vertex that
// changed in the overflow pass, marking visited vertices, until it
// revisits one: that repeat is the cycle's entry point. The cycle is then
// the predecessor walk from there back to itself, in forward order.
func reconstructCycle[I comparable](changed map[I]bool, predecessors map[I]I) []I {
	var probe I
	for id := range changed {
		probe = id
		break
	}

	visited := map[I]bool{}
	cur := probe
	for !visited[cur] {
		visited[cur] = true
		cur = predecessors[cur]
	}
	entry := cur

	cycle := []I{entry}
	for v := predecessors[entry]; v != entry; v = predecessors[v] {
		cycle = append(cycle, v)
	}
	cycle = append(cycle, entry)

	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}
	return cycle
}

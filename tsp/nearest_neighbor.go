package tsp

import (
	"golang.org/x/exp/constraints"

	"github.com/go-graphkit/graphkit/graph"
	"github.com/go-graphkit/graphkit/route"
)

// NearestNeighbor builds a tour greedily: from the current vertex, step to
// the cheapest unvisited neighbour, until every vertex has been visited,
// then close the tour back to the start. O(V^2); no backtracking, so the
// result can be arbitrarily worse than optimal on an adversarial input.
func NearestNeighbor[I constraints.Ordered, V graph.Identifiable[I], E graph.Weighted[W], W Cost](
	g graph.Backend[I, V, E],
	opts ...Option[I],
) (*route.Path[I, E], error) {
	start, remaining, err := initialVertex[I, V, E](g, opts)
	if err != nil {
		if _, empty := err.(EmptyGraphError); empty {
			return route.NewPath[I, E](), nil
		}
		return nil, err
	}
	if len(remaining) == 0 {
		return route.NewPath[I, E](), nil
	}

	unvisited := make(map[I]bool, len(remaining))
	for _, id := range remaining {
		unvisited[id] = true
	}

	tour := make([]I, 0, len(remaining)+2)
	tour = append(tour, start)
	current := start

	for len(unvisited) > 0 {
		edges, err := g.NeighborEdges(current)
		if err != nil {
			return nil, err
		}

		var best I
		var bestWeight W
		haveBest := false
		for _, e := range edges {
			if !unvisited[e.To] {
				continue
			}
			w := e.Edge.Weight()
			if !haveBest || w < bestWeight {
				best, bestWeight, haveBest = e.To, w, true
			}
		}
		if !haveBest {
			var anyUnvisited I
			for id := range unvisited {
				anyUnvisited = id
				break
			}
			return nil, &MissingEdgeError[I]{From: current, To: anyUnvisited}
		}

		tour = append(tour, best)
		delete(unvisited, best)
		current = best
	}

	tour = append(tour, start)
	return buildPath[I, V, E](g, tour)
}

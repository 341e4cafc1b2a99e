package tsp

import (
	"golang.org/x/exp/constraints"

	"github.com/go-graphkit/graphkit/graph"
	"github.com/go-graphkit/graphkit/route"
)

// BruteForce finds an optimal tour by exhaustively trying every permutation
// of the non-start vertices, backtracking via a swap-to-end/pop trick so no
// permutation is materialised as its own slice. Exponential in vertex
// count; intended for small inputs or as a correctness oracle for the
// approximate solvers.
func BruteForce[I constraints.Ordered, V graph.Identifiable[I], E graph.Weighted[W], W Cost](
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

	search := &bruteForceSearch[I, V, E, W]{g: g, start: start}
	if err := search.explore(start, []I{start}, zero[W](), remaining); err != nil {
		return nil, err
	}
	if !search.haveBest {
		return nil, &MissingEdgeError[I]{From: start, To: start}
	}
	return buildPath[I, V, E](g, search.bestTour)
}

func zero[W Cost]() W {
	var z W
	return z
}

type bruteForceSearch[I constraints.Ordered, V graph.Identifiable[I], E graph.Weighted[W], W Cost] struct {
	g        graph.Backend[I, V, E]
	start    I
	haveBest bool
	bestCost W
	bestTour []I
}

// explore recursively extends path by one unvisited vertex at a time,
// closing the tour back to start once remaining is empty and keeping the
// cheapest closed tour found so far.
func (s *bruteForceSearch[I, V, E, W]) explore(current I, path []I, cost W, remaining []I) error {
	if len(remaining) == 0 {
		closing, err := edgeWeight[I, V, E, W](s.g, current, s.start)
		if err != nil {
			return err
		}
		total := cost + closing
		if !s.haveBest || total < s.bestCost {
			tour := make([]I, len(path)+1)
			copy(tour, path)
			tour[len(path)] = s.start
			s.bestCost = total
			s.bestTour = tour
			s.haveBest = true
		}
		return nil
	}

	last := len(remaining) - 1
	for i := 0; i <= last; i++ {
		remaining[i], remaining[last] = remaining[last], remaining[i]
		next := remaining[last]

		w, err := edgeWeight[I, V, E, W](s.g, current, next)
		if err != nil {
			return err
		}

		nextPath := appendCopy(path, next)
		if err := s.explore(next, nextPath, cost+w, remaining[:last]); err != nil {
			return err
		}

		remaining[i], remaining[last] = remaining[last], remaining[i]
	}
	return nil
}

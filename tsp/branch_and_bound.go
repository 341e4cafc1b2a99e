package tsp

import (
	"golang.org/x/exp/constraints"

	"github.com/go-graphkit/graphkit/graph"
	"github.com/go-graphkit/graphkit/route"
)

// BranchAndBound finds an optimal tour the same way BruteForce does —
// exhaustive backtracking over every permutation of the non-start vertices —
// but seeds an incumbent best via DoubleTree and prunes any branch whose cost
// so far, plus an admissible lower bound on what remains, can no longer beat
// it. The lower bound for a set of still-unvisited vertices sums, over each
// of them, half its two cheapest incident edges to other unvisited vertices:
// any tour must eventually touch each remaining vertex along two edges at
// least that cheap, so the bound never overestimates the true remaining
// cost. In the worst case this still degrades to BruteForce's full
// enumeration, but a reasonable incumbent typically prunes most branches.
func BranchAndBound[I constraints.Ordered, V graph.Identifiable[I], E graph.Weighted[W], W Cost](
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

	incumbent, err := DoubleTree[I, V, E, W](g, WithStart(start))
	if err != nil {
		return nil, err
	}

	search := &branchAndBoundSearch[I, V, E, W]{g: g, start: start}
	search.bestCost, search.haveBest = route.TotalCost[I, E, W](incumbent), true
	search.bestTour = incumbent.Vertices()

	if err := search.explore(start, []I{start}, zero[W](), remaining); err != nil {
		return nil, err
	}
	return buildPath[I, V, E](g, search.bestTour)
}

type branchAndBoundSearch[I constraints.Ordered, V graph.Identifiable[I], E graph.Weighted[W], W Cost] struct {
	g        graph.Backend[I, V, E]
	start    I
	haveBest bool
	bestCost W
	bestTour []I
}

// explore mirrors bruteForceSearch.explore's swap-to-end/pop backtracking,
// but before committing to a candidate next vertex, checks whether the cost
// so far plus the lower bound on finishing the tour can still beat the
// incumbent — skipping the recursive call (and everything under it)
// whenever it cannot.
func (s *branchAndBoundSearch[I, V, E, W]) explore(current I, path []I, cost W, remaining []I) error {
	if len(remaining) == 0 {
		closing, err := edgeWeight[I, V, E, W](s.g, current, s.start)
		if err != nil {
			return err
		}
		total := cost + closing
		if !s.haveBest || total < s.bestCost {
			s.bestCost = total
			s.bestTour = appendCopy(path, s.start)
			s.haveBest = true
		}
		return nil
	}

	last := len(remaining) - 1
	for i := 0; i <= last; i++ {
		next := remaining[i]

		edgeCost, err := edgeWeight[I, V, E, W](s.g, current, next)
		if err != nil {
			return err
		}
		newCost := cost + edgeCost

		var lowerBound W
		if len(remaining) > 2 {
			lowerBound, err = remainingLowerBound[I, V, E, W](s.g, remaining, next)
			if err != nil {
				return err
			}
		}

		if s.haveBest && newCost+lowerBound >= s.bestCost {
			continue
		}

		remaining[i], remaining[last] = remaining[last], remaining[i]
		nextPath := appendCopy(path, next)
		if err := s.explore(next, nextPath, newCost, remaining[:last]); err != nil {
			return err
		}
		remaining[i], remaining[last] = remaining[last], remaining[i]
	}
	return nil
}

// remainingLowerBound estimates the cheapest possible cost of visiting every
// vertex in remaining other than next: for each such vertex, half the sum of
// its two cheapest incident edges to other vertices in remaining (next
// included, since next is still a legitimate neighbour for the rest of the
// tour — only its own term is skipped, as the edge reaching it is already
// counted in the caller's running cost).
func remainingLowerBound[I constraints.Ordered, V graph.Identifiable[I], E graph.Weighted[W], W Cost](
	g graph.Backend[I, V, E], remaining []I, next I,
) (W, error) {
	var total W
	for _, to := range remaining {
		if to == next {
			continue
		}

		var cheapest, second W
		haveCheapest, haveSecond := false, false
		for _, from := range remaining {
			if from == to {
				continue
			}
			w, err := edgeWeight[I, V, E, W](g, from, to)
			if err != nil {
				return total, err
			}
			switch {
			case !haveCheapest || w < cheapest:
				second, haveSecond = cheapest, haveCheapest
				cheapest, haveCheapest = w, true
			case !haveSecond || w < second:
				second, haveSecond = w, true
			}
		}
		total += (cheapest + second) / 2
	}
	return total, nil
}

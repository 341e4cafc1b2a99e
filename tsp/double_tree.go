package tsp

import (
	"golang.org/x/exp/constraints"

	"github.com/go-graphkit/graphkit/adjlist"
	"github.com/go-graphkit/graphkit/graph"
	"github.com/go-graphkit/graphkit/mst"
	"github.com/go-graphkit/graphkit/route"
	"github.com/go-graphkit/graphkit/traverse"
)

// DoubleTree builds a tour from a minimum spanning tree: grow the MST with
// mst.Prim rooted at the start vertex, walk it depth-first, and connect
// consecutive DFS-visited vertices with the corresponding edge from the
// original (complete) graph, closing back to the start at the end. A
// depth-first walk of a spanning tree visits every vertex exactly once, so
// this always yields a valid (if not optimal) tour. When the edge weights
// satisfy the triangle inequality, the tour costs at most twice the MST
// weight; on other inputs no such bound holds.
func DoubleTree[I constraints.Ordered, V graph.Identifiable[I], E graph.Weighted[W], W Cost](
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

	treeOutput := adjlist.New[I, V, E](graph.Directed{})
	if err := mst.Prim[I, V, E, W](g, treeOutput, &start); err != nil {
		return nil, err
	}

	dfsIter, err := traverse.NewDFSIter[I, V, E](treeOutput, start)
	if err != nil {
		return nil, err
	}

	tour := []I{start}
	dfsIter.Next() // first yield is always the root itself; already in tour
	for dfsIter.Next() {
		tour = append(tour, dfsIter.ID())
	}
	tour = append(tour, start)

	return buildPath[I, V, E](g, tour)
}

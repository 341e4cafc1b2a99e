package tsp

import (
	"golang.org/x/exp/constraints"

	"github.com/go-graphkit/graphkit/graph"
	"github.com/go-graphkit/graphkit/route"
)

// initialVertex resolves the configured (or default) starting vertex and
// returns every other vertex id in backend storage order. Fails with
// EmptyGraphError if g has no vertices, or *graph.VertexNotFoundError[I] if
// an explicit WithStart id is absent from g.
func initialVertex[I constraints.Ordered, V graph.Identifiable[I], E any](
	g graph.Backend[I, V, E],
	opts []Option[I],
) (start I, remaining []I, err error) {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return start, nil, EmptyGraphError{}
	}

	cfg := resolveConfig(opts)
	start = vertices[0].ID()
	if cfg.hasStart {
		start = cfg.start
	}
	if _, ok := g.Vertex(start); !ok {
		return start, nil, &graph.VertexNotFoundError[I]{ID: start}
	}

	remaining = make([]I, 0, len(vertices)-1)
	for _, v := range vertices {
		if v.ID() != start {
			remaining = append(remaining, v.ID())
		}
	}
	return start, remaining, nil
}

// edgeWeight looks up the edge from->to and returns its weight. Fails with
// *MissingEdgeError[I] if the graph does not carry that edge — every solver
// in this package requires a fully-connected input.
func edgeWeight[I constraints.Ordered, V graph.Identifiable[I], E graph.Weighted[W], W Cost](
	g graph.Backend[I, V, E], from, to I,
) (W, error) {
	e, ok := g.Edge(from, to)
	if !ok {
		var zero W
		return zero, &MissingEdgeError[I]{From: from, To: to}
	}
	return e.Weight(), nil
}

// appendCopy returns a new slice holding path's elements followed by next,
// leaving path itself untouched — used by the backtracking solvers, which
// must not let a deeper recursive call's append clobber a sibling branch's
// view of the same backing array.
func appendCopy[I any](path []I, next I) []I {
	out := make([]I, len(path)+1)
	copy(out, path)
	out[len(path)] = next
	return out
}

// buildPath reconstructs a *route.Path from an ordered vertex walk (tour[0]
// should equal tour[len(tour)-1] for a closed tour), looking up each
// consecutive edge's payload from g.
func buildPath[I constraints.Ordered, V graph.Identifiable[I], E any](
	g graph.Backend[I, V, E], tour []I,
) (*route.Path[I, E], error) {
	path := route.NewPath[I, E]()
	for i := 0; i+1 < len(tour); i++ {
		from, to := tour[i], tour[i+1]
		e, ok := g.Edge(from, to)
		if !ok {
			return nil, &MissingEdgeError[I]{From: from, To: to}
		}
		path.Push(from, to, e)
	}
	return path, nil
}

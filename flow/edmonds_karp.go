package flow

import (
	"golang.org/x/exp/constraints"

	"github.com/go-graphkit/graphkit/graph"
)

// EdmondsKarp computes the maximum flow from source to sink over g, building
// a residual graph into outBackend (a caller-constructed, empty
// graph.Backend[I,V,ResidualEdge[W]] — typically adjlist.New) and repeatedly
// augmenting along the shortest (fewest-edge) path with positive remaining
// capacity, per the classic BFS-augmentation scheme.
//
// capOf extracts the capacity of an input edge; flowOf returns a pointer to
// the flow field within an input edge so the computed flow can be written
// back in place once augmentation is done. Fails with
// *VertexNotInFlowError[I] if source or sink is absent from g, or
// *NegativeCapacityError[I,W] if capOf yields a negative capacity.
//
// This assumes g carries no pair of opposing directed edges between the
// same two vertices (no both u->v and v->u present as real input edges):
// residual construction treats each input arc independently and creates the
// paired reverse residual arc on demand, so an existing opposite-direction
// input edge would collide with that reverse arc instead of composing with
// it.
func EdmondsKarp[I constraints.Ordered, V graph.Identifiable[I], E any, W Capacity](
	g *graph.Graph[I, V, E],
	source, sink I,
	outBackend graph.Backend[I, V, ResidualEdge[W]],
	capOf func(E) W,
	flowOf func(*E) *W,
) (W, error) {
	var zero W

	if _, ok := g.Vertex(source); !ok {
		return zero, &VertexNotInFlowError[I]{ID: source, Role: "source"}
	}
	if _, ok := g.Vertex(sink); !ok {
		return zero, &VertexNotInFlowError[I]{ID: sink, Role: "sink"}
	}

	forwardEdges := g.Edges()

	for _, v := range g.Vertices() {
		if err := outBackend.AddVertex(v); err != nil {
			return zero, err
		}
	}
	for _, e := range forwardEdges {
		capacity := capOf(e.Edge)
		if capacity < zero {
			return zero, &NegativeCapacityError[I, W]{From: e.From, To: e.To, Capacity: capacity}
		}
		if err := outBackend.AddEdge(e.From, e.To, ResidualEdge[W]{Remaining: capacity, IsResidual: false}); err != nil {
			return zero, err
		}
		if _, ok := outBackend.Edge(e.To, e.From); !ok {
			if err := outBackend.AddEdge(e.To, e.From, ResidualEdge[W]{Remaining: zero, IsResidual: true}); err != nil {
				return zero, err
			}
		}
	}

	var maxFlow W
	for {
		path, bottleneck, found := bfsAugmentingPath(outBackend, source, sink)
		if !found || bottleneck <= zero {
			break
		}
		maxFlow += bottleneck

		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]

			fwd, _ := outBackend.Edge(u, v)
			if err := outBackend.SetEdge(u, v, ResidualEdge[W]{Remaining: fwd.Remaining - bottleneck, IsResidual: fwd.IsResidual}); err != nil {
				return zero, err
			}

			rev, _ := outBackend.Edge(v, u)
			if err := outBackend.SetEdge(v, u, ResidualEdge[W]{Remaining: rev.Remaining + bottleneck, IsResidual: rev.IsResidual}); err != nil {
				return zero, err
			}
		}
	}

	for _, e := range forwardEdges {
		remaining, ok := outBackend.Edge(e.From, e.To)
		if !ok {
			continue
		}
		ptr, ok := g.EdgePtr(e.From, e.To)
		if !ok {
			continue
		}
		*flowOf(ptr) = capOf(e.Edge) - remaining.Remaining
	}

	return maxFlow, nil
}

// bfsAugmentingPath finds the shortest path (by edge count) from source to
// sink in residual using only arcs with positive Remaining capacity, and
// returns that path alongside its bottleneck (minimum Remaining along the
// path). found is false if sink is unreachable.
func bfsAugmentingPath[I constraints.Ordered, V graph.Identifiable[I], W Capacity](
	residual graph.Backend[I, V, ResidualEdge[W]],
	source, sink I,
) (path []I, bottleneck W, found bool) {
	parent := make(map[I]I)
	visited := map[I]bool{source: true}
	bottlenecks := map[I]W{}

	queue := []I{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		edges, err := residual.NeighborEdges(u)
		if err != nil {
			return nil, bottleneck, false
		}
		for _, e := range edges {
			if visited[e.To] || e.Edge.Remaining <= 0 {
				continue
			}
			visited[e.To] = true
			parent[e.To] = u

			b := e.Edge.Remaining
			if u != source && bottlenecks[u] < b {
				b = bottlenecks[u]
			}
			bottlenecks[e.To] = b

			if e.To == sink {
				cur := sink
				walk := []I{cur}
				for cur != source {
					cur = parent[cur]
					walk = append([]I{cur}, walk...)
				}
				return walk, bottlenecks[sink], true
			}
			queue = append(queue, e.To)
		}
	}
	return nil, bottleneck, false
}

package fixtures

import (
	"math/rand"

	"golang.org/x/exp/constraints"

	"github.com/go-graphkit/graphkit/adjlist"
	"github.com/go-graphkit/graphkit/graph"
)

// Complete builds the complete graph K_n: vertices 0..n-1 (named via idOf/
// vertexOf), with an edge between every pair of distinct vertices (edgeOf).
// Vertices are added in ascending index order; pairs are emitted in
// lexicographic (i,j), i<j order, mirrored to (j,i) only when dir is
// graph.Directed{} — an undirected backend already mirrors a single AddEdge
// call to both endpoints.
func Complete[I constraints.Ordered, V graph.Identifiable[I], E any](
	n int,
	dir graph.Direction,
	idOf func(i int) I,
	vertexOf func(id I) V,
	edgeOf func(i, j int) E,
) (*graph.Graph[I, V, E], error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}

	b := adjlist.New[I, V, E](dir)
	ids := make([]I, n)
	for i := 0; i < n; i++ {
		ids[i] = idOf(i)
		if err := b.AddVertex(vertexOf(ids[i])); err != nil {
			return nil, err
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := b.AddEdge(ids[i], ids[j], edgeOf(i, j)); err != nil {
				return nil, err
			}
			if graph.IsDirected(dir) {
				if err := b.AddEdge(ids[j], ids[i], edgeOf(j, i)); err != nil {
					return nil, err
				}
			}
		}
	}

	return graph.WrapBackend[I, V, E](b), nil
}

// RandomSparse samples an Erdős–Rényi-style graph over n vertices: every
// admissible edge is included independently with probability p. rng must be
// non-nil whenever 0 < p < 1; for p==0 (empty graph) or p==1 (equivalent to
// Complete) rng may be nil since the outcome is deterministic either way.
// Trial order is fixed (i ascending, then j ascending, i<j for undirected)
// so two calls with the same seed produce the same graph.
func RandomSparse[I constraints.Ordered, V graph.Identifiable[I], E any](
	n int,
	p float64,
	dir graph.Direction,
	rng *rand.Rand,
	idOf func(i int) I,
	vertexOf func(id I) V,
	edgeOf func(i, j int) E,
) (*graph.Graph[I, V, E], error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}
	if rng == nil && p > 0 && p < 1 {
		return nil, ErrNeedRandSource
	}

	b := adjlist.New[I, V, E](dir)
	ids := make([]I, n)
	for i := 0; i < n; i++ {
		ids[i] = idOf(i)
		if err := b.AddVertex(vertexOf(ids[i])); err != nil {
			return nil, err
		}
	}

	include := func() bool {
		if rng == nil {
			return p == 1
		}
		return rng.Float64() < p
	}

	addPair := func(i, j int) error {
		if !include() {
			return nil
		}
		return b.AddEdge(ids[i], ids[j], edgeOf(i, j))
	}

	if graph.IsDirected(dir) {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addPair(i, j); err != nil {
					return nil, err
				}
			}
		}
	} else {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addPair(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return graph.WrapBackend[I, V, E](b), nil
}

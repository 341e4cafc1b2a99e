package newgraph

import (
	"golang.org/x/exp/constraints"

	"github.com/go-graphkit/graphkit/adjlist"
	"github.com/go-graphkit/graphkit/adjmatrix"
	"github.com/go-graphkit/graphkit/graph"
)

// Option configures the backend a convenience constructor builds.
type Option[I constraints.Ordered, V graph.Identifiable[I], E any] func(*config)

type config struct {
	capacity int
}

// WithCapacity pre-sizes the backend's storage for n vertices.
func WithCapacity[I constraints.Ordered, V graph.Identifiable[I], E any](n int) Option[I, V, E] {
	return func(c *config) { c.capacity = n }
}

func resolve[I constraints.Ordered, V graph.Identifiable[I], E any](opts []Option[I, V, E]) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewListGraph returns a Graph facade backed by a fresh adjlist.Backend
// tagged with dir.
func NewListGraph[I constraints.Ordered, V graph.Identifiable[I], E any](
	dir graph.Direction, opts ...Option[I, V, E],
) *graph.Graph[I, V, E] {
	cfg := resolve(opts)
	return graph.WrapBackend[I, V, E](adjlist.NewWithCapacity[I, V, E](dir, cfg.capacity))
}

// NewMatrixGraph returns a Graph facade backed by a fresh adjmatrix.Backend
// tagged with dir. I must be an integer type: adjmatrix stores vertices at
// row/column indices equal to their id.
func NewMatrixGraph[I ~int, V graph.Identifiable[I], E any](
	dir graph.Direction, opts ...Option[I, V, E],
) *graph.Graph[I, V, E] {
	cfg := resolve(opts)
	return graph.WrapBackend[I, V, E](adjmatrix.NewWithCapacity[I, V, E](dir, cfg.capacity))
}

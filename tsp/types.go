package tsp

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Cost is the contract a TSP edge weight must satisfy: every requirement
// graph.Number imposes, narrowed to kinds that support division — the
// branch-and-bound lower bound averages a pair of cheapest incident edges,
// which graph.Number's inherited ~string admits no such operation for.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Option configures the starting vertex of a tour. The zero value (no
// options) starts from the first vertex in backend storage order.
type Option[I any] func(*config[I])

type config[I any] struct {
	start    I
	hasStart bool
}

// WithStart fixes the tour's starting vertex to id.
func WithStart[I any](id I) Option[I] {
	return func(c *config[I]) {
		c.start = id
		c.hasStart = true
	}
}

func resolveConfig[I any](opts []Option[I]) config[I] {
	var c config[I]
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// EmptyGraphError is returned when a solver is asked to tour a graph with no
// vertices.
type EmptyGraphError struct{}

func (EmptyGraphError) Error() string { return "tsp: graph has no vertices to tour" }

// MissingEdgeError is returned when the input graph is not fully connected —
// every TSP solver in this package requires an edge between every pair of
// distinct vertices.
type MissingEdgeError[I any] struct {
	From, To I
}

func (e *MissingEdgeError[I]) Error() string {
	return fmt.Sprintf("tsp: missing edge %v->%v: graph must be fully connected", e.From, e.To)
}

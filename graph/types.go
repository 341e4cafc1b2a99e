package graph

import "golang.org/x/exp/constraints"

// Identifiable is the contract every vertex payload must satisfy: a stable,
// caller-chosen identity used by every operation that references vertices.
type Identifiable[I comparable] interface {
	ID() I
}

// Number is the contract a weight type must satisfy: ordered (so heaps and
// comparisons work) and additive. Callers are responsible for never
// producing a NaN float weight — algorithms assume none exist and treat one
// as a programmer error, not a recoverable condition.
type Number interface {
	constraints.Ordered
}

// Weighted is the contract an edge payload must satisfy for any
// weight-driven algorithm (MST, shortest paths, max-flow capacity, TSP).
type Weighted[W Number] interface {
	Weight() W
}

// Direction is a compile-time-flavoured marker distinguishing directed from
// undirected graphs. Go has no trait specialisation, so concrete backends
// accept a Direction value once at construction and cache its directed()
// result as a plain bool for the hot path; the marker type itself exists so
// call sites read as an explicit choice rather than a bare boolean.
type Direction interface {
	directed() bool
}

// Directed marks a graph whose edges are one-way arcs.
type Directed struct{}

func (Directed) directed() bool { return true }

// Undirected marks a graph whose edges are stored and enumerated
// symmetrically.
type Undirected struct{}

func (Undirected) directed() bool { return false }

// IsDirected reports whether a Direction marker denotes a directed graph.
func IsDirected(d Direction) bool { return d.directed() }

// Edge3 is an ordered (From, To, Edge) triple: the shape every backend
// enumerates edges as, and the shape Path accumulates.
type Edge3[I comparable, E any] struct {
	From I
	To   I
	Edge E
}

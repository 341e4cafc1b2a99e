// Package newgraph provides the two named convenience constructors for
// picking a storage backend by name instead of hand-assembling
// graph.WrapBackend(adjlist.New(...)) or graph.WrapBackend(adjmatrix.New(...)):
// NewListGraph for adjacency-list storage, NewMatrixGraph for
// adjacency-matrix storage. Both return the same *graph.Graph[I,V,E] facade,
// so callers can switch storage by changing one call.
//
// These live outside package graph itself because adjlist and adjmatrix
// both import graph for the Backend contract; graph importing them back to
// offer these constructors would be a cyclic import. See DESIGN.md.
package newgraph

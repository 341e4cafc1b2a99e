// Package graph defines the generic graph abstraction shared by every
// algorithm package in this module: the payload contracts a caller's vertex
// and edge types must satisfy, the direction tag, the storage-agnostic
// Backend contract, and the thin Graph facade that wraps one backend.
//
// A Graph is parametrised over three type parameters:
//
//	I — the vertex id type (constraints.Ordered; ~int for the matrix backend)
//	V — the vertex payload type (must implement Identifiable[I])
//	E — the edge payload type (any; Weighted[W] only where an algorithm needs it)
//
// Two backends are provided in their own packages, adjlist (sparse,
// map-based) and adjmatrix (dense, array-based); both import graph, so
// graph itself cannot import either without a cycle. Construct a backend
// from one of those packages and wrap it with WrapBackend to get a Graph
// facade:
//
//	b := adjlist.New[string, Station, Track](graph.Undirected{})
//	g := graph.WrapBackend[string, Station, Track](b)
//	g.AddVertex(Station{Name: "A"})
//	g.AddVertex(Station{Name: "B"})
//	g.AddEdge("A", "B", Track{KM: 12})
//
// Algorithm packages traverse, mst, shortestpath and tsp take a
// Backend[I,V,E] directly rather than a *Graph, so they work with either
// storage without depending on the facade; flow.EdmondsKarp takes a *Graph.
//
// Package newgraph provides NewListGraph/NewMatrixGraph, named constructors
// that pick adjlist or adjmatrix storage without the caller assembling the
// New+WrapBackend pair by hand; they live one layer above graph for the
// same cycle reason adjlist/adjmatrix can't be imported here.
package graph

// Package mst computes minimum spanning trees by growing an output
// graph.Backend from an input one — Prim from a single start vertex
// outward via a min-heap of crossing edges, Kruskal by sorting every edge
// and resolving cycles with a unionfind forest.
//
// Both take the input backend as read-only and write into a caller-
// supplied, already-constructed empty output backend (typically an
// adjlist.Backend), so the caller picks the storage the result lives in.
// An empty input produces an empty output and no error.
package mst

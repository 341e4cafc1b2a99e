// Package flow computes maximum flow between a source and sink vertex via
// Edmonds-Karp: BFS-chosen shortest augmenting paths pushed until the
// residual graph admits none with positive remaining capacity.
//
// EdmondsKarp builds its residual graph into a caller-supplied, already-
// constructed empty graph.Backend[I,V,ResidualEdge[W]] rather than owning
// storage itself, following the same output-backend convention as mst.Prim
// and mst.Kruskal. Capacity and flow are read from and written to the
// caller's own edge type E through two accessor functions (capOf, flowOf)
// instead of a fixed numeric field, so EdmondsKarp never needs to know the
// shape of E beyond what those functions extract.
//
// This assumes g carries no pair of opposing directed edges between the
// same two vertices: residual construction creates the paired reverse arc
// for each forward arc on demand, and an existing opposite-direction input
// edge would collide with it rather than compose into it.
package flow

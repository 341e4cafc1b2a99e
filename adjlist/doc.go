// Package adjlist provides a sparse, map-based realisation of
// graph.Backend: each vertex stores its outgoing neighbours as an ordered
// slice of (neighbour id, edge payload) pairs, keyed by a map for O(1)
// lookup. Insertion order is preserved for Vertices, Edges, Neighbors and
// NeighborEdges, so traversal results are deterministic and reproducible —
// the property the corpus' original map-of-map adjacency list did not
// have, and which this port adds deliberately.
package adjlist

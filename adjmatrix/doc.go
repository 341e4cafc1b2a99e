// Package adjmatrix provides a dense, array-based realisation of
// graph.Backend, grounded on the teacher's row-major Dense matrix
// (flat backing slice, O(1) index arithmetic) generalised from a fixed
// float64 weight matrix to a generic per-cell edge payload.
//
// Vertex ids are constrained to ~int: a dense backend only earns its
// memory cost (O(V²) regardless of edge count) when ids are cheap to use
// as an index-map key and the caller actually wants matrix-shaped
// operations (complete-graph construction, future linear-algebra style
// queries). Sparse, string-keyed graphs belong in adjlist instead.
package adjmatrix

// Package fixtures synthesizes small, deterministic graphs for tests and the
// benchmark CLI: Complete builds the complete graph K_n, RandomSparse samples
// an Erdős–Rényi-style graph. Both take caller-supplied id/vertex/edge
// factories so they stay usable with any vertex or edge payload, the same
// way graph.FromVerticesAndEdges does.
package fixtures

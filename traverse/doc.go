// Package traverse provides lazy breadth-first and depth-first traversal
// over a graph.Backend, plus connected-component counting built on top of
// them.
//
// BFSIter and DFSIter are pull iterators in the bufio.Scanner idiom:
// Next() advances and reports whether a vertex is available, Vertex()
// returns it. This recasts the teacher's batch, hook-driven bfs.BFS (which
// eagerly walks the whole graph before returning a BFSResult) as the
// original implementation's lazy Iterator::next — one vertex computed per
// call, so a caller can stop early without paying for the rest of the
// graph.
//
// BFSMutIter is the mutable counterpart: VertexPtr returns a pointer into
// the backend's own storage. Go has no borrow checker, so the aliasing
// safety the original enforced with an `unsafe` pointer cast and a
// lifetime is, here, a documented precondition instead: do not retain a
// pointer past the next call to Next, and do not mutate the backend's
// vertex set while iterating.
package traverse

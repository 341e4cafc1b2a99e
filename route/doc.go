// Package route provides the two result types shared by path-producing
// algorithms: Path, an ordered sequence of edge triples, and
// ShortestPaths, a single-source cost/predecessor bundle that
// reconstructs paths on demand.
//
// Grounded on the original implementation's graph/path.rs and
// algorithms/shortest_path/single_source_shortest_paths.rs, recast in the
// teacher's Go idiom (exported accessor methods over a struct with
// unexported fields, doc comments stating complexity where it matters).
package route

// Package loader parses the corpus text format shared by this library's
// benchmark fixtures: a header line holding the vertex count N, followed by
// tab-separated edge records "from\tto[\tcol...]" with 0-indexed endpoints
// strictly less than N. Trailing blank lines are tolerated.
//
// Load stays payload-agnostic by taking a caller-supplied EdgeBuilder that
// turns each record's endpoint indices and any trailing columns into an
// edge payload, mirroring graph.FromVerticesAndEdges's own separation of
// structure from payload.
package loader

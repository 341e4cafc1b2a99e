// Package tsp solves the travelling-salesman problem over a fully-connected
// weighted graph: BruteForce and BranchAndBound compute an optimal tour,
// NearestNeighbor and DoubleTree compute a cheap approximate one.
//
// All four assume the input is complete — an edge between every pair of
// distinct vertices — and accept an optional starting vertex via WithStart;
// without it, the tour starts from the first vertex in backend storage
// order. Every solver returns a closed *route.Path: the last edge always
// leads back to the start.
package tsp

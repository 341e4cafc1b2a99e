// Package unionfind provides a generic disjoint-set forest with path
// compression and union-by-size, used by Kruskal's algorithm to detect
// whether two endpoints already lie in the same component.
//
// Grounded on the inline union-find the teacher writes directly inside
// prim_kruskal.Kruskal (parent/rank maps, iterative find with path
// compression) and on the original implementation's standalone UnionFind
// type — promoted here to a first-class, reusable, generic type neither
// source factors out on its own.
package unionfind

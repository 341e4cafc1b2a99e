// Package shortestpath computes single-source shortest paths: Dijkstra for
// non-negative weights, and a queue-based (SPFA-style) Bellman-Ford that
// additionally detects and reconstructs a reachable negative cycle.
//
// Both return a *route.ShortestPaths on success. Dijkstra assumes
// non-negative edge weights; behaviour on a negative edge is undefined, as
// on the original Dijkstra — use BellmanFord instead. BellmanFord instead
// returns a *NegativeCycleError when the source can reach a negative
// cycle, carrying the cycle as an ordered vertex walk.
package shortestpath

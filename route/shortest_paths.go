package route

// ShortestPaths bundles the result of a single-source shortest-path run:
// the start vertex, a cost map holding only reachable targets, and a
// predecessor map used to reconstruct a path on demand. Absence of a
// target from predecessors means either target == start or target is
// unreachable; Cost distinguishes the two.
type ShortestPaths[I comparable, W any] struct {
	start        I
	costs        map[I]W
	predecessors map[I]I
}

// NewShortestPaths wraps an already-computed cost/predecessor map pair.
// Algorithms (Dijkstra, BellmanFord) call this once they finish relaxing;
// callers outside this package should treat it as a read-only result type.
func NewShortestPaths[I comparable, W any](start I, costs map[I]W, predecessors map[I]I) *ShortestPaths[I, W] {
	return &ShortestPaths[I, W]{start: start, costs: costs, predecessors: predecessors}
}

// Start returns the source vertex this result was computed from.
func (sp *ShortestPaths[I, W]) Start() I { return sp.start }

// Cost returns the shortest-path cost to target and whether target is
// reachable from Start.
func (sp *ShortestPaths[I, W]) Cost(target I) (W, bool) {
	w, ok := sp.costs[target]
	return w, ok
}

// Path reconstructs the shortest path from Start to target by walking the
// predecessor chain backwards. Returns nil if target is unreachable or if
// the predecessor chain is broken before reaching Start (which should
// never happen for a result produced by this package's own algorithms).
func (sp *ShortestPaths[I, W]) Path(target I) []I {
	if _, ok := sp.costs[target]; !ok {
		return nil
	}

	var path []I
	current := target
	for current != sp.start {
		path = append(path, current)
		pred, ok := sp.predecessors[current]
		if !ok {
			return nil
		}
		current = pred
	}
	path = append(path, sp.start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

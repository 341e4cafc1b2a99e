package unionfind

import "fmt"

// VertexNotFoundError is returned by Find or Union when referencing an
// element never registered with MakeSet.
type VertexNotFoundError[I comparable] struct {
	ID I
}

func (e *VertexNotFoundError[I]) Error() string {
	return fmt.Sprintf("unionfind: vertex %v not found", e.ID)
}

// DuplicateVertexError is returned by MakeSet when x is already tracked.
type DuplicateVertexError[I comparable] struct {
	ID I
}

func (e *DuplicateVertexError[I]) Error() string {
	return fmt.Sprintf("unionfind: vertex %v already exists", e.ID)
}

// UnionFind is a disjoint-set forest over I. The zero value is not usable;
// construct with New.
type UnionFind[I comparable] struct {
	parent map[I]I
	size   map[I]int
}

// New returns an empty UnionFind.
func New[I comparable]() *UnionFind[I] {
	return &UnionFind[I]{
		parent: make(map[I]I),
		size:   make(map[I]int),
	}
}

// NewWithCapacity returns an empty UnionFind pre-sized for n elements.
func NewWithCapacity[I comparable](n int) *UnionFind[I] {
	return &UnionFind[I]{
		parent: make(map[I]I, n),
		size:   make(map[I]int, n),
	}
}

// MakeSet registers x as a new singleton set. Fails with
// *DuplicateVertexError[I] if x is already tracked.
func (u *UnionFind[I]) MakeSet(x I) error {
	if _, exists := u.parent[x]; exists {
		return &DuplicateVertexError[I]{ID: x}
	}
	u.parent[x] = x
	u.size[x] = 1
	return nil
}

// Find returns the representative of x's set, compressing the path walked
// to reach it. Fails with *VertexNotFoundError[I] if x was never
// registered with MakeSet.
func (u *UnionFind[I]) Find(x I) (I, error) {
	root, ok := u.parent[x]
	if !ok {
		var zero I
		return zero, &VertexNotFoundError[I]{ID: x}
	}

	var path []I
	for root != x {
		path = append(path, x)
		x = root
		root = u.parent[x]
	}
	// x is now its own root.
	root = x

	for _, v := range path {
		u.parent[v] = root
	}
	return root, nil
}

// Union merges the sets containing x and y, attaching the smaller tree
// under the larger one's root (union-by-size). It reports merged=false
// without error when x and y are already in the same set — Kruskal needs
// to branch on that outcome, not treat it as failure.
func (u *UnionFind[I]) Union(x, y I) (merged bool, err error) {
	rootX, err := u.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := u.Find(y)
	if err != nil {
		return false, err
	}
	if rootX == rootY {
		return false, nil
	}

	if u.size[rootX] < u.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	u.parent[rootY] = rootX
	u.size[rootX] += u.size[rootY]
	delete(u.size, rootY)

	return true, nil
}

// Connected reports whether x and y currently resolve to the same
// representative.
func (u *UnionFind[I]) Connected(x, y I) (bool, error) {
	rootX, err := u.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := u.Find(y)
	if err != nil {
		return false, err
	}
	return rootX == rootY, nil
}

// Size returns the number of elements in x's set. Fails with
// *VertexNotFoundError[I] if x was never registered.
func (u *UnionFind[I]) Size(x I) (int, error) {
	root, err := u.Find(x)
	if err != nil {
		return 0, err
	}
	return u.size[root], nil
}

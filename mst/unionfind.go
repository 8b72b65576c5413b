package mst

// UnionFind is a disjoint-set forest over the integers 0..n-1.
// It is not safe for concurrent use; the estimator builds a fresh one per call.
type UnionFind struct {
	parent []int
	rank   []int
	sets   int
}

// NewUnionFind returns n singleton sets.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// Find returns the root of x's set. Iterative with path halving, so deep
// chains never recurse.
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// Union merges the sets of x and y and reports whether they were distinct.
func (uf *UnionFind) Union(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}
	uf.sets--

	return true
}

// Connected reports whether x and y share a set.
func (uf *UnionFind) Connected(x, y int) bool { return uf.Find(x) == uf.Find(y) }

// Components returns the current number of disjoint sets.
func (uf *UnionFind) Components() int { return uf.sets }

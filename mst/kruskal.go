package mst

import (
	"cmp"
	"slices"
)

// Weights is the read-only metric the estimator runs on.
// *distcache.Cache satisfies it.
type Weights interface {
	N() int
	Distance(i, j int) float64
}

// edge is one candidate pair; endpoints are positions into the nodes slice,
// which keeps the union-find dense regardless of the original indices.
type edge struct {
	a, b int
	w    float64
}

// Kruskal returns the weight of a minimum spanning tree over nodes.
//
// Steps:
//  1. Collect all k·(k−1)/2 pairs among nodes.
//  2. Sort ascending by weight, ties by (a, b).
//  3. Merge endpoints lying in different components, accumulating weights,
//     until k−1 merges have happened.
//
// Fewer than two nodes ⇒ 0. Nodes are assumed distinct.
func Kruskal(w Weights, nodes []int) float64 {
	k := len(nodes)
	if k < 2 {
		return 0
	}

	edges := make([]edge, 0, k*(k-1)/2)
	for a := 0; a < k-1; a++ {
		for b := a + 1; b < k; b++ {
			edges = append(edges, edge{a: a, b: b, w: w.Distance(nodes[a], nodes[b])})
		}
	}
	slices.SortFunc(edges, func(x, y edge) int {
		if c := cmp.Compare(x.w, y.w); c != 0 {
			return c
		}
		if c := cmp.Compare(x.a, y.a); c != 0 {
			return c
		}

		return cmp.Compare(x.b, y.b)
	})

	var (
		uf     = NewUnionFind(k)
		total  float64
		merged int
	)
	for _, e := range edges {
		if uf.Union(e.a, e.b) {
			total += e.w
			merged++
			if merged == k-1 {
				break
			}
		}
	}

	return total
}

// Package mst provides the minimum-spanning-tree lower bound used to order and
// prune partial tours.
//
// What & Why
//
//   - Any path that visits a node set S is itself a spanning tree of S, so the
//     weight of a minimum spanning tree over S never exceeds the cost of the
//     cheapest such path. That makes MST(S) an admissible estimate of the
//     remaining cost of a partial tour.
//
// Provided
//
//   - UnionFind - disjoint sets over 0..n-1 with path compression and union by rank.
//
//   - Kruskal(w, nodes) - sorts the pairs restricted to nodes by weight and merges
//     components greedily. Rebuilt from scratch on every call.
//
//   - Complexity: O(k² log k) for k nodes (all k·(k−1)/2 pairs are sorted).
//
//   - Estimator - Kruskal plus an optional LRU memo keyed by node-set bitmask.
//     The bound depends only on the set, so memoised values are identical to
//     fresh ones; the memo only skips repeated work across different prefixes.
//
// Determinism: equal weights are ordered by (i, j), so the same set always
// produces the same tree.
package mst

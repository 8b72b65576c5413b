// Package tsp solves the Euclidean Travelling Salesman Problem over a point set.
//
// It works on any symmetric metric exposed through Distances (normally a
// *distcache.Cache) and offers:
//
//   - Greedy - nearest-neighbour construction from point 0, candidate scan
//     split across workers.
//
//   - Complexity: O(N²)
//
//   - TwoOpt - parallel first-improvement 2-opt. Workers scan disjoint start
//     positions; moves are re-derived and applied under a write lock.
//
//   - Complexity: O(passes·N²)
//
//   - BranchAndBound - exact depth-first search rooted at point 0 with one
//     parallel subtree per second point and nearest-first branching.
//
//   - PriorityBranchAndBound - exact best-first search ordered by
//     cost + MST(unvisited ∪ {last, 0}). At most 64 points.
//
//   - Solve - validates a pointset.Set, builds the distance cache and runs
//     LocalSearch (greedy, 2-opt, timed random restarts) or ExactSearch.
//
// Numeric policy: every comparison of a delta against zero and of a candidate
// against the shared bound goes through Round8 (1e-8 granularity). Final tour
// lengths are recomputed from the route with TourLength.
//
// Both exact strategies return an optimal-length tour; under ties any optimal
// permutation may be returned, rotations and reflections are not deduplicated.
package tsp

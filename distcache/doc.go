// Package distcache precomputes every pairwise Euclidean distance of a point set once.
//
// Storage is a packed upper triangle: one float64 per unordered pair (i,j), i<j,
// i.e. exactly N·(N−1)/2 entries; self-distances are defined as 0 and never stored.
// The pair (i,j) and (j,i) resolve to the same slot, so the metric is symmetric
// by construction.
//
// Build fans the rows out over a bounded worker pool. Row i owns the slots of
// pairs (i, j>i) and no other row touches them, so workers write concurrently
// without locks. After Build returns the Cache is immutable and safe for any
// number of concurrent readers.
//
// No rounding happens here; tour-level code owns numeric stabilization.
package distcache

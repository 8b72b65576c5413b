package mst

import (
	"errors"
	"math/bits"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MaxMaskNodes is the largest point count a node-set bitmask can describe.
const MaxMaskNodes = 64

// ErrMaskTooWide is returned by NewEstimator when a memo is requested for more
// than MaxMaskNodes points.
var ErrMaskTooWide = errors.New("mst: memo requires at most 64 points")

// Estimator computes MST lower bounds over subsets of a fixed metric.
// It is safe for concurrent use: Kruskal state is per call and the memo is
// the thread-safe lru.Cache.
type Estimator struct {
	w    Weights
	memo *lru.Cache[uint64, float64]
}

// NewEstimator returns an Estimator over w. memoSize > 0 enables an LRU memo
// of that many node sets; memoSize ≤ 0 recomputes every call.
func NewEstimator(w Weights, memoSize int) (*Estimator, error) {
	e := &Estimator{w: w}
	if memoSize <= 0 {
		return e, nil
	}
	if w.N() > MaxMaskNodes {
		return nil, ErrMaskTooWide
	}
	memo, err := lru.New[uint64, float64](memoSize)
	if err != nil {
		return nil, err
	}
	e.memo = memo

	return e, nil
}

// Estimate returns the MST weight over nodes.
func (e *Estimator) Estimate(nodes []int) float64 {
	if e.memo == nil || e.w.N() > MaxMaskNodes {
		return Kruskal(e.w, nodes)
	}
	var mask uint64
	for _, v := range nodes {
		mask |= 1 << uint(v)
	}

	return e.EstimateMask(mask)
}

// EstimateMask returns the MST weight over the node set encoded by mask
// (bit v set ⇔ node v included). Requires N ≤ MaxMaskNodes.
func (e *Estimator) EstimateMask(mask uint64) float64 {
	if e.memo != nil {
		if v, ok := e.memo.Get(mask); ok {
			return v
		}
	}

	nodes := make([]int, 0, bits.OnesCount64(mask))
	for m := mask; m != 0; m &= m - 1 {
		nodes = append(nodes, bits.TrailingZeros64(m))
	}
	v := Kruskal(e.w, nodes)
	if e.memo != nil {
		e.memo.Add(mask, v)
	}

	return v
}

// MemoLen reports how many node sets are currently memoised (0 without memo).
func (e *Estimator) MemoLen() int {
	if e.memo == nil {
		return 0
	}

	return e.memo.Len()
}

package tsp

import (
	"container/heap"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtsp/mst"
)

// PQOptions tunes PriorityBranchAndBound.
type PQOptions struct {
	// Workers bounds the goroutines expanding one branch; ≤ 0 means GOMAXPROCS.
	Workers int
	// MemoSize is the LRU capacity of the MST memo; ≤ 0 disables it.
	MemoSize int
	// MaxQueue aborts the search with ErrQueueOverflow once the queue holds
	// more branches; ≤ 0 means unlimited.
	MaxQueue int
}

// branch is a partial route rooted at 0.
type branch struct {
	route    []int
	visited  uint64 // bit v set ⇔ v on route
	cost     float64
	estimate float64 // MST over unvisited ∪ {last, 0}
	seq      uint64  // insertion order
}

func (b *branch) priority() float64 { return b.cost + b.estimate }

// branchHeap is a min-heap by priority; ties go to the deeper route, then to
// the earlier insertion.
type branchHeap []*branch

func (h branchHeap) Len() int { return len(h) }
func (h branchHeap) Less(i, j int) bool {
	pi, pj := h[i].priority(), h[j].priority()
	if pi != pj {
		return pi < pj
	}
	if li, lj := len(h[i].route), len(h[j].route); li != lj {
		return li > lj
	}

	return h[i].seq < h[j].seq
}
func (h branchHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *branchHeap) Push(x any)   { *h = append(*h, x.(*branch)) }
func (h *branchHeap) Pop() any {
	old := *h
	b := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]

	return b
}

// pqEngine holds the data shared across expansions.
type pqEngine struct {
	d       Distances
	n       int
	full    uint64
	est     *mst.Estimator
	best    *bound
	workers int
}

// expand builds all children of parent in parallel. Children are read-only
// products; the caller inserts them serially. Pruned slots stay nil.
func (e *pqEngine) expand(parent *branch) []*branch {
	last := parent.route[len(parent.route)-1]
	children := make([]*branch, e.n)

	var g errgroup.Group
	g.SetLimit(e.workers)
	for v := range e.n {
		if parent.visited&(1<<uint(v)) != 0 {
			continue
		}
		g.Go(func() error {
			visited := parent.visited | 1<<uint(v)
			cost := parent.cost + e.d.Distance(last, v)
			// The rest of the tour is a path from v through every unvisited
			// point back to 0, so it costs at least the MST of those points.
			estimate := e.est.EstimateMask((e.full &^ visited) | 1<<uint(v) | 1)
			if Round8(cost+estimate) >= e.best.load() {
				return nil
			}
			route := make([]int, len(parent.route), len(parent.route)+1)
			copy(route, parent.route)
			children[v] = &branch{
				route:    append(route, v),
				visited:  visited,
				cost:     cost,
				estimate: estimate,
			}
			return nil
		})
	}
	_ = g.Wait()

	return children
}

// PriorityBranchAndBound finds an optimal tour by best-first search ordered by
// cost + MST lower bound.
//
// Steps:
//  1. Seed the bound from seed; push the root [0] with estimate MST(all points).
//  2. Pop the lowest-priority branch. Since the estimate is admissible, once the
//     minimum reaches the bound no queued branch can improve it.
//  3. A complete route's estimate is exactly its closing edge, so its priority
//     is its length; commit it through the bound.
//  4. Otherwise expand children in parallel and push the survivors.
//
// The visited set is a 64-bit mask, so N > 64 returns ErrTooManyPoints.
// ctx is checked before each pop; on cancellation or ErrQueueOverflow the best
// tour found so far is returned with the error.
func PriorityBranchAndBound(ctx context.Context, d Distances, seed Tour, opts PQOptions) (Tour, error) {
	n := d.N()
	if n < 2 {
		return Tour{}, fmt.Errorf("%w: %d points", ErrInvalidInput, n)
	}
	if n > mst.MaxMaskNodes {
		return Tour{}, fmt.Errorf("%w: %d points", ErrTooManyPoints, n)
	}
	if err := checkSeed(seed, n); err != nil {
		return Tour{}, err
	}
	est, err := mst.NewEstimator(d, opts.MemoSize)
	if err != nil {
		return Tour{}, err
	}

	e := &pqEngine{
		d:       d,
		n:       n,
		full:    fullMask(n),
		est:     est,
		best:    newBound(d, seed),
		workers: clampWorkers(opts.Workers, n),
	}

	var seq uint64
	h := &branchHeap{{route: []int{0}, visited: 1, estimate: est.EstimateMask(e.full)}}
	for h.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return finish(d, e.best.best()), err
		}
		cur := heap.Pop(h).(*branch)
		if Round8(cur.priority()) >= e.best.load() {
			break
		}
		if len(cur.route) == n {
			e.best.offer(cur.route, cur.priority())
			continue
		}

		for _, c := range e.expand(cur) {
			if c == nil {
				continue
			}
			seq++
			c.seq = seq
			heap.Push(h, c)
		}
		if opts.MaxQueue > 0 && h.Len() > opts.MaxQueue {
			return finish(d, e.best.best()), fmt.Errorf("%w: %d branches", ErrQueueOverflow, h.Len())
		}
	}

	return finish(d, e.best.best()), nil
}

// fullMask returns a mask with bits 0..n-1 set.
func fullMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}

	return 1<<uint(n) - 1
}

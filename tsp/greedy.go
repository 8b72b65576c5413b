package tsp

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// candidate is one worker's nearest unvisited point; idx < 0 means none.
type candidate struct {
	idx  int
	dist float64
}

// better orders candidates by (distance, index).
func (c candidate) better(o candidate) bool {
	if o.idx < 0 {
		return c.idx >= 0
	}
	if c.idx < 0 {
		return false
	}
	if c.dist != o.dist {
		return c.dist < o.dist
	}

	return c.idx < o.idx
}

// Greedy builds a nearest-neighbour tour from point 0: each step appends the
// unvisited point closest to the last one, ties broken by lower index.
//
// Steps:
//  1. Split 0..N-1 into one contiguous chunk per worker.
//  2. Each worker reduces its chunk to a local nearest candidate.
//  3. Local results are reduced in chunk order, which keeps the tiebreak stable.
//
// ctx is checked once per step. Complexity: O(N²) distance reads.
func Greedy(ctx context.Context, d Distances, workers int) (Tour, error) {
	n := d.N()
	if n < 2 {
		return Tour{}, fmt.Errorf("%w: %d points", ErrInvalidInput, n)
	}
	workers = clampWorkers(workers, n)
	chunk := (n + workers - 1) / workers

	visited := make([]bool, n)
	route := make([]int, 1, n)
	visited[0] = true
	local := make([]candidate, workers)

	for last := 0; len(route) < n; {
		if err := ctx.Err(); err != nil {
			return Tour{}, err
		}
		if workers == 1 {
			local[0] = nearest(d, visited, last, 0, n)
		} else {
			var g errgroup.Group
			for w := range workers {
				lo, hi := w*chunk, min(n, (w+1)*chunk)
				g.Go(func() error {
					local[w] = nearest(d, visited, last, lo, hi)
					return nil
				})
			}
			_ = g.Wait()
		}

		pick := candidate{idx: -1}
		for _, c := range local {
			if c.better(pick) {
				pick = c
			}
		}
		visited[pick.idx] = true
		route = append(route, pick.idx)
		last = pick.idx
	}

	length, _ := TourLength(d, route)

	return Tour{Route: route, Distance: length}, nil
}

// nearest scans [lo, hi) for the unvisited point closest to last.
func nearest(d Distances, visited []bool, last, lo, hi int) candidate {
	best := candidate{idx: -1}
	for v := lo; v < hi; v++ {
		if visited[v] {
			continue
		}
		c := candidate{idx: v, dist: d.Distance(last, v)}
		if c.better(best) {
			best = c
		}
	}

	return best
}

package tsp

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// twoOptState is the route under mutation, shared by all workers of a pass.
type twoOptState struct {
	d     Distances
	n     int
	mu    sync.RWMutex
	route []int
	dist  float64 // running length; reconciled with TourLength on exit
}

// delta is the rounded length change of replacing edges (r[i], r[i+1]) and
// (r[j], r[j+1]) by (r[i], r[j]) and (r[i+1], r[j+1]). Positions wrap modulo n.
// Callers hold mu.
func (s *twoOptState) delta(i, j int) float64 {
	a, b := s.route[i], s.route[(i+1)%s.n]
	c, e := s.route[j], s.route[(j+1)%s.n]

	return Round8(s.d.Distance(a, c) + s.d.Distance(b, e) - s.d.Distance(a, b) - s.d.Distance(c, e))
}

// improveFrom scans j > i for the first improving move and applies it.
// A delta seen under the read lock is only a hint: it is re-derived from the
// live route under the write lock, because another worker may have moved the
// route in between.
func (s *twoOptState) improveFrom(i int) bool {
	for j := i + 2; j < s.n; j++ {
		s.mu.RLock()
		hint := s.delta(i, j)
		s.mu.RUnlock()
		if hint >= 0 {
			continue
		}

		s.mu.Lock()
		live := s.delta(i, j)
		if live < 0 {
			slices.Reverse(s.route[i+1 : j+1])
			s.dist += live
		}
		s.mu.Unlock()
		if live < 0 {
			return true
		}
	}

	return false
}

// TwoOpt improves a complete tour with parallel first-improvement 2-opt.
//
// Steps:
//  1. Copy the input route; the caller's tour is never mutated.
//  2. Each pass, worker w owns start positions i = w, w+workers, ...; for each i
//     it applies at most one improving reversal of r[i+1..j].
//  3. Workers report through private flags, OR-reduced after the pass barrier.
//  4. Stop after a pass with no applied move, then recompute the length.
//
// Every applied move strictly shortens the tour by more than the rounding
// granularity, so the loop terminates and the output is never longer than the
// input. Routes of fewer than 4 points admit no move and are returned as is.
// ctx is checked between passes; on cancellation the partially improved tour
// is returned together with ctx.Err().
func TwoOpt(ctx context.Context, d Distances, in Tour, workers int) (Tour, error) {
	n := d.N()
	if err := ValidateTour(in.Route, n); err != nil {
		return Tour{}, err
	}

	s := &twoOptState{d: d, n: n, route: slices.Clone(in.Route)}
	s.dist, _ = TourLength(d, s.route)
	if n < 4 {
		return Tour{Route: s.route, Distance: s.dist}, nil
	}

	workers = clampWorkers(workers, n-2)
	improved := make([]bool, workers)
	var err error
	for {
		if err = ctx.Err(); err != nil {
			break
		}
		clear(improved)

		var g errgroup.Group
		for w := range workers {
			g.Go(func() error {
				for i := w; i < n-2; i += workers {
					if s.improveFrom(i) {
						improved[w] = true
					}
				}
				return nil
			})
		}
		_ = g.Wait()

		if !slices.Contains(improved, true) {
			break
		}
	}

	length, _ := TourLength(d, s.route)

	return Tour{Route: s.route, Distance: length}, err
}

package tsp

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/lvtsp/distcache"
	"github.com/katalvlaran/lvtsp/pointset"
)

// Solve computes a tour over set.
//
// Steps:
//  1. Validate and normalise set (ErrInvalidInput before any search).
//  2. Build the distance cache.
//  3. Greedy, then 2-opt: the incumbent.
//  4. LocalSearch: until TimeBudget elapses or ctx is done, 2-opt a random
//     permutation and keep it when its rounded length improves. Each restart
//     draws from its own stream derived from Options.Seed.
//  5. ExactSearch: warn with ErrExhausted above ExactAdvisoryLimit, then run
//     the chosen strategy seeded with the incumbent.
//
// Route entries are point IDs (equal to indices after normalisation).
// Tour.Distance is always recomputed from the route.
//
// In LocalSearch a done ctx ends the restart loop like an elapsed budget and
// the incumbent is returned without error. In ExactSearch it interrupts the
// search; the best tour found so far is returned with ctx.Err().
func Solve(ctx context.Context, set pointset.Set, opts Options) (Result, error) {
	start := time.Now()
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	norm, err := pointset.Normalize(set)
	if err != nil {
		return Result{}, err
	}
	dc, err := distcache.Build(ctx, norm.Points, opts.Workers)
	if err != nil {
		return Result{}, err
	}

	res := Result{Mode: opts.Mode, Strategy: opts.Strategy}
	inc, err := Greedy(ctx, dc, opts.Workers)
	if err != nil {
		return Result{}, err
	}
	if inc, err = TwoOpt(ctx, dc, inc, opts.Workers); err != nil {
		return Result{}, err
	}

	switch opts.Mode {
	case LocalSearch:
		inc = restart(ctx, dc, inc, opts, start, &res)
	case ExactSearch:
		limit := opts.ExactAdvisoryLimit
		if limit <= 0 {
			limit = DefaultExactAdvisoryLimit
		}
		if n := dc.N(); n > limit {
			res.Warnings = append(res.Warnings, fmt.Errorf("%w: %d points (advisory limit %d)", ErrExhausted, n, limit))
		}
		var t Tour
		if t, err = exact(ctx, dc, inc, opts); t.Complete(dc.N()) {
			inc = t
		}
	}

	res.Tour = finish(dc, inc)
	res.Elapsed = time.Since(start)

	return res, err
}

// restart runs the LocalSearch loop and returns the best tour seen.
// The budget is measured from start, so setup time counts against it.
func restart(ctx context.Context, d Distances, inc Tour, opts Options, start time.Time, res *Result) Tour {
	base := rngFromSeed(opts.Seed)
	bestLen := Round8(inc.Distance)
	for k := uint64(0); time.Since(start) < opts.TimeBudget && ctx.Err() == nil; k++ {
		rng := deriveRNG(base, k)
		cand, err := TwoOpt(ctx, d, Tour{Route: randomRoute(d.N(), rng)}, opts.Workers)
		if err != nil {
			// Interrupted mid-polish: the candidate is unfinished, drop it.
			break
		}
		res.Restarts++
		res.RestartDistances = append(res.RestartDistances, cand.Distance)
		if r := Round8(cand.Distance); r < bestLen {
			inc, bestLen = cand, r
		}
	}

	return inc
}

// exact dispatches to the configured branch-and-bound strategy.
func exact(ctx context.Context, d Distances, seed Tour, opts Options) (Tour, error) {
	switch opts.Strategy {
	case StrategyPriorityQueue:
		return PriorityBranchAndBound(ctx, d, seed, PQOptions{
			Workers:  opts.Workers,
			MemoSize: opts.MemoSize,
			MaxQueue: opts.MaxQueue,
		})
	default:
		return BranchAndBound(ctx, d, seed, opts.Workers)
	}
}

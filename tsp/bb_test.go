package tsp_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtsp/pointset"
	"github.com/katalvlaran/lvtsp/tsp"
)

// seedFor returns the greedy + 2-opt incumbent the orchestrator would use.
func seedFor(t *testing.T, d tsp.Distances) tsp.Tour {
	t.Helper()
	g, err := tsp.Greedy(context.Background(), d, 2)
	require.NoError(t, err)
	out, err := tsp.TwoOpt(context.Background(), d, g, 2)
	require.NoError(t, err)

	return out
}

func TestExact_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for n := 2; n <= 9; n++ {
		dc := cacheOf(t, randomSet(rng, n))
		want := bruteForce(dc)

		dfs, err := tsp.BranchAndBound(context.Background(), dc, seedFor(t, dc), 4)
		require.NoError(t, err)
		require.NoError(t, tsp.ValidateTour(dfs.Route, n))
		assert.InDelta(t, want, dfs.Distance, eps, "dfs n=%d", n)
		assert.Equal(t, 0, dfs.Route[0])

		pq, err := tsp.PriorityBranchAndBound(context.Background(), dc, seedFor(t, dc), tsp.PQOptions{Workers: 4, MemoSize: 256})
		require.NoError(t, err)
		require.NoError(t, tsp.ValidateTour(pq.Route, n))
		assert.InDelta(t, want, pq.Distance, eps, "pq n=%d", n)
	}
}

// Without a seed both searches start from +Inf and still reach the optimum.
func TestExact_UnseededAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for range 3 {
		dc := cacheOf(t, randomSet(rng, 10))

		dfs, err := tsp.BranchAndBound(context.Background(), dc, tsp.Tour{}, 0)
		require.NoError(t, err)
		pq, err := tsp.PriorityBranchAndBound(context.Background(), dc, tsp.Tour{}, tsp.PQOptions{})
		require.NoError(t, err)
		assert.InDelta(t, dfs.Distance, pq.Distance, eps)
	}
}

func TestExact_KnownShapes(t *testing.T) {
	for name, tc := range map[string]struct {
		set  pointset.Set
		want float64
	}{
		"unit square": {unitSquare(), 4},
		"collinear":   {collinear5(), 8},
		"coincident":  {setOf([2]float64{2, 2}, [2]float64{2, 2}, [2]float64{2, 2}, [2]float64{2, 2}), 0},
	} {
		t.Run(name, func(t *testing.T) {
			dc := cacheOf(t, tc.set)
			dfs, err := tsp.BranchAndBound(context.Background(), dc, tsp.Tour{}, 2)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, dfs.Distance, eps)

			pq, err := tsp.PriorityBranchAndBound(context.Background(), dc, tsp.Tour{}, tsp.PQOptions{Workers: 2})
			require.NoError(t, err)
			assert.InDelta(t, tc.want, pq.Distance, eps)
		})
	}
}

func TestExact_RejectsBadSeed(t *testing.T) {
	dc := cacheOf(t, unitSquare())
	bad := tsp.Tour{Route: []int{0, 1, 2}}

	_, err := tsp.BranchAndBound(context.Background(), dc, bad, 1)
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)
	_, err = tsp.PriorityBranchAndBound(context.Background(), dc, bad, tsp.PQOptions{})
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)
}

func TestBranchAndBound_CancelledKeepsSeed(t *testing.T) {
	dc := cacheOf(t, collinear5())
	seed := tsp.Tour{Route: []int{0, 2, 1, 3, 4}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := tsp.BranchAndBound(ctx, dc, seed, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, seed.Route, got.Route)
	assert.InDelta(t, 10.0, got.Distance, eps)
}

func TestPriorityBranchAndBound_Limits(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	big := cacheOf(t, randomSet(rng, 65))
	_, err := tsp.PriorityBranchAndBound(context.Background(), big, tsp.Tour{}, tsp.PQOptions{})
	assert.ErrorIs(t, err, tsp.ErrTooManyPoints)

	// The root alone has seven children, so a one-slot queue overflows at once.
	small := cacheOf(t, randomSet(rng, 8))
	_, err = tsp.PriorityBranchAndBound(context.Background(), small, tsp.Tour{}, tsp.PQOptions{MaxQueue: 1})
	assert.ErrorIs(t, err, tsp.ErrQueueOverflow)

	// With a seed the overflow still returns a usable tour.
	seed := seedFor(t, small)
	got, err := tsp.PriorityBranchAndBound(context.Background(), small, seed, tsp.PQOptions{MaxQueue: 1})
	if err != nil {
		assert.ErrorIs(t, err, tsp.ErrQueueOverflow)
	}
	require.NoError(t, tsp.ValidateTour(got.Route, 8))
	assert.LessOrEqual(t, got.Distance, seed.Distance+eps)
}

package tsp_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtsp/distcache"
	"github.com/katalvlaran/lvtsp/pointset"
	"github.com/katalvlaran/lvtsp/tsp"
)

// eps is the tolerance for comparing tour lengths computed along different routes.
const eps = 1e-6

// setOf builds a point set with IDs equal to positions.
func setOf(xy ...[2]float64) pointset.Set {
	pts := make([]pointset.Point, len(xy))
	for i, p := range xy {
		pts[i] = pointset.Point{X: p[0], Y: p[1], ID: uint32(i)}
	}

	return pointset.Set{Points: pts}
}

func unitSquare() pointset.Set { return setOf([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 1}) }

func collinear5() pointset.Set {
	return setOf([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{2, 0}, [2]float64{3, 0}, [2]float64{4, 0})
}

// randomSet draws n points in a 100×100 box.
func randomSet(rng *rand.Rand, n int) pointset.Set {
	set, err := pointset.Generate(rng, n, 100, 100)
	if err != nil {
		panic(err)
	}

	return set
}

// cacheOf builds a distance cache for set.
func cacheOf(t testing.TB, set pointset.Set) *distcache.Cache {
	t.Helper()
	dc, err := distcache.Build(context.Background(), set.Points, 2)
	require.NoError(t, err)

	return dc
}

// bruteForce returns the optimal tour length by enumerating every
// permutation with point 0 fixed first.
func bruteForce(d tsp.Distances) float64 {
	n := d.N()
	rest := make([]int, n-1)
	for i := range rest {
		rest[i] = i + 1
	}
	best := math.Inf(1)
	var rec func(k int)
	rec = func(k int) {
		if k == len(rest) {
			route := append([]int{0}, rest...)
			if l, _ := tsp.TourLength(d, route); l < best {
				best = l
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			rec(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	rec(0)

	return best
}

// identity returns the route 0..n-1.
func identity(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}

	return r
}

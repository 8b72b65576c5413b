package tsp

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveRNG_DeterministicAndDistinct(t *testing.T) {
	a := deriveRNG(rngFromSeed(5), 3).Int63()
	b := deriveRNG(rngFromSeed(5), 3).Int63()
	c := deriveRNG(rngFromSeed(5), 4).Int63()
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, rngFromSeed(0).Int63(), rngFromSeed(defaultRNGSeed).Int63())
}

func TestRandomRoute_StartsAtZero(t *testing.T) {
	rng := rngFromSeed(9)
	for range 20 {
		r := randomRoute(12, rng)
		require.NoError(t, ValidateTour(r, 12))
		assert.Equal(t, 0, r[0])
	}
}

func TestRotateToZero(t *testing.T) {
	r := []int{3, 4, 0, 1, 2}
	rotateToZero(r)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, r)

	r = []int{0, 2, 1}
	rotateToZero(r)
	assert.Equal(t, []int{0, 2, 1}, r)

	var empty []int
	rotateToZero(empty)
	assert.Empty(t, empty)
}

func TestBound_OfferRechecks(t *testing.T) {
	d := squareDistances{}
	b := newBound(d, Tour{})
	assert.True(t, b.load() > 1e300)

	assert.True(t, b.offer([]int{0, 2, 1, 3}, 2+2*1.4142135623730951))
	assert.False(t, b.offer([]int{0, 2, 1, 3}, 5), "equal or worse never replaces")
	assert.True(t, b.offer([]int{0, 1, 2, 3}, 4))
	assert.False(t, b.offer([]int{0, 3, 2, 1}, 4.000000001), "within rounding is not an improvement")

	best := b.best()
	assert.Equal(t, []int{0, 1, 2, 3}, best.Route)
	best.Route[1] = 9
	assert.True(t, slices.Equal([]int{0, 1, 2, 3}, b.best().Route), "best returns a copy")
}

// squareDistances is the unit square without the distance cache.
type squareDistances struct{}

func (squareDistances) N() int { return 4 }
func (squareDistances) Distance(i, j int) float64 {
	if i == j {
		return 0
	}
	if (i+j)%2 == 0 {
		return 1.4142135623730951
	}

	return 1
}

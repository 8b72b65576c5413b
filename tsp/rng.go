package tsp

import "math/rand"

// defaultRNGSeed replaces a zero Options.Seed so defaults stay reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer,
// so neighbouring restart ids get unrelated streams.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent stream for one restart. base.Int63 is
// consumed once so a reused stream id still yields a fresh sequence.
// math/rand.Rand is not goroutine-safe; each restart owns its stream.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// randomRoute returns a random permutation of 0..n-1 rotated to start at 0.
func randomRoute(n int, rng *rand.Rand) []int {
	route := rng.Perm(n)
	rotateToZero(route)

	return route
}

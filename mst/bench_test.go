package mst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtsp/mst"
)

// BenchmarkKruskal64 measures a full rebuild over 64 random points.
func BenchmarkKruskal64(b *testing.B) {
	p := randomPlane(rand.New(rand.NewSource(1)), 64)
	nodes := allNodes(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mst.Kruskal(p, nodes)
	}
}

// BenchmarkEstimatorMemoHit measures the memoised path on a repeated set.
func BenchmarkEstimatorMemoHit(b *testing.B) {
	p := randomPlane(rand.New(rand.NewSource(1)), 32)
	e, err := mst.NewEstimator(p, 1024)
	if err != nil {
		b.Fatal(err)
	}
	const mask = uint64(1)<<32 - 1
	_ = e.EstimateMask(mask)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.EstimateMask(mask)
	}
}

package pointset

import (
	"fmt"
	"math"
	"math/rand"
)

// Default generation box; matches the files produced by earlier releases.
const (
	DefaultWidth  = 1000.0
	DefaultHeight = 1000.0
)

// Generate returns count points drawn uniformly from [0,width)×[0,height).
// Coordinates are rounded to two decimals so that generated files stay readable.
// A nil rng falls back to a fixed-seed stream, keeping output reproducible.
func Generate(rng *rand.Rand, count int, width, height float64) (Set, error) {
	if count < 1 {
		return Set{}, fmt.Errorf("%w: point count must be positive, got %d", ErrInvalidInput, count)
	}
	if !(width > 0) || !(height > 0) {
		return Set{}, fmt.Errorf("%w: generation box must be positive", ErrInvalidInput)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	pts := make([]Point, count)
	for i := range pts {
		pts[i] = Point{
			X:  round2(rng.Float64() * width),
			Y:  round2(rng.Float64() * height),
			ID: uint32(i),
		}
	}

	return Set{Points: pts}, nil
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }

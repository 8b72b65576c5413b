package tsp

import (
	"math"
	"slices"
	"sync"
	"sync/atomic"
)

// bound is the best solution so far, shared by all search workers.
// mu guards tour and every write of dist; dist is additionally readable
// without the lock for pruning. A lock-free read may be stale, never too low,
// since the bound only decreases.
type bound struct {
	mu   sync.Mutex
	tour Tour
	dist atomic.Uint64 // math.Float64bits of the rounded best length
}

// newBound seeds the bound from a complete tour, or +Inf when seed is empty.
func newBound(d Distances, seed Tour) *bound {
	b := &bound{}
	b.dist.Store(math.Float64bits(math.Inf(1)))
	if len(seed.Route) == d.N() {
		length, _ := TourLength(d, seed.Route)
		b.tour = Tour{Route: slices.Clone(seed.Route), Distance: length}
		b.dist.Store(math.Float64bits(Round8(length)))
	}

	return b
}

// load returns the current rounded bound.
func (b *bound) load() float64 {
	return math.Float64frombits(b.dist.Load())
}

// offer commits route if its length still beats the bound. The comparison is
// repeated under the lock, so two racing workers cannot both win against the
// same old value.
func (b *bound) offer(route []int, length float64) bool {
	r := Round8(length)
	b.mu.Lock()
	defer b.mu.Unlock()
	if r >= b.load() {
		return false
	}
	b.tour = Tour{Route: slices.Clone(route), Distance: length}
	b.dist.Store(math.Float64bits(r))

	return true
}

// best returns a copy of the committed tour.
func (b *bound) best() Tour {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.tour.Clone()
}

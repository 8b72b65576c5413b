package tsp

import (
	"fmt"
	"slices"
)

// Clone returns a deep copy of t.
func (t Tour) Clone() Tour {
	return Tour{Route: slices.Clone(t.Route), Distance: t.Distance}
}

// Complete reports whether t visits exactly n points.
func (t Tour) Complete(n int) bool { return len(t.Route) == n }

// ValidateTour checks that route is a permutation of 0..n-1.
func ValidateTour(route []int, n int) error {
	if len(route) != n {
		return fmt.Errorf("%w: %d stops for %d points", ErrInvalidTour, len(route), n)
	}
	seen := make([]bool, n)
	for _, v := range route {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: stop %d out of range", ErrInvalidTour, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: stop %d repeated", ErrInvalidTour, v)
		}
		seen[v] = true
	}

	return nil
}

// rotateToZero rotates a complete route in place so that it starts at 0.
// The cycle, and so its length, is unchanged.
func rotateToZero(route []int) {
	k := slices.Index(route, 0)
	if k <= 0 {
		return
	}
	slices.Reverse(route[:k])
	slices.Reverse(route[k:])
	slices.Reverse(route)
}

// checkSeed validates an optional seed tour for the exact strategies.
// An empty route means "no seed".
func checkSeed(seed Tour, n int) error {
	if len(seed.Route) == 0 {
		return nil
	}

	return ValidateTour(seed.Route, n)
}

package pointset

import (
	"fmt"
	"math"
	"slices"
)

// Validate checks the Set contracts (see package doc) without modifying s.
//
// Complexity: O(N) time, O(N) space.
func Validate(s Set) error {
	n := len(s.Points)
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidInput, n)
	}

	seen := make([]bool, n)
	for i, p := range s.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%w: point %d has non-finite coordinates", ErrInvalidInput, i)
		}
		if int(p.ID) >= n {
			return fmt.Errorf("%w: id %d out of range [0,%d)", ErrInvalidInput, p.ID, n)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = true
	}

	return nil
}

// Normalize validates s and returns a copy ordered by ID, so that
// out.Points[i].ID == i for every i. The input is never mutated.
func Normalize(s Set) (Set, error) {
	if err := Validate(s); err != nil {
		return Set{}, err
	}
	out := Set{Points: slices.Clone(s.Points)}
	slices.SortFunc(out.Points, func(a, b Point) int {
		return int(a.ID) - int(b.ID)
	})

	return out, nil
}

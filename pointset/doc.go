// Package pointset defines the input model of the solver: labeled 2-D points.
//
// A Set is read once (from JSON, a generator, or test code), validated and
// normalized so that the slice index of every point equals its ID. All other
// packages address points by that index only; coordinates are read solely by
// the distance cache.
//
// JSON layout (shared with previously generated problem files):
//
//	{"points": [{"x": 12.5, "y": 7.25, "id": 0}, ...]}
//
// Contracts:
//   - A valid Set has N ≥ 2 points.
//   - IDs are exactly {0..N-1}, each once, in any order.
//   - Coordinates are finite.
//
// Violations are reported as ErrInvalidInput wrapped with a short reason.
package pointset

package pointset

import "errors"

// ErrInvalidInput is returned when a point set cannot be solved: fewer than two
// points, IDs that are not contiguous from 0, or non-finite coordinates.
var ErrInvalidInput = errors.New("pointset: invalid input")

// Point is a single labeled location. ID is the stable index used everywhere else.
type Point struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	ID uint32  `json:"id"`
}

// Set is an ordered, read-only sequence of points. Its length defines N.
type Set struct {
	Points []Point `json:"points"`
}

// Len returns the number of points in s.
func (s Set) Len() int { return len(s.Points) }

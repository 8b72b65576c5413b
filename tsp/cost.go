package tsp

import "math"

// roundScale fixes the comparison granularity at 1e-8.
const roundScale = 1e8

// Round8 returns x rounded to 8 decimal digits.
// All improvement and pruning decisions compare Round8 values so that
// floating-point noise can never register as progress.
func Round8(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// TourLength sums consecutive edges of route and reports whether the route is
// complete (len == N). The closing edge back to route[0] is added only then.
//
// Complexity: O(len(route)).
func TourLength(d Distances, route []int) (float64, bool) {
	var sum float64
	for k := 1; k < len(route); k++ {
		sum += d.Distance(route[k-1], route[k])
	}
	complete := len(route) == d.N()
	if complete && len(route) > 1 {
		sum += d.Distance(route[len(route)-1], route[0])
	}

	return sum, complete
}

package tsp

import "runtime"

// clampWorkers resolves a worker count: ≤ 0 means GOMAXPROCS, and there is
// never more than one worker per unit of work.
func clampWorkers(workers, units int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if units < 1 {
		units = 1
	}

	return min(workers, units)
}

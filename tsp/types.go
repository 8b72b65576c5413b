package tsp

import (
	"errors"

	"github.com/katalvlaran/lvtsp/distcache"
	"github.com/katalvlaran/lvtsp/pointset"
)

var (
	// ErrInvalidInput marks a point set rejected before any search starts.
	ErrInvalidInput = pointset.ErrInvalidInput

	// ErrInfeasibleBound marks a distance lookup outside 0..N-1.
	ErrInfeasibleBound = distcache.ErrInfeasibleBound

	// ErrExhausted is advisory: exact search was requested for more points than
	// Options.ExactAdvisoryLimit. Solve records it in Result.Warnings and runs anyway.
	ErrExhausted = errors.New("tsp: exact search above advisory size")

	// ErrInvalidTour is returned when a route is not a permutation of 0..N-1.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrUnknownMode is returned for a Mode outside LocalSearch/ExactSearch.
	ErrUnknownMode = errors.New("tsp: unknown mode")

	// ErrUnknownStrategy is returned for a Strategy outside StrategyDFS/StrategyPriorityQueue.
	ErrUnknownStrategy = errors.New("tsp: unknown strategy")

	// ErrTooManyPoints is returned by PriorityBranchAndBound for N > 64.
	ErrTooManyPoints = errors.New("tsp: priority search supports at most 64 points")

	// ErrQueueOverflow is returned with the best tour so far when the priority
	// queue grows past PQOptions.MaxQueue.
	ErrQueueOverflow = errors.New("tsp: priority queue limit exceeded")
)

// Distances is the read-only symmetric metric the solvers run on.
// Distance(i, i) must be 0.
type Distances interface {
	N() int
	Distance(i, j int) float64
}

// Tour is a route over point indices and its round-trip length.
// A tour is complete when it visits all N points exactly once; the closing
// edge back to Route[0] is implicit.
type Tour struct {
	Route    []int   `json:"route"`
	Distance float64 `json:"distance"`
}

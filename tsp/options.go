package tsp

import (
	"fmt"
	"time"
)

// Mode selects what Solve does after the greedy + 2-opt incumbent.
type Mode int

const (
	// LocalSearch runs timed random restarts, each polished by 2-opt.
	LocalSearch Mode = iota
	// ExactSearch runs a branch-and-bound strategy to optimality.
	ExactSearch
)

// String returns the CLI spelling of m.
func (m Mode) String() string {
	switch m {
	case LocalSearch:
		return "local"
	case ExactSearch:
		return "optimal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "local" or "optimal".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "local":
		return LocalSearch, nil
	case "optimal", "exact":
		return ExactSearch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Strategy selects the exact search algorithm.
type Strategy int

const (
	// StrategyDFS is the parallel depth-first branch-and-bound (default).
	StrategyDFS Strategy = iota
	// StrategyPriorityQueue is the best-first branch-and-bound with MST bound.
	StrategyPriorityQueue
)

// String returns the CLI spelling of s.
func (s Strategy) String() string {
	switch s {
	case StrategyDFS:
		return "dfs"
	case StrategyPriorityQueue:
		return "pq"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts "dfs" or "pq".
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "dfs":
		return StrategyDFS, nil
	case "pq", "priority":
		return StrategyPriorityQueue, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// DefaultExactAdvisoryLimit is the point count above which exact search gets
// an ErrExhausted warning.
const DefaultExactAdvisoryLimit = 20

// Options configures Solve.
type Options struct {
	Mode Mode
	// TimeBudget bounds the LocalSearch restart loop; 0 means no restarts.
	// The clock is only checked between restarts.
	TimeBudget time.Duration
	Strategy   Strategy
	// Workers bounds parallelism everywhere; ≤ 0 means GOMAXPROCS.
	Workers int
	// Seed drives the restart permutations; 0 means a fixed default.
	Seed int64
	// ExactAdvisoryLimit ≤ 0 means DefaultExactAdvisoryLimit.
	ExactAdvisoryLimit int
	// MemoSize and MaxQueue are passed to PriorityBranchAndBound.
	MemoSize int
	MaxQueue int
}

// DefaultOptions returns local search with a one-minute budget.
func DefaultOptions() Options {
	return Options{
		Mode:               LocalSearch,
		TimeBudget:         time.Minute,
		Strategy:           StrategyDFS,
		ExactAdvisoryLimit: DefaultExactAdvisoryLimit,
		MemoSize:           1 << 16,
	}
}

// Validate rejects unknown enum values and negative budgets.
func (o Options) Validate() error {
	switch o.Mode {
	case LocalSearch, ExactSearch:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(o.Mode))
	}
	switch o.Strategy {
	case StrategyDFS, StrategyPriorityQueue:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(o.Strategy))
	}
	if o.TimeBudget < 0 {
		return fmt.Errorf("tsp: negative time budget %s", o.TimeBudget)
	}

	return nil
}

// Result is the outcome of Solve.
type Result struct {
	Tour     Tour
	Mode     Mode
	Strategy Strategy
	// Restarts counts completed LocalSearch restarts; RestartDistances holds
	// the 2-opt length each one reached.
	Restarts         int
	RestartDistances []float64
	Elapsed          time.Duration
	// Warnings carries advisories such as ErrExhausted. They never fail Solve.
	Warnings []error
}

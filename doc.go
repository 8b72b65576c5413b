// Package lvtsp is a parallel solver for the Euclidean Travelling Salesman
// Problem over labelled 2-D points.
//
// What is inside?
//
//	pointset/  - Point and Set types, validation, random generation, JSON files
//	distcache/ - pairwise distance cache built in parallel (packed triangle)
//	mst/       - union-find and Kruskal MST lower bound with an LRU memo
//	tsp/       - greedy, parallel 2-opt, DFS and best-first branch-and-bound, Solve
//	config/    - koanf settings: defaults, YAML, TSPSOLVE_* env, flag overrides
//	logger/    - slog construction with lumberjack rotation
//	metrics/   - Prometheus collectors exported as a textfile
//	solcache/  - exact-solution cache (memory LRU or Redis)
//	cmd/tspsolve - the generate / solve command
//
// Quick start:
//
//	set, _ := pointset.Load("points12.json")
//	opts := tsp.DefaultOptions()
//	opts.Mode = tsp.ExactSearch
//	res, err := tsp.Solve(ctx, set, opts)
//
// Local search returns the best tour found within Options.TimeBudget; exact
// search returns an optimal tour and warns (never fails) above
// Options.ExactAdvisoryLimit points.
package lvtsp

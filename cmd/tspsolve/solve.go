package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvtsp/config"
	"github.com/katalvlaran/lvtsp/logger"
	"github.com/katalvlaran/lvtsp/metrics"
	"github.com/katalvlaran/lvtsp/pointset"
	"github.com/katalvlaran/lvtsp/solcache"
	"github.com/katalvlaran/lvtsp/tsp"
)

func runSolve(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "point set file (required)")
	out := fs.String("out", "", "solution file (default <in>_<mode>_solution.json)")
	fs.String("mode", "local", "local or optimal")
	fs.String("strategy", "dfs", "exact strategy: dfs or pq")
	fs.Duration("budget", time.Minute, "local search time budget")
	fs.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	fs.Int64("seed", 0, "restart seed")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *in == "" {
		fmt.Fprintln(stderr, "solve: -in is required")
		fs.Usage()
		return errUsage
	}

	cfg, err := config.Load(config.WithOverrides(overrides(fs, map[string]string{
		"mode":     "solve.mode",
		"strategy": "solve.strategy",
		"budget":   "solve.time_budget",
		"workers":  "solve.workers",
		"seed":     "solve.seed",
	})))
	if err != nil {
		return err
	}
	opts, err := cfg.Solve.Options()
	if err != nil {
		return err
	}

	log := logger.WithRunID(logger.New(cfg.Log.Logger()), uuid.NewString())
	set, err := pointset.Load(*in)
	if err != nil {
		return err
	}

	var rec *metrics.Recorder
	if cfg.Metrics.Enabled {
		rec = metrics.New(cfg.Metrics.Namespace)
		defer func() {
			if werr := rec.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
				log.Error("metrics textfile", "path", cfg.Metrics.Textfile, "err", werr)
			}
		}()
	}

	s := &solver{log: log, rec: rec, opts: opts}
	if opts.Mode == tsp.ExactSearch {
		cache, err := solcache.New(ctx, cfg.Cache.Options())
		if err != nil {
			return err
		}
		defer cache.Close()
		s.cache = cache
	}

	res, err := s.solve(ctx, set)
	if err != nil && len(res.Tour.Route) == 0 {
		return err
	}
	if err != nil {
		// Interrupted exact search: keep what was found.
		log.Warn("search interrupted, writing best tour so far", "err", err)
	}

	path := *out
	if path == "" {
		path = pointset.SolutionPath(*in, opts.Mode.String())
	}
	if werr := pointset.WriteJSON(path, res.Tour); werr != nil {
		return werr
	}
	writeSummary(stdout, set.Len(), path, res)

	return err
}

// solver ties one run to its logger, metrics and cache.
type solver struct {
	log   *slog.Logger
	rec   *metrics.Recorder
	cache solcache.Cache
	opts  tsp.Options
}

// solve answers from the cache when possible, otherwise runs tsp.Solve and
// stores exact results.
func (s *solver) solve(ctx context.Context, set pointset.Set) (tsp.Result, error) {
	n := set.Len()
	s.log.Info("solve started", "points", n, "mode", s.opts.Mode.String(), "strategy", s.opts.Strategy.String(), "budget", s.opts.TimeBudget)

	key := ""
	if s.cache != nil {
		var err error
		if key, err = solcache.Key(set, s.opts.Strategy); err != nil {
			return tsp.Result{}, err
		}
		t, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			s.observeLookup(true)
			s.log.Info("solution cache hit", "key", key, "distance", t.Distance)
			if s.rec != nil {
				s.rec.ObserveCached(s.opts, n, t)
			}
			return tsp.Result{Tour: t, Mode: s.opts.Mode, Strategy: s.opts.Strategy}, nil
		case errors.Is(err, solcache.ErrMiss):
			s.observeLookup(false)
		default:
			s.log.Warn("solution cache unavailable", "err", err)
		}
	}

	res, err := tsp.Solve(ctx, set, s.opts)
	if s.rec != nil {
		s.rec.ObserveSolve(s.opts, n, res, err, res.Elapsed)
	}
	for _, w := range res.Warnings {
		s.log.Warn("advisory", "err", w)
	}
	if err != nil {
		s.log.Error("solve failed", "err", err)
		return res, err
	}
	s.log.Info("solve finished", "distance", res.Tour.Distance, "elapsed", res.Elapsed, "restarts", res.Restarts)

	if key != "" {
		if cerr := s.cache.Set(ctx, key, res.Tour); cerr != nil {
			s.log.Warn("solution cache store failed", "key", key, "err", cerr)
		}
	}

	return res, nil
}

func (s *solver) observeLookup(hit bool) {
	if s.rec != nil {
		s.rec.ObserveCacheLookup(hit)
	}
}

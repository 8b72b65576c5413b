// Package config loads tspsolve settings from layered sources with koanf:
// built-in defaults, an optional YAML file, TSPSOLVE_* environment variables
// (optionally seeded from .env files) and explicit overrides such as CLI flags.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/lvtsp/logger"
	"github.com/katalvlaran/lvtsp/solcache"
	"github.com/katalvlaran/lvtsp/tsp"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Cache backends selectable from configuration. The in-process
// solcache.Memory backend is not offered: a one-shot command could never hit it.
const (
	CacheNone  = solcache.BackendNone
	CacheRedis = solcache.BackendRedis
)

// Config is the root configuration.
type Config struct {
	Solve    SolveConfig    `koanf:"solve"`
	Generate GenerateConfig `koanf:"generate"`
	Log      LogConfig      `koanf:"log"`
	Cache    CacheConfig    `koanf:"cache"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// SolveConfig mirrors tsp.Options in configuration form.
type SolveConfig struct {
	Mode               string        `koanf:"mode"`     // local, optimal
	Strategy           string        `koanf:"strategy"` // dfs, pq
	TimeBudget         time.Duration `koanf:"time_budget"`
	Workers            int           `koanf:"workers"`
	Seed               int64         `koanf:"seed"`
	ExactAdvisoryLimit int           `koanf:"exact_advisory_limit"`
	MemoSize           int           `koanf:"memo_size"`
	MaxQueue           int           `koanf:"max_queue"`
}

// GenerateConfig is the box random point sets are drawn from.
type GenerateConfig struct {
	Width  float64 `koanf:"width"`
	Height float64 `koanf:"height"`
	Seed   int64   `koanf:"seed"` // 0 = time based
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level      string `koanf:"level"`  // debug, info, warn, error
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"` // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// CacheConfig selects where exact solutions are memoised between runs.
type CacheConfig struct {
	Backend       string        `koanf:"backend"` // none, redis
	TTL           time.Duration `koanf:"ttl"`
	RedisAddr     string        `koanf:"redis_addr"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Textfile  string `koanf:"textfile"`
	Namespace string `koanf:"namespace"`
}

// Validate checks every section.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Solve.Options(); err != nil {
		errs = append(errs, err)
	}
	if c.Solve.TimeBudget < 0 {
		errs = append(errs, fmt.Errorf("solve.time_budget must be >= 0, got %s", c.Solve.TimeBudget))
	}
	if c.Solve.Workers < 0 {
		errs = append(errs, fmt.Errorf("solve.workers must be >= 0, got %d", c.Solve.Workers))
	}
	if c.Generate.Width <= 0 || c.Generate.Height <= 0 {
		errs = append(errs, fmt.Errorf("generate box must be positive, got %gx%g", c.Generate.Width, c.Generate.Height))
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q", c.Log.Level))
	}
	if !slices.Contains([]string{"json", "text"}, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format %q", c.Log.Format))
	}
	if !slices.Contains([]string{"stdout", "stderr", "file"}, c.Log.Output) {
		errs = append(errs, fmt.Errorf("log.output %q", c.Log.Output))
	}
	switch c.Cache.Backend {
	case CacheNone:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			errs = append(errs, errors.New("cache.redis_addr is required for redis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.backend %q", c.Cache.Backend))
	}
	if c.Metrics.Enabled && c.Metrics.Textfile == "" {
		errs = append(errs, errors.New("metrics.textfile is required when metrics are enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// Options converts the solve section into tsp.Options.
func (s SolveConfig) Options() (tsp.Options, error) {
	mode, err := tsp.ParseMode(s.Mode)
	if err != nil {
		return tsp.Options{}, err
	}
	strategy, err := tsp.ParseStrategy(s.Strategy)
	if err != nil {
		return tsp.Options{}, err
	}

	return tsp.Options{
		Mode:               mode,
		TimeBudget:         s.TimeBudget,
		Strategy:           strategy,
		Workers:            s.Workers,
		Seed:               s.Seed,
		ExactAdvisoryLimit: s.ExactAdvisoryLimit,
		MemoSize:           s.MemoSize,
		MaxQueue:           s.MaxQueue,
	}, nil
}

// Logger converts the log section into logger.Config.
func (l LogConfig) Logger() logger.Config {
	return logger.Config{
		Level:      l.Level,
		Format:     l.Format,
		Output:     l.Output,
		FilePath:   l.FilePath,
		MaxSize:    l.MaxSize,
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAge,
		Compress:   l.Compress,
	}
}

// Options converts the cache section into solcache.Options.
func (c CacheConfig) Options() solcache.Options {
	return solcache.Options{
		Backend:       c.Backend,
		TTL:           c.TTL,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
	}
}

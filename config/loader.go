package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "TSPSOLVE_"
	configEnvVar = "TSPSOLVE_CONFIG"
)

// Loader assembles a Config from its sources.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
	dotenv      []string
	overrides   map[string]any
}

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths replaces the YAML search paths. The first existing file wins.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) { l.configPaths = paths }
}

// WithEnvPrefix replaces the TSPSOLVE_ environment prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// WithDotEnv loads the given .env files into the process environment before
// the env layer is read. Missing files are skipped; variables already set win.
func WithDotEnv(files ...string) LoaderOption {
	return func(l *Loader) { l.dotenv = files }
}

// WithOverrides sets the highest-priority layer, keyed by dotted path
// ("solve.mode"). Used for explicitly passed CLI flags.
func WithOverrides(values map[string]any) LoaderOption {
	return func(l *Loader) { l.overrides = values }
}

// NewLoader returns a Loader searching tspsolve.yaml in the working directory.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		configPaths: []string{"tspsolve.yaml", "config/tspsolve.yaml"},
		envPrefix:   envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges, in increasing priority: defaults, YAML file, environment,
// overrides. The result is validated.
func (l *Loader) Load() (*Config, error) {
	if err := l.loadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := l.k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := l.loadConfigFile(); err != nil {
		return nil, err
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}
	if len(l.overrides) > 0 {
		if err := l.k.Load(confmap.Provider(l.overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Defaults returns the built-in configuration layer.
func Defaults() map[string]any {
	return map[string]any{
		"solve.mode":                 "local",
		"solve.strategy":             "dfs",
		"solve.time_budget":          time.Minute,
		"solve.workers":              0,
		"solve.seed":                 int64(0),
		"solve.exact_advisory_limit": 20,
		"solve.memo_size":            1 << 16,
		"solve.max_queue":            0,

		"generate.width":  1000.0,
		"generate.height": 1000.0,
		"generate.seed":   int64(0),

		"log.level":       "info",
		"log.format":      "text",
		"log.output":      "stderr",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,

		"cache.backend":  CacheNone,
		"cache.ttl":      24 * time.Hour,
		"cache.redis_db": 0,

		"metrics.enabled":   false,
		"metrics.namespace": "tspsolve",
	}
}

func (l *Loader) loadDotEnv() error {
	for _, f := range l.dotenv {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return err
		}
	}

	return nil
}

// loadConfigFile reads TSPSOLVE_CONFIG when set, otherwise the first existing
// search path. No file at all is not an error; a named file that is missing is.
func (l *Loader) loadConfigFile() error {
	if p := os.Getenv(configEnvVar); p != "" {
		if err := l.k.Load(file.Provider(p), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
		return nil
	}
	for _, p := range l.configPaths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := l.k.Load(file.Provider(p), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
		return nil
	}

	return nil
}

// loadEnv maps TSPSOLVE_SOLVE__TIME_BUDGET to solve.time_budget: the prefix is
// dropped, "__" separates sections and single underscores stay in field names.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, l.envPrefix))
		if key == "config" {
			return "", nil
		}

		return strings.ReplaceAll(key, "__", "."), value
	}), nil)
}

// Load reads configuration with default search paths and ./.env.
func Load(opts ...LoaderOption) (*Config, error) {
	return NewLoader(append([]LoaderOption{WithDotEnv(".env")}, opts...)...).Load()
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtsp/solcache"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := isolated(t).Load()
	require.NoError(t, err)

	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown strategy", func(c *Config) { c.Solve.Strategy = "bfs" }},
		{"negative budget", func(c *Config) { c.Solve.TimeBudget = -1 }},
		{"negative workers", func(c *Config) { c.Solve.Workers = -2 }},
		{"empty box", func(c *Config) { c.Generate.Width = 0 }},
		{"log level", func(c *Config) { c.Log.Level = "trace" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"log output", func(c *Config) { c.Log.Output = "syslog" }},
		{"cache backend", func(c *Config) { c.Cache.Backend = "memcached" }},
		{"memory backend", func(c *Config) { c.Cache.Backend = solcache.BackendMemory }},
		{"redis addr", func(c *Config) { c.Cache.Backend = CacheRedis; c.Cache.RedisAddr = "" }},
		{"metrics textfile", func(c *Config) { c.Metrics.Enabled = true; c.Metrics.Textfile = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			require.NoError(t, cfg.Validate())
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLogConfig_Logger(t *testing.T) {
	lc := LogConfig{Level: "warn", Format: "json", Output: "file", FilePath: "x.log", MaxSize: 5}
	got := lc.Logger()
	assert.Equal(t, "warn", got.Level)
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "x.log", got.FilePath)
	assert.Equal(t, 5, got.MaxSize)
}

func TestCacheConfig_Options(t *testing.T) {
	cc := CacheConfig{Backend: CacheRedis, TTL: 5, RedisAddr: "r:6379", RedisDB: 2}
	got := cc.Options()
	assert.Equal(t, "redis", got.Backend)
	assert.Equal(t, "r:6379", got.RedisAddr)
	assert.Equal(t, 2, got.RedisDB)
	assert.Zero(t, got.Size)
}

// Package solcache memoises exact solutions across runs, keyed by a hash of
// the point set. Only exact results are stored: they do not depend on a time
// budget, so a cached tour is as good as a fresh search.
package solcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvtsp/tsp"
)

// Backend names.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

var (
	// ErrMiss is returned by Get when no tour is stored under the key.
	ErrMiss = errors.New("solcache: miss")
	// ErrUnknownBackend is returned by New for an unsupported backend name.
	ErrUnknownBackend = errors.New("solcache: unknown backend")
)

// Cache stores tours by key.
type Cache interface {
	// Get returns the tour stored under key or ErrMiss.
	Get(ctx context.Context, key string) (tsp.Tour, error)
	// Set stores t under key, replacing any previous value.
	Set(ctx context.Context, key string, t tsp.Tour) error
	// Close releases backend resources.
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend       string
	Size          int           // memory: max entries
	TTL           time.Duration // ≤ 0: no expiry
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// New opens the configured backend. BackendNone (or "") yields a cache that
// never hits.
func New(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case BackendNone, "":
		return Nop{}, nil
	case BackendMemory:
		return NewMemory(opts.Size, opts.TTL), nil
	case BackendRedis:
		return NewRedis(ctx, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) (tsp.Tour, error) { return tsp.Tour{}, ErrMiss }
func (Nop) Set(context.Context, string, tsp.Tour) error   { return nil }
func (Nop) Close() error                                  { return nil }

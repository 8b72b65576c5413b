package solcache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/katalvlaran/lvtsp/tsp"
)

// Memory is an in-process LRU with optional expiry. It lives only as long as
// the process, so it serves library callers that solve repeatedly; tspsolve
// configuration offers none and redis only.
type Memory struct {
	lru *expirable.LRU[string, tsp.Tour]
}

// NewMemory returns a Memory cache holding at most size tours (size ≤ 0
// means unbounded) for ttl each (ttl ≤ 0 means no expiry).
func NewMemory(size int, ttl time.Duration) *Memory {
	if ttl < 0 {
		ttl = 0
	}

	return &Memory{lru: expirable.NewLRU[string, tsp.Tour](size, nil, ttl)}
}

func (m *Memory) Get(_ context.Context, key string) (tsp.Tour, error) {
	t, ok := m.lru.Get(key)
	if !ok {
		return tsp.Tour{}, ErrMiss
	}

	return t.Clone(), nil
}

func (m *Memory) Set(_ context.Context, key string, t tsp.Tour) error {
	m.lru.Add(key, t.Clone())
	return nil
}

// Len reports the number of live entries.
func (m *Memory) Len() int { return m.lru.Len() }

func (m *Memory) Close() error {
	m.lru.Purge()
	return nil
}

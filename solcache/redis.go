package solcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/lvtsp/tsp"
)

// pingTimeout bounds the connectivity check in NewRedis.
const pingTimeout = 5 * time.Second

// Redis stores tours as JSON strings.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects and pings the server.
func NewRedis(ctx context.Context, opts Options) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.RedisAddr,
		Password: opts.RedisPassword,
		DB:       opts.RedisDB,
	})

	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("solcache: redis ping failed: %w", err)
	}

	ttl := opts.TTL
	if ttl < 0 {
		ttl = 0
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (tsp.Tour, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return tsp.Tour{}, ErrMiss
		}
		return tsp.Tour{}, err
	}

	var t tsp.Tour
	if err := json.Unmarshal(raw, &t); err != nil {
		return tsp.Tour{}, fmt.Errorf("solcache: decode %s: %w", key, err)
	}

	return t, nil
}

func (r *Redis) Set(ctx context.Context, key string, t tsp.Tour) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, key, raw, r.ttl).Err()
}

func (r *Redis) Close() error { return r.client.Close() }

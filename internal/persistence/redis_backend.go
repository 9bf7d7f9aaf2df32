package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/config"
)

const (
	keyNamespace   = "oyg"
	snapshotPrefix = "cart_snapshot"
)

type redisCmdable interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisBackend keeps the snapshot in Redis, useful for session-scoped guest
// carts where an optional TTL lets abandoned carts expire.
type RedisBackend struct {
	store redisCmdable
	key   string
	ttl   time.Duration

	raw *redis.Client
}

// NewRedisBackend connects to Redis and verifies connectivity.
func NewRedisBackend(ctx context.Context, cfg config.RedisConfig, scope string, ttl time.Duration) (*RedisBackend, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("redis url required")
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	backend := newRedisBackend(raw, scope, ttl)
	backend.raw = raw
	return backend, nil
}

func newRedisBackend(store redisCmdable, scope string, ttl time.Duration) *RedisBackend {
	if scope == "" {
		scope = "default"
	}
	return &RedisBackend{
		store: store,
		key:   fmt.Sprintf("%s:%s:%s", keyNamespace, snapshotPrefix, scope),
		ttl:   ttl,
	}
}

func (r *RedisBackend) Write(ctx context.Context, data []byte) error {
	if err := r.store.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("set snapshot key: %w", err)
	}
	return nil
}

func (r *RedisBackend) Read(ctx context.Context) ([]byte, error) {
	data, err := r.store.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot key: %w", err)
	}
	return data, nil
}

// Close releases the owned connection, if this backend dialed one.
func (r *RedisBackend) Close() error {
	if r.raw == nil {
		return nil
	}
	return r.raw.Close()
}

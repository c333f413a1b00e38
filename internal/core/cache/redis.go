package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Backend is the slice of the key-value store the cache needs. A redis
// client backs it in production, an in-memory map in tests.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type redisBackend struct {
	rdb *redis.Client
}

func (b redisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	return b.rdb.Get(ctx, key).Bytes()
}

func (b redisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return b.rdb.Set(ctx, key, value, ttl).Err()
}

func (b redisBackend) Del(ctx context.Context, keys ...string) error {
	return b.rdb.Del(ctx, keys...).Err()
}

type Cache struct {
	backend Backend
	sf      singleflight.Group
}

func New(addr, pass string, db int) *Cache {
	return NewWithBackend(redisBackend{
		rdb: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
	})
}

// NewWithBackend builds a cache over an arbitrary backend.
func NewWithBackend(b Backend) *Cache {
	return &Cache{backend: b}
}

// GetOrLoad reads the key or falls back to load, with singleflight collapsing
// concurrent loads of the same key.
func (c *Cache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if b, err := c.backend.Get(ctx, key); err == nil {
		return b, nil
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		b, e := load(ctx)
		if e != nil {
			return nil, e
		}
		_ = c.backend.Set(ctx, key, b, ttl)
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Invalidate drops keys after a successful mutation. Best effort: a failed
// eviction leaves a stale read until the TTL runs out.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	_ = c.backend.Del(ctx, keys...)
}

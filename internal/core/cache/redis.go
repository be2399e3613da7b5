package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Loader reads a key, falling back to load on a miss.
type Loader interface {
	GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error)
}

type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string        // prepended to every key
	MissTTL  time.Duration // ttl for cached "null" payloads; 0 uses the caller's ttl
}

// Cache is a redis read-through cache. Redis errors count as misses, so
// the store keeps serving while redis is down.
type Cache struct {
	rdb     redis.UniversalClient
	prefix  string
	missTTL time.Duration
	group   singleflight.Group
}

func New(o Options) *Cache {
	rdb := redis.NewClient(&redis.Options{Addr: o.Addr, Password: o.Password, DB: o.DB})
	return NewWithClient(rdb, o)
}

// NewWithClient uses rdb as is; o's connection fields are ignored.
func NewWithClient(rdb redis.UniversalClient, o Options) *Cache {
	return &Cache{rdb: rdb, prefix: o.Prefix, missTTL: o.MissTTL}
}

// GetOrLoad shares one load between concurrent misses on a key. The load
// runs detached from the first caller's cancellation.
func (c *Cache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	k := c.prefix + key
	if b, err := c.rdb.Get(ctx, k).Bytes(); err == nil {
		return b, nil
	}
	v, err, _ := c.group.Do(k, func() (any, error) {
		lctx := context.WithoutCancel(ctx)
		b, err := load(lctx)
		if err != nil {
			return nil, err
		}
		exp := ttl
		if c.missTTL > 0 && string(b) == nullPayload {
			exp = c.missTTL
		}
		_ = c.rdb.Set(lctx, k, b, exp).Err()
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.prefix + k
	}
	return c.rdb.Del(ctx, full...).Err()
}

func (c *Cache) Ping(ctx context.Context) error { return c.rdb.Ping(ctx).Err() }

func (c *Cache) Close() error { return c.rdb.Close() }

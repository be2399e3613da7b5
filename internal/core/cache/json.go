package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const nullPayload = "null"

// GetOrLoadJSON stores load's result as JSON. A nil result is stored as
// "null" and comes back as (nil, nil), so misses are cached too.
func GetOrLoadJSON[T any](c Loader, ctx context.Context, key string, ttl time.Duration, load func(ctx context.Context) (*T, error)) (*T, error) {
	raw, err := c.GetOrLoad(ctx, key, ttl, func(ctx context.Context) ([]byte, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return []byte(nullPayload), nil
		}
		return json.Marshal(v)
	})
	if err != nil {
		return nil, err
	}
	if string(raw) == nullPayload {
		return nil, nil
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("cache: decode %q: %w", key, err)
	}
	return out, nil
}

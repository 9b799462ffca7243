package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"tripstack/internal/domain/flight"
	"tripstack/internal/pkg/config"

	"github.com/go-redis/redis/v8"
)

// Client wraps the Redis connection used for search caching.
type Client struct {
	rdb *redis.Client
}

func NewClient(cfg config.RedisConfig) (*Client, func(), error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := rdb.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
	return &Client{rdb: rdb}, cleanup, nil
}

func (c *Client) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, ttl).Err()
}

func (c *Client) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, err
	}
	return true, nil
}

// LegCache caches the raw candidate legs of a search day. Errors are logged
// and swallowed: the search falls back to the database when Redis is down.
type LegCache struct {
	client *Client
	ttl    time.Duration
}

func NewLegCache(client *Client, cfg config.RedisConfig) *LegCache {
	return &LegCache{client: client, ttl: cfg.SearchTTL}
}

func (c *LegCache) GetLegs(ctx context.Context, key string) ([]flight.Leg, bool) {
	var legs []flight.Leg
	ok, err := c.client.getJSON(ctx, key, &legs)
	if err != nil {
		slog.Warn("leg cache read failed", "key", key, "error", err)
		return nil, false
	}
	return legs, ok
}

func (c *LegCache) SetLegs(ctx context.Context, key string, legs []flight.Leg) {
	if err := c.client.setJSON(ctx, key, legs, c.ttl); err != nil {
		slog.Warn("leg cache write failed", "key", key, "error", err)
	}
}

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/config"
)

// Client wraps the redis connection used for the online feature cache and
// ingestion idempotency keys.
type Client struct {
	rdb *redis.Client
	log *zap.Logger
}

// NewClient creates a redis client and verifies connectivity.
func NewClient(ctx context.Context, cfg config.Redis, log *zap.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Info("Redis connection established",
		zap.String("host", cfg.Host),
		zap.String("port", cfg.Port))

	return &Client{rdb: rdb, log: log}, nil
}

// Get returns the cached value for key and whether it was present.
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return val, true, nil
}

// SetWithTTL stores value under key for at most ttl.
func (c *Client) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Delete removes the entry for key.
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Seen reports whether the event id has already been recorded.
func (c *Client) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := c.rdb.Exists(ctx, "event:"+eventID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check event %q: %w", eventID, err)
	}
	return n > 0, nil
}

// MarkSeen records an ingested event id and reports whether this delivery is
// the first one.
func (c *Client) MarkSeen(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	first, err := c.rdb.SetNX(ctx, "event:"+eventID, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark event %q seen: %w", eventID, err)
	}
	return first, nil
}

// Close closes the redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

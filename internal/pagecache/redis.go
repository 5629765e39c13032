package pagecache

import (
	"context"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "pagecache:"

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisCache returns a Redis-backed cache shared across instances.
func NewRedisCache(client *redis.Client, ttl time.Duration, log *zap.Logger) Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &redisCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *redisCache) Get(ctx context.Context, path string) ([]byte, bool) {
	key := normalizePath(path)
	if key == "" {
		return nil, false
	}

	payload, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) && c.log != nil {
			c.log.Warn("page cache read failed", zap.String("path", key), zap.Error(err))
		}
		return nil, false
	}
	return payload, true
}

func (c *redisCache) Set(ctx context.Context, path string, payload []byte) {
	key := normalizePath(path)
	if key == "" || len(payload) == 0 {
		return
	}

	if err := c.client.Set(ctx, keyPrefix+key, payload, c.ttl).Err(); err != nil && c.log != nil {
		c.log.Warn("page cache write failed", zap.String("path", key), zap.Error(err))
	}
}

func (c *redisCache) Invalidate(ctx context.Context, path string) error {
	key := normalizePath(path)
	if key == "" {
		return nil
	}
	return c.client.Del(ctx, keyPrefix+key).Err()
}

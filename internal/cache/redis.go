package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JagtapGaurav/Matrimonial/internal/config"
)

// shortlistTTL bounds how long a cached shortlist survives without access.
const shortlistTTL = time.Hour

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("cache: key not found")

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return val, err
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	return c.Client.Del(ctx, keys...).Err()
}

// KeyForSession generates the Redis key holding a session token's user id.
func (c *RedisCache) KeyForSession(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// KeyForShortlist generates the Redis key for a viewer's cached shortlist set.
func (c *RedisCache) KeyForShortlist(viewerID string) string {
	return fmt.Sprintf("shortlist:ids:%s", viewerID)
}

// GetShortlist returns the cached shortlist id set for a viewer.
// A cache miss returns ok=false; callers fall back to the DB.
func (c *RedisCache) GetShortlist(ctx context.Context, viewerID string) ([]string, bool, error) {
	key := c.KeyForShortlist(viewerID)
	exists, err := c.Client.Exists(ctx, key).Result()
	if err != nil || exists == 0 {
		return nil, false, err
	}
	ids, err := c.Client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, false, err
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, shortlistTTL).Err()
	return ids, true, nil
}

// SetShortlist replaces the cached shortlist set for a viewer.
func (c *RedisCache) SetShortlist(ctx context.Context, viewerID string, ids []string) error {
	key := c.KeyForShortlist(viewerID)
	pipe := c.Client.TxPipeline()
	pipe.Del(ctx, key)
	if len(ids) > 0 {
		members := make([]interface{}, len(ids))
		for i, id := range ids {
			members[i] = id
		}
		pipe.SAdd(ctx, key, members...)
	}
	pipe.Expire(ctx, key, shortlistTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// InvalidateShortlist drops the cached set so the next read goes to the DB.
func (c *RedisCache) InvalidateShortlist(ctx context.Context, viewerID string) error {
	return c.Client.Del(ctx, c.KeyForShortlist(viewerID)).Err()
}

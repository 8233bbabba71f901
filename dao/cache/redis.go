package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "bookbridge:cache:"

// RedisStore keeps entries in Redis and lets Redis expire them.
type RedisStore struct {
	redis *redis.Client
}

func NewRedisStore(rds *redis.Client) *RedisStore {
	return &RedisStore{rds}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.redis.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.redis.Set(ctx, redisKeyPrefix+key, value, ttl).Err()
}

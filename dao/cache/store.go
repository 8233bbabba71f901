package cache

import (
	"context"
	"time"
)

// Store holds encoded payloads with an absolute expiry. An expired entry is
// reported as a miss exactly like an absent one.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

package cache

import (
	"BookBridge/config"
	"BookBridge/pkg/client"
	"BookBridge/pkg/log"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var lookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bookbridge_cache_lookups_total",
		Help: "Read-through cache lookups by result",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(lookups)
}

// Cache pairs a Store with the fixed TTL applied to every entry. Writes
// elsewhere in the service never purge entries, so a cached read can trail
// a mutation by up to one TTL.
type Cache struct {
	store Store
	ttl   time.Duration
}

func New(store Store, ttl time.Duration) *Cache {
	return &Cache{store: store, ttl: ttl}
}

// NewCache builds the configured backend.
func NewCache(conf *config.Config) (*Cache, error) {
	switch conf.Cache.Driver {
	case config.CacheLocal:
		return New(NewLocalStore(), conf.Cache.TTL), nil
	case config.CacheRedis:
		rds, err := client.NewRedisClient(conf)
		if err != nil {
			return nil, err
		}
		return New(NewRedisStore(rds), conf.Cache.TTL), nil
	default:
		return nil, fmt.Errorf("unsupported cache driver %q", conf.Cache.Driver)
	}
}

func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Remember returns the cached value for key, or runs load, stores its result
// for the TTL and returns it. Failed loads are not cached. Cache faults are
// logged and fall through to load.
func Remember[T any](ctx context.Context, c *Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if raw, ok, err := c.store.Get(ctx, key); err != nil {
		log.L.Warn("cache get failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			lookups.WithLabelValues("hit").Inc()
			log.L.Debug("cache hit", zap.String("key", key))
			return v, nil
		}
		log.L.Warn("cache entry undecodable", zap.String("key", key))
	}
	lookups.WithLabelValues("miss").Inc()

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		log.L.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return v, nil
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		log.L.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return v, nil
}

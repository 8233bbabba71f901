package config

import "time"

const (
	CacheLocal = "local"
	CacheRedis = "redis"
)

// Cache selects the read-through cache backend. Entries are never invalidated
// on writes, so TTL bounds how stale a cached read may be.
type Cache struct {
	Driver string        `json:"driver" yaml:"driver"`
	TTL    time.Duration `json:"ttl" yaml:"ttl"`
}

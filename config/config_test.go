package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	conf, err := Parse([]byte("jwt:\n  secret: s3cret\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, conf.Server.Http)
	assert.Equal(t, DriverMySQL, conf.Database.Driver)
	assert.Equal(t, 7*24*time.Hour, conf.Jwt.Expire)
	assert.Equal(t, CacheLocal, conf.Cache.Driver)
	assert.Equal(t, 10*time.Second, conf.Cache.TTL)
	assert.False(t, conf.Debug())
}

func TestParse_Overrides(t *testing.T) {
	doc := `
app:
  env: prod
  debug: true
server:
  http: 9000
database:
  driver: sqlite
  path: /tmp/bookbridge.db
jwt:
  secret: abc
  expire: 1h
cache:
  driver: redis
  ttl: 30s
redis:
  address: cache.internal
  port: 6380
`
	conf, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.True(t, conf.Debug())
	assert.Equal(t, 9000, conf.Server.Http)
	assert.Equal(t, "/tmp/bookbridge.db?_foreign_keys=on", conf.Database.Dsn())
	assert.Equal(t, time.Hour, conf.Jwt.Expire)
	assert.Equal(t, CacheRedis, conf.Cache.Driver)
	assert.Equal(t, 30*time.Second, conf.Cache.TTL)
	assert.Equal(t, "cache.internal:6380", conf.Redis.Addr())
}

func TestParse_MissingSecret(t *testing.T) {
	_, err := Parse([]byte("server:\n  http: 80\n"))
	assert.Error(t, err)
}

func TestDatabase_MySQLDsn(t *testing.T) {
	d := &Database{Driver: DriverMySQL, Host: "db", Port: 3306, Username: "u", Password: "p", Database: "bookbridge"}
	assert.Equal(t, "u:p@tcp(db:3306)/bookbridge?charset=utf8mb4&parseTime=True&loc=Local", d.Dsn())
}

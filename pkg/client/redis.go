package client

import (
	"BookBridge/config"
	"BookBridge/pkg/log"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRedisClient(conf *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr(),
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.L.Error("connect redis error", zap.String("addr", conf.Redis.Addr()), zap.Error(err))
		return nil, err
	}
	log.L.Info("redis client success", zap.String("addr", conf.Redis.Addr()))
	return client, nil
}

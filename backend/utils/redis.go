package utils

import (
	"context"
	"fmt"
	"time"

	"questboard/backend/config"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// InitRedis connects to Redis when REDIS_ADDR is configured. It returns a nil
// client when Redis is not configured.
func InitRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		logrus.Info("REDIS_ADDR not set, rate limiting disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     20,
		MinIdleConns: 2,
		MaxConnAge:   30 * time.Minute,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.RedisAddr, err)
	}

	logrus.WithField("addr", cfg.RedisAddr).Info("Redis connected")
	return client, nil
}

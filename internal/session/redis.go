package session

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

// NewRedisClient connects to REDIS_ADDR. It returns nil when Redis is not
// configured or unreachable; callers degrade to the no-op behaviour.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s, continuing without it: %v", cfg.RedisAddr, err)
		_ = client.Close()
		return nil
	}
	return client
}

// NewRevoker picks the Redis revoker when a client is available.
func NewRevoker(rdb *redis.Client) Revoker {
	if rdb == nil {
		return NopRevoker{}
	}
	return NewRedisRevoker(rdb)
}

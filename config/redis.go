package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// NewRedis returns a Redis client, or nil when REDIS_ADDR is unset or the
// server is unreachable. A nil client disables Redis-backed caching.
func NewRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("Redis not configured, caching disabled.")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Println("Redis configured but not reachable, caching disabled.")
		return nil
	}
	log.Println("Redis connection successful.")
	return client
}

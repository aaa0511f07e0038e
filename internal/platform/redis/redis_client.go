// Package redis constructs the optional Redis client used for sessions.
package redis

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured is returned when no Redis host is set in the environment.
var ErrNotConfigured = errors.New("redis not configured")

// NewRedisClient connects to Redis using REDIS_HOST, REDIS_PORT and
// REDIS_PASSWORD. Returns ErrNotConfigured when REDIS_HOST is unset so the
// caller can fall back to the database-backed session store.
func NewRedisClient() (*redis.Client, error) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return nil, ErrNotConfigured
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	addr := host + ":" + port
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}

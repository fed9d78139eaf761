package database

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis builds a redis client for the notification hub fan-out.
func NewRedis(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

// Ping verifies the connection at startup.
func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

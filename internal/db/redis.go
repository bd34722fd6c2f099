package db

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient creates a Redis client for the given address and verifies
// the connection with a ping.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

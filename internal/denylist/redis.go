package denylist

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "revoked:"

type redisDenylist struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed Denylist. Redis handles entry expiry via
// key TTLs.
func NewRedis(client *redis.Client) Denylist {
	return &redisDenylist{client: client}
}

func (d *redisDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, keyPrefix+tokenID, "1", ttl).Err()
}

func (d *redisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

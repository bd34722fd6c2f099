// Package denylist tracks revoked token ids so that logout takes effect
// before a token's natural expiry. Entries expire with the token they
// revoke, keeping the set bounded.
//
// Two backends are provided: an in-process map for single-node and test
// use, and Redis for deployments with more than one instance.
package denylist

import (
	"context"
	"sync"
	"time"
)

// Denylist records revoked token ids until the revoked token would have
// expired anyway.
type Denylist interface {
	// Revoke marks a token id as revoked for the given duration.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	// IsRevoked reports whether a token id has been revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type memoryDenylist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

// NewMemory creates an in-process Denylist.
func NewMemory() Denylist {
	return &memoryDenylist{entries: make(map[string]time.Time)}
}

func (d *memoryDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired; nothing to revoke.
		return nil
	}
	d.mu.Lock()
	d.entries[tokenID] = time.Now().Add(ttl)
	d.mu.Unlock()
	return nil
}

func (d *memoryDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	d.mu.RLock()
	deadline, ok := d.entries[tokenID]
	d.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		d.mu.Lock()
		delete(d.entries, tokenID)
		d.mu.Unlock()
		return false, nil
	}
	return true, nil
}

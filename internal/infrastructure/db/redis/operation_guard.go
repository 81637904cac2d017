package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultGuardTTL = 24 * time.Hour

// OperationGuard provides idempotency checks backed by Redis.
// Key format: idem:<operation>:<client-supplied key>
type OperationGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOperationGuard creates an OperationGuard wrapping the given Redis client.
// A non-positive ttl falls back to 24 hours, which comfortably outlives any
// client retry window.
func NewOperationGuard(client *redis.Client, ttl time.Duration) *OperationGuard {
	if ttl <= 0 {
		ttl = defaultGuardTTL
	}
	return &OperationGuard{client: client, ttl: ttl}
}

// IsDuplicate reports whether an operation with this key has already been
// applied.
func (g *OperationGuard) IsDuplicate(ctx context.Context, operation, key string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(operation, key)).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency check: %w", err)
	}
	return n > 0, nil
}

// Mark records that the operation has been applied (expires after the TTL).
func (g *OperationGuard) Mark(ctx context.Context, operation, key string) error {
	return g.client.Set(ctx, g.key(operation, key), "1", g.ttl).Err()
}

func (g *OperationGuard) key(operation, key string) string {
	return fmt.Sprintf("idem:%s:%s", operation, key)
}

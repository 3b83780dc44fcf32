package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	orphanSetKey    = "media:orphans"
	orphanDetailKey = "media:orphan:"
	orphanDetailTTL = 30 * 24 * time.Hour
)

// RedisOrphanLedger keeps orphaned public IDs in a Redis set, with the
// failure reason stored alongside each one for a limited time.
type RedisOrphanLedger struct {
	client *redis.Client
}

// NewRedisOrphanLedger creates a ledger backed by client.
func NewRedisOrphanLedger(client *redis.Client) *RedisOrphanLedger {
	return &RedisOrphanLedger{client: client}
}

// RecordOrphan adds publicID to the orphan set.
func (l *RedisOrphanLedger) RecordOrphan(ctx context.Context, publicID, reason string) error {
	pipe := l.client.TxPipeline()
	pipe.SAdd(ctx, orphanSetKey, publicID)
	pipe.HSet(ctx, orphanDetailKey+publicID, "reason", reason, "recordedAt", time.Now().UTC().Format(time.RFC3339))
	pipe.Expire(ctx, orphanDetailKey+publicID, orphanDetailTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("storage: failed to record orphaned asset %s: %w", publicID, err)
	}
	return nil
}

// Orphans lists every recorded orphaned public ID.
func (l *RedisOrphanLedger) Orphans(ctx context.Context) ([]string, error) {
	ids, err := l.client.SMembers(ctx, orphanSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: failed to list orphaned assets: %w", err)
	}
	return ids, nil
}

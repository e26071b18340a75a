package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"webhook-ops/internal/idempotency"
	"webhook-ops/internal/model"
	"webhook-ops/pkg/log"
)

const keyPrefix = "idem:"

type implStore struct {
	client *redis.Client
	ttl    time.Duration
	l      log.Logger
}

// New creates a Redis-backed idempotency store. SET NX is the atomic
// insert-if-absent primitive; Redis key expiry enforces the TTL.
func New(client *redis.Client, ttl time.Duration, l log.Logger) idempotency.Store {
	if client == nil {
		panic("idempotency/redis: client is required")
	}
	return &implStore{client: client, ttl: ttl, l: l}
}

// CheckAndRecord records the event ID if unseen. Exactly one concurrent
// caller for a given ID gets isDuplicate=false.
func (s *implStore) CheckAndRecord(ctx context.Context, eventID string) (bool, error) {
	if eventID == "" {
		return false, idempotency.ErrEmptyEventID
	}

	seenAt := time.Now().UTC().Format(time.RFC3339Nano)
	inserted, err := s.client.SetNX(ctx, keyPrefix+eventID, seenAt, s.ttl).Result()
	if err != nil {
		s.l.Errorf(ctx, "idempotency/redis.CheckAndRecord: %v", err)
		return false, fmt.Errorf("%w: %v", idempotency.ErrStoreUnavailable, err)
	}

	return !inserted, nil
}

// CleanupExpired removes keys that somehow lack a TTL (Redis expires
// keyed records on its own; this is the manual/cron safety net).
func (s *implStore) CleanupExpired(ctx context.Context) (int, error) {
	var removed int
	var cursor uint64

	for {
		keys, next, err := s.client.Scan(ctx, cursor, keyPrefix+"*", 200).Result()
		if err != nil {
			s.l.Errorf(ctx, "idempotency/redis.CleanupExpired scan: %v", err)
			return removed, fmt.Errorf("%w: %v", idempotency.ErrStoreUnavailable, err)
		}

		for _, key := range keys {
			ttl, err := s.client.TTL(ctx, key).Result()
			if err != nil {
				return removed, fmt.Errorf("%w: %v", idempotency.ErrStoreUnavailable, err)
			}
			// -1 means no expiry set; reinstall the TTL budget rather
			// than letting the key live forever.
			if ttl == -1 {
				if err := s.client.Del(ctx, key).Err(); err != nil {
					return removed, fmt.Errorf("%w: %v", idempotency.ErrStoreUnavailable, err)
				}
				removed++
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return removed, nil
}

// List returns up to limit tracked records for admin introspection.
func (s *implStore) List(ctx context.Context, limit int) ([]model.IdempotencyRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	records := make([]model.IdempotencyRecord, 0, limit)
	var cursor uint64

	for len(records) < limit {
		keys, next, err := s.client.Scan(ctx, cursor, keyPrefix+"*", 200).Result()
		if err != nil {
			s.l.Errorf(ctx, "idempotency/redis.List scan: %v", err)
			return nil, fmt.Errorf("%w: %v", idempotency.ErrStoreUnavailable, err)
		}

		for _, key := range keys {
			if len(records) >= limit {
				break
			}

			val, err := s.client.Get(ctx, key).Result()
			if err == redis.Nil {
				continue // expired between SCAN and GET
			}
			if err != nil {
				return nil, fmt.Errorf("%w: %v", idempotency.ErrStoreUnavailable, err)
			}

			ttl, err := s.client.TTL(ctx, key).Result()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", idempotency.ErrStoreUnavailable, err)
			}

			rec := model.IdempotencyRecord{EventID: key[len(keyPrefix):]}
			if seenAt, perr := time.Parse(time.RFC3339Nano, val); perr == nil {
				rec.SeenAt = seenAt
			}
			if ttl > 0 {
				rec.ExpiresAt = time.Now().UTC().Add(ttl)
			}
			records = append(records, rec)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return records, nil
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"webhook-ops/internal/idempotency"
	"webhook-ops/internal/model"
)

type implStore struct {
	mu      sync.Mutex
	records map[string]model.IdempotencyRecord
	ttl     time.Duration
	now     func() time.Time
}

// New creates an in-memory idempotency store. Used by tests and
// dependency-free local runs; production deployments use the Redis
// store.
func New(ttl time.Duration) idempotency.Store {
	return &implStore{
		records: make(map[string]model.IdempotencyRecord),
		ttl:     ttl,
		now:     time.Now,
	}
}

// NewWithClock creates a store with an injected clock for TTL tests.
func NewWithClock(ttl time.Duration, now func() time.Time) idempotency.Store {
	return &implStore{
		records: make(map[string]model.IdempotencyRecord),
		ttl:     ttl,
		now:     now,
	}
}

func (s *implStore) CheckAndRecord(ctx context.Context, eventID string) (bool, error) {
	if eventID == "" {
		return false, idempotency.ErrEmptyEventID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if rec, ok := s.records[eventID]; ok && now.Before(rec.ExpiresAt) {
		return true, nil
	}

	s.records[eventID] = model.IdempotencyRecord{
		EventID:   eventID,
		SeenAt:    now,
		ExpiresAt: now.Add(s.ttl),
	}
	return false, nil
}

func (s *implStore) CleanupExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, rec := range s.records {
		if !now.Before(rec.ExpiresAt) {
			delete(s.records, id)
			removed++
		}
	}
	return removed, nil
}

func (s *implStore) List(ctx context.Context, limit int) ([]model.IdempotencyRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]model.IdempotencyRecord, 0, len(s.records))
	for _, rec := range s.records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].SeenAt.After(records[j].SeenAt)
	})

	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

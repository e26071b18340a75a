package memory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"webhook-ops/internal/idempotency"
	"webhook-ops/internal/idempotency/memory"
)

func TestCheckAndRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("first delivery is not a duplicate", func(t *testing.T) {
		store := memory.New(time.Hour)

		dup, err := store.CheckAndRecord(ctx, "evt_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dup {
			t.Error("first delivery reported as duplicate")
		}
	})

	t.Run("second delivery is a duplicate", func(t *testing.T) {
		store := memory.New(time.Hour)

		store.CheckAndRecord(ctx, "evt_1")
		dup, err := store.CheckAndRecord(ctx, "evt_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !dup {
			t.Error("redelivery not reported as duplicate")
		}
	})

	t.Run("empty event id rejected", func(t *testing.T) {
		store := memory.New(time.Hour)

		if _, err := store.CheckAndRecord(ctx, ""); err != idempotency.ErrEmptyEventID {
			t.Errorf("expected ErrEmptyEventID, got %v", err)
		}
	})

	t.Run("exactly one winner under concurrency", func(t *testing.T) {
		store := memory.New(time.Hour)

		const n = 50
		var firsts int64
		var wg sync.WaitGroup
		start := make(chan struct{})

		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				dup, err := store.CheckAndRecord(ctx, "evt_race")
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				if !dup {
					atomic.AddInt64(&firsts, 1)
				}
			}()
		}

		close(start)
		wg.Wait()

		if firsts != 1 {
			t.Errorf("expected exactly 1 non-duplicate, got %d", firsts)
		}
	})
}

func TestTTLExpiry(t *testing.T) {
	ctx := context.Background()

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}
	advance := func(d time.Duration) {
		mu.Lock()
		current = current.Add(d)
		mu.Unlock()
	}

	store := memory.NewWithClock(time.Hour, now)

	if dup, _ := store.CheckAndRecord(ctx, "evt_ttl"); dup {
		t.Fatal("first delivery reported as duplicate")
	}
	if dup, _ := store.CheckAndRecord(ctx, "evt_ttl"); !dup {
		t.Fatal("redelivery inside TTL not reported as duplicate")
	}

	advance(time.Hour + time.Minute)

	removed, err := store.CleanupExpired(ctx)
	if err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed record, got %d", removed)
	}

	// After expiry the same ID admits a new delivery.
	dup, err := store.CheckAndRecord(ctx, "evt_ttl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dup {
		t.Error("delivery after expiry still reported as duplicate")
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	store := memory.New(time.Hour)

	store.CheckAndRecord(ctx, "evt_a")
	store.CheckAndRecord(ctx, "evt_b")
	store.CheckAndRecord(ctx, "evt_c")

	records, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}
	for _, rec := range records {
		if rec.ExpiresAt.Sub(rec.SeenAt) != time.Hour {
			t.Errorf("record %s: expires_at is not seen_at + TTL", rec.EventID)
		}
	}
}

package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webhook-ops/internal/event"
	repo "webhook-ops/internal/event/repository"
	"webhook-ops/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo holds one original event and records writes.
type mockRepo struct {
	original    model.InboundEvent
	created     []repo.CreateEventOptions
	replayedIDs []string
}

func (m *mockRepo) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.InboundEvent, error) {
	m.created = append(m.created, opt)
	return model.InboundEvent{ID: opt.ID, Source: opt.Source, Payload: opt.Payload}, nil
}

func (m *mockRepo) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (model.InboundEvent, error) {
	if opt.ID == m.original.ID {
		return m.original, nil
	}
	return model.InboundEvent{}, nil
}

func (m *mockRepo) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.InboundEvent, error) {
	return nil, nil
}

func (m *mockRepo) MarkReplayed(ctx context.Context, id string) error {
	m.replayedIDs = append(m.replayedIDs, id)
	return nil
}

func (m *mockRepo) GetStats(ctx context.Context) (model.EventStats, error) {
	return model.EventStats{}, nil
}

func TestReplay(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"event":"payment.succeeded","data":{"id":"evt_1"},  "spacing":"preserved"}`)

	t.Run("payload arrives byte-for-byte and replay is bookkept", func(t *testing.T) {
		var received []byte
		var gotSig, gotTS string
		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received, _ = io.ReadAll(r.Body)
			gotSig = r.Header.Get("X-Webhook-Signature")
			gotTS = r.Header.Get("X-Webhook-Timestamp")
			w.WriteHeader(http.StatusOK)
		}))
		defer target.Close()

		mr := &mockRepo{original: model.InboundEvent{
			ID:      "evt-orig",
			Source:  "stripe",
			Payload: payload,
		}}
		uc := New(mr, event.NewHTTPDispatcher("current-secret", 5*time.Second), &mockLogger{})

		out, err := uc.Replay(ctx, event.ReplayInput{EventID: "evt-orig", TargetURL: target.URL})
		if err != nil {
			t.Fatalf("Replay: %v", err)
		}

		if !bytes.Equal(received, payload) {
			t.Errorf("target received %q, want the original bytes %q", received, payload)
		}
		if gotSig == "" || gotTS == "" {
			t.Error("replay must carry a fresh signature and timestamp")
		}
		if out.DeliveryAttempts != 1 {
			t.Errorf("DeliveryAttempts = %d, want 1", out.DeliveryAttempts)
		}
		if out.DispatchedTo != target.URL {
			t.Errorf("DispatchedTo = %q", out.DispatchedTo)
		}

		// One new immutable entry referencing the original; one
		// replay-count bump on the original.
		if len(mr.created) != 1 || mr.created[0].ReplayOf != "evt-orig" {
			t.Errorf("created entries = %+v", mr.created)
		}
		if !bytes.Equal(mr.created[0].Payload, payload) {
			t.Error("replay entry must store the original payload bytes")
		}
		if len(mr.replayedIDs) != 1 || mr.replayedIDs[0] != "evt-orig" {
			t.Errorf("replayedIDs = %v, want exactly one bump of the original", mr.replayedIDs)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		uc := New(&mockRepo{}, event.NewHTTPDispatcher("s", time.Second), &mockLogger{})
		_, err := uc.Replay(ctx, event.ReplayInput{EventID: "missing", TargetURL: "http://example.com"})
		if !errors.Is(err, event.ErrEventNotFound) {
			t.Fatalf("got %v, want ErrEventNotFound", err)
		}
	})

	t.Run("no target anywhere", func(t *testing.T) {
		mr := &mockRepo{original: model.InboundEvent{ID: "evt-orig", Payload: payload}}
		uc := New(mr, event.NewHTTPDispatcher("s", time.Second), &mockLogger{})
		_, err := uc.Replay(ctx, event.ReplayInput{EventID: "evt-orig"})
		if !errors.Is(err, event.ErrNoReplayTarget) {
			t.Fatalf("got %v, want ErrNoReplayTarget", err)
		}
	})

	t.Run("failed dispatch still records the attempt, original untouched", func(t *testing.T) {
		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer target.Close()

		mr := &mockRepo{original: model.InboundEvent{ID: "evt-orig", Payload: payload}}
		uc := New(mr, event.NewHTTPDispatcher("s", time.Second), &mockLogger{})

		out, err := uc.Replay(ctx, event.ReplayInput{EventID: "evt-orig", TargetURL: target.URL})
		if !errors.Is(err, event.ErrReplayDispatchFailed) {
			t.Fatalf("got %v, want ErrReplayDispatchFailed", err)
		}
		if out.DeliveryAttempts != 3 {
			t.Errorf("DeliveryAttempts = %d, want 3", out.DeliveryAttempts)
		}
		if len(mr.created) != 1 || mr.created[0].Error == "" {
			t.Errorf("a failed replay still gets an entry with the error: %+v", mr.created)
		}
		if len(mr.replayedIDs) != 0 {
			t.Error("replay count must not bump on failed dispatch")
		}
	})
}

func TestRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("empty payload rejected", func(t *testing.T) {
		uc := New(&mockRepo{}, event.NewHTTPDispatcher("s", time.Second), &mockLogger{})
		_, err := uc.Record(ctx, event.RecordEventInput{Source: "stripe"})
		if !errors.Is(err, event.ErrEmptyPayload) {
			t.Fatalf("got %v, want ErrEmptyPayload", err)
		}
	})

	t.Run("missing id is generated", func(t *testing.T) {
		mr := &mockRepo{}
		uc := New(mr, event.NewHTTPDispatcher("s", time.Second), &mockLogger{})
		ev, err := uc.Record(ctx, event.RecordEventInput{Source: "stripe", Payload: []byte(`{}`)})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
		if ev.ID == "" {
			t.Error("expected a generated id")
		}
	})
}

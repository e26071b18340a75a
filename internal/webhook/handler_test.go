package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"webhook-ops/internal/alert"
	"webhook-ops/internal/event"
	"webhook-ops/internal/idempotency/memory"
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

// Mock event usecase for testing
type mockEventUC struct {
	recorded []event.RecordEventInput
}

func (m *mockEventUC) Record(ctx context.Context, input event.RecordEventInput) (model.InboundEvent, error) {
	m.recorded = append(m.recorded, input)
	id := input.ID
	if id == "" {
		id = "generated"
	}
	return model.InboundEvent{ID: id, Source: input.Source}, nil
}

func (m *mockEventUC) GetRecent(ctx context.Context, input event.ListEventsInput) ([]model.InboundEvent, error) {
	return nil, nil
}

func (m *mockEventUC) Detail(ctx context.Context, id string) (model.InboundEvent, error) {
	return model.InboundEvent{}, nil
}

func (m *mockEventUC) Replay(ctx context.Context, input event.ReplayInput) (event.ReplayOutput, error) {
	return event.ReplayOutput{}, nil
}

func (m *mockEventUC) GetStats(ctx context.Context) (model.EventStats, error) {
	return model.EventStats{}, nil
}

// Mock alert usecase for testing
type mockAlertUC struct {
	created []alert.CreateAlertInput
}

func (m *mockAlertUC) Create(ctx context.Context, sc model.Scope, input alert.CreateAlertInput) (model.Alert, error) {
	m.created = append(m.created, input)
	return model.Alert{ID: "alert-1"}, nil
}

func (m *mockAlertUC) List(ctx context.Context, input alert.ListAlertsInput) ([]model.Alert, error) {
	return nil, nil
}

func (m *mockAlertUC) Detail(ctx context.Context, id string) (alert.DetailAlertOutput, error) {
	return alert.DetailAlertOutput{}, nil
}

func (m *mockAlertUC) Dismiss(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func (m *mockAlertUC) SweepExpired(ctx context.Context) (int, error) {
	return 0, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *Handler, *mockEventUC, *mockAlertUC) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	eventUC := &mockEventUC{}
	alertUC := &mockAlertUC{}
	h := NewHandler(Config{
		Secret:          testSecret,
		FreshnessWindow: 5 * time.Minute,
		RateLimitPerMin: 600,
	}, memory.New(time.Hour), eventUC, alertUC, &mockLogger{})

	r := gin.New()
	RegisterRoutes(r, h)
	return r, h, eventUC, alertUC
}

func postWebhook(r *gin.Engine, body []byte, signature, timestamp string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/stripe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Webhook-Signature", signature)
	}
	if timestamp != "" {
		req.Header.Set("X-Webhook-Timestamp", timestamp)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleInbound(t *testing.T) {
	body := []byte(`{"event":"payment.succeeded","data":{"id":"evt_1"},"id":"evt_1"}`)

	t.Run("valid delivery recorded then duplicate on redelivery", func(t *testing.T) {
		r, _, eventUC, _ := newTestRouter(t)

		ts := time.Now().Unix()
		sig := signTimestamped(testSecret, ts, body)

		w := postWebhook(r, body, sig, strconv.FormatInt(ts, 10))
		if w.Code != http.StatusOK {
			t.Fatalf("first delivery: status %d, body %s", w.Code, w.Body.String())
		}
		if len(eventUC.recorded) != 1 {
			t.Fatalf("expected 1 recorded event, got %d", len(eventUC.recorded))
		}
		rec := eventUC.recorded[0]
		if rec.ID != "evt_1" || !rec.Verified || !bytes.Equal(rec.Payload, body) {
			t.Errorf("recorded event = %+v", rec)
		}

		// Identical redelivery: same body, signature and timestamp.
		w2 := postWebhook(r, body, sig, strconv.FormatInt(ts, 10))
		if w2.Code != http.StatusOK {
			t.Fatalf("redelivery: status %d", w2.Code)
		}
		var resp struct {
			Data struct {
				Status string `json:"status"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w2.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode redelivery response: %v", err)
		}
		if resp.Data.Status != "duplicate" {
			t.Errorf("redelivery status = %q, want duplicate", resp.Data.Status)
		}
		if len(eventUC.recorded) != 1 {
			t.Errorf("redelivery must not record a second event, got %d", len(eventUC.recorded))
		}
	})

	t.Run("invalid signature rejected and alerted", func(t *testing.T) {
		r, _, eventUC, alertUC := newTestRouter(t)

		ts := time.Now().Unix()
		sig := signTimestamped("not-the-configured-secret-at-all", ts, body)

		w := postWebhook(r, body, sig, strconv.FormatInt(ts, 10))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if len(eventUC.recorded) != 1 || eventUC.recorded[0].Verified {
			t.Errorf("expected one unverified event recorded, got %+v", eventUC.recorded)
		}
		if len(alertUC.created) != 1 || alertUC.created[0].Category != model.AlertCategorySecurity {
			t.Errorf("expected a security alert, got %+v", alertUC.created)
		}
	})

	t.Run("missing signature header is a 400", func(t *testing.T) {
		r, _, _, _ := newTestRouter(t)

		w := postWebhook(r, body, "", strconv.FormatInt(time.Now().Unix(), 10))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("stale timestamp rejected", func(t *testing.T) {
		r, _, _, _ := newTestRouter(t)

		ts := time.Now().Add(-10 * time.Minute).Unix()
		sig := signTimestamped(testSecret, ts, body)

		w := postWebhook(r, body, sig, strconv.FormatInt(ts, 10))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("invalid JSON raises webhook failure alert", func(t *testing.T) {
		r, _, eventUC, alertUC := newTestRouter(t)

		bad := []byte(`{"event":`)
		ts := time.Now().Unix()
		sig := signTimestamped(testSecret, ts, bad)

		w := postWebhook(r, bad, sig, strconv.FormatInt(ts, 10))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if len(eventUC.recorded) != 1 || eventUC.recorded[0].Error == "" {
			t.Errorf("expected one event recorded with an error, got %+v", eventUC.recorded)
		}
		if len(alertUC.created) != 1 || alertUC.created[0].Category != model.AlertCategoryWebhook {
			t.Errorf("expected a webhook alert, got %+v", alertUC.created)
		}
	})

	t.Run("idempotency store failure answers 503", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		eventUC := &mockEventUC{}
		h := NewHandler(Config{
			Secret:          testSecret,
			FreshnessWindow: 5 * time.Minute,
			RateLimitPerMin: 600,
		}, &failingStore{}, eventUC, &mockAlertUC{}, &mockLogger{})
		r := gin.New()
		RegisterRoutes(r, h)

		ts := time.Now().Unix()
		sig := signTimestamped(testSecret, ts, body)

		w := postWebhook(r, body, sig, strconv.FormatInt(ts, 10))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", w.Code)
		}
		if len(eventUC.recorded) != 0 {
			t.Errorf("no event must be recorded when the store is down, got %d", len(eventUC.recorded))
		}
	})

	t.Run("event id falls back to body digest", func(t *testing.T) {
		noID := []byte(`{"event":"ping"}`)
		got := extractEventID(noID, "")
		if len(got) != 64 {
			t.Fatalf("digest id length = %d, want 64 hex chars", len(got))
		}
		if got != extractEventID(noID, "") {
			t.Error("digest id must be deterministic")
		}
		if extractEventID(noID, "hdr-1") != "hdr-1" {
			t.Error("header id should win over the digest")
		}
		if extractEventID([]byte(`{"event_id":"e2"}`), "hdr-1") != "e2" {
			t.Error("body event_id should win over the header")
		}
	})
}

// failingStore simulates Redis being down.
type failingStore struct{}

func (f *failingStore) CheckAndRecord(ctx context.Context, eventID string) (bool, error) {
	return false, context.DeadlineExceeded
}

func (f *failingStore) CleanupExpired(ctx context.Context) (int, error) {
	return 0, context.DeadlineExceeded
}

func (f *failingStore) List(ctx context.Context, limit int) ([]model.IdempotencyRecord, error) {
	return nil, context.DeadlineExceeded
}

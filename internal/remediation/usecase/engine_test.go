package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"webhook-ops/internal/model"
	"webhook-ops/internal/remediation"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestHandleAlert(t *testing.T) {
	t.Run("unknown alert returns not found", func(t *testing.T) {
		repo := &mockAlertRepo{} // GetOneAlert returns zero value
		uc := NewWithClock(repo, &mockRunbookUC{}, &mockNotifier{}, &mockLogger{}, time.Second, fixedClock)

		_, err := uc.HandleAlert(context.Background(), "missing")
		if !errors.Is(err, remediation.ErrAlertNotFound) {
			t.Fatalf("expected ErrAlertNotFound, got %v", err)
		}
	})

	t.Run("webhook alert runs replay hint and notify", func(t *testing.T) {
		repo := &mockAlertRepo{alert: model.Alert{
			ID:       "a1",
			Title:    "Webhook delivery failed",
			Severity: model.AlertSeverityWarning,
			Category: model.AlertCategoryWebhook,
			Source:   "stripe",
		}}
		notifier := &mockNotifier{}
		uc := NewWithClock(repo, &mockRunbookUC{}, notifier, &mockLogger{}, time.Second, fixedClock)

		out, err := uc.HandleAlert(context.Background(), "a1")
		if err != nil {
			t.Fatalf("HandleAlert: %v", err)
		}
		if len(out.Actions) != 2 {
			t.Fatalf("expected 2 actions, got %d", len(out.Actions))
		}
		if out.Actions[0].Type != "replay_hint" || out.Actions[1].Type != "notify_slack" {
			t.Errorf("unexpected action types: %s, %s", out.Actions[0].Type, out.Actions[1].Type)
		}
		if out.Summary.Successful != 2 || out.Summary.Failed != 0 {
			t.Errorf("summary = %+v, want 2 successful", out.Summary)
		}
		if len(notifier.sent) != 1 {
			t.Errorf("expected 1 notification, got %d", len(notifier.sent))
		}
		if !repo.marked {
			t.Error("alert was not marked auto-processed")
		}
		if len(repo.appended) != 2 {
			t.Errorf("expected 2 actions appended, got %d", len(repo.appended))
		}
	})

	t.Run("one failing action does not stop the rest", func(t *testing.T) {
		repo := &mockAlertRepo{alert: model.Alert{
			ID:       "a2",
			Title:    "Charge declined",
			Severity: model.AlertSeverityCritical,
			Category: model.AlertCategoryPayment,
		}}
		// payment plan is notify_slack then manual_review; failing the
		// notifier fails action 1 while action 2 still runs.
		notifier := &mockNotifier{err: errors.New("slack is down")}
		uc := NewWithClock(repo, &mockRunbookUC{}, notifier, &mockLogger{}, time.Second, fixedClock)

		out, err := uc.HandleAlert(context.Background(), "a2")
		if err != nil {
			t.Fatalf("HandleAlert: %v", err)
		}
		if len(out.Actions) != 2 {
			t.Fatalf("expected 2 actions, got %d", len(out.Actions))
		}
		if out.Actions[0].Success {
			t.Error("notify action should have failed")
		}
		if out.Actions[0].Error != "slack is down" {
			t.Errorf("error = %q, want %q", out.Actions[0].Error, "slack is down")
		}
		if !out.Actions[1].Success {
			t.Error("manual_review action should have succeeded despite the earlier failure")
		}
		if out.Summary.Successful != 1 || out.Summary.Failed != 1 {
			t.Errorf("summary = %+v, want 1/1", out.Summary)
		}
		if repo.summary != "2 actions: 1 succeeded, 1 failed" {
			t.Errorf("stored summary = %q", repo.summary)
		}
	})

	t.Run("runbook steps run after built-ins", func(t *testing.T) {
		repo := &mockAlertRepo{alert: model.Alert{
			ID:       "a3",
			Title:    "Webhook delivery failed",
			Severity: model.AlertSeverityWarning,
			Category: model.AlertCategoryWebhook,
			Source:   "github",
		}}
		rbUC := &mockRunbookUC{runbooks: []model.Runbook{{
			ID:     "rb1",
			Name:   "GitHub outage drill",
			Source: "github",
			Steps:  []string{"check status page", "rotate the secret"},
			Active: true,
		}}}
		uc := NewWithClock(repo, rbUC, &mockNotifier{}, &mockLogger{}, time.Second, fixedClock)

		out, err := uc.HandleAlert(context.Background(), "a3")
		if err != nil {
			t.Fatalf("HandleAlert: %v", err)
		}
		if len(out.Actions) != 4 {
			t.Fatalf("expected 4 actions (2 built-in + 2 runbook), got %d", len(out.Actions))
		}
		if out.Actions[2].Type != "runbook_step" || out.Actions[3].Type != "runbook_step" {
			t.Errorf("actions 3 and 4 should be runbook steps, got %s, %s",
				out.Actions[2].Type, out.Actions[3].Type)
		}
		if out.Summary.ByType["runbook_step"] != 2 {
			t.Errorf("ByType[runbook_step] = %d, want 2", out.Summary.ByType["runbook_step"])
		}
	})

	t.Run("slow action records timeout", func(t *testing.T) {
		repo := &mockAlertRepo{alert: model.Alert{
			ID:       "a4",
			Title:    "Disk filling",
			Severity: model.AlertSeverityCritical,
			Category: model.AlertCategorySystem,
		}}
		// the system plan has a single notify action; a notifier that
		// blocks past the action timeout must be cut off.
		notifier := &blockingNotifier{}
		uc := NewWithClock(repo, &mockRunbookUC{}, notifier, &mockLogger{}, 20*time.Millisecond, fixedClock)

		out, err := uc.HandleAlert(context.Background(), "a4")
		if err != nil {
			t.Fatalf("HandleAlert: %v", err)
		}
		if len(out.Actions) != 1 {
			t.Fatalf("expected 1 action, got %d", len(out.Actions))
		}
		if out.Actions[0].Success {
			t.Error("blocked action should not succeed")
		}
		if out.Actions[0].Error != "timeout" {
			t.Errorf("error = %q, want %q", out.Actions[0].Error, "timeout")
		}
	})

	t.Run("panicking action is isolated", func(t *testing.T) {
		uc := NewWithClock(&mockAlertRepo{}, &mockRunbookUC{}, &mockNotifier{}, &mockLogger{}, time.Second, fixedClock)

		got := uc.execute(context.Background(), "a5", plannedAction{
			actionType:  "notify_slack",
			description: "boom",
			run:         func(ctx context.Context) error { panic("unexpected state") },
		})
		if got.Success {
			t.Error("panicking action should fail")
		}
		if got.Error != "panic: unexpected state" {
			t.Errorf("error = %q", got.Error)
		}
	})
}

// blockingNotifier ignores context and blocks long enough to trip the
// per-action timeout.
type blockingNotifier struct{}

func (b *blockingNotifier) Send(ctx context.Context, text string) error {
	time.Sleep(200 * time.Millisecond)
	return nil
}

func TestSummarize(t *testing.T) {
	actions := []model.RemediationAction{
		{Type: "notify_slack", Success: true},
		{Type: "runbook_step", Success: true},
		{Type: "runbook_step", Success: false, Error: "timeout"},
	}

	s := remediation.Summarize(actions)
	if s.Total != 3 || s.Successful != 2 || s.Failed != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.ByType["runbook_step"] != 2 || s.ByType["notify_slack"] != 1 {
		t.Errorf("ByType = %+v", s.ByType)
	}
}

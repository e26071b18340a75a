package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"webhook-ops/internal/alert"
	repo "webhook-ops/internal/alert/repository"
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

// fakeRepo is an in-memory alert store implementing the dismiss and
// sweep transitions the way the SQL layer does.
type fakeRepo struct {
	alerts  map[string]*model.Alert
	actions map[string][]model.RemediationAction
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		alerts:  make(map[string]*model.Alert),
		actions: make(map[string][]model.RemediationAction),
	}
}

func (f *fakeRepo) CreateAlert(ctx context.Context, opt repo.CreateAlertOptions) (model.Alert, error) {
	a := model.Alert{
		ID:            opt.ID,
		Title:         opt.Title,
		Message:       opt.Message,
		Severity:      opt.Severity,
		Category:      opt.Category,
		Status:        model.AlertStatusActive,
		Source:        opt.Source,
		Metadata:      opt.Metadata,
		CreatedBy:     opt.CreatedBy,
		AutoDismissAt: opt.AutoDismissAt,
	}
	f.alerts[a.ID] = &a
	return a, nil
}

func (f *fakeRepo) GetOneAlert(ctx context.Context, opt repo.GetOneAlertOptions) (model.Alert, error) {
	if a, ok := f.alerts[opt.ID]; ok {
		return *a, nil
	}
	return model.Alert{}, nil
}

func (f *fakeRepo) ListAlerts(ctx context.Context, opt repo.ListAlertsOptions) ([]model.Alert, error) {
	var out []model.Alert
	for _, a := range f.alerts {
		if opt.Status != "" && a.Status != opt.Status {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeRepo) DismissAlert(ctx context.Context, id, dismissedBy string, at time.Time) (bool, error) {
	a, ok := f.alerts[id]
	if !ok || a.Status != model.AlertStatusActive {
		return false, nil
	}
	a.Status = model.AlertStatusDismissed
	a.DismissedAt = &at
	a.DismissedBy = dismissedBy
	return true, nil
}

func (f *fakeRepo) SweepExpired(ctx context.Context, now time.Time, dismissedBy string) (int, error) {
	count := 0
	for _, a := range f.alerts {
		if a.Status != model.AlertStatusActive || a.AutoDismissAt == nil {
			continue
		}
		if !a.AutoDismissAt.After(now) {
			a.Status = model.AlertStatusDismissed
			a.DismissedAt = &now
			a.DismissedBy = dismissedBy
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) MarkAutoProcessed(ctx context.Context, id, summary string, at time.Time) error {
	if a, ok := f.alerts[id]; ok {
		a.AutoProcessedAt = &at
		a.LastActionSummary = summary
	}
	return nil
}

func (f *fakeRepo) AppendActions(ctx context.Context, alertID string, actions []model.RemediationAction) error {
	f.actions[alertID] = append(f.actions[alertID], actions...)
	return nil
}

func (f *fakeRepo) ListActions(ctx context.Context, alertID string) ([]model.RemediationAction, error) {
	return f.actions[alertID], nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		uc := New(newFakeRepo(), &mockLogger{})

		cases := []struct {
			name    string
			input   alert.CreateAlertInput
			wantErr error
		}{
			{"empty title", alert.CreateAlertInput{Severity: model.AlertSeverityInfo, Category: model.AlertCategorySystem}, alert.ErrEmptyTitle},
			{"bad severity", alert.CreateAlertInput{Title: "t", Severity: "urgent", Category: model.AlertCategorySystem}, alert.ErrInvalidSeverity},
			{"bad category", alert.CreateAlertInput{Title: "t", Severity: model.AlertSeverityInfo, Category: "network"}, alert.ErrInvalidCategory},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Create(ctx, model.SystemScope, tc.input)
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("got %v, want %v", err, tc.wantErr)
				}
			})
		}
	})

	t.Run("auto dismiss scheduling", func(t *testing.T) {
		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		uc := NewWithClock(newFakeRepo(), &mockLogger{}, func() time.Time { return base })

		created, err := uc.Create(ctx, model.Scope{UserID: "operator"}, alert.CreateAlertInput{
			Title:              "Rate limit exceeded: stripe",
			Severity:           model.AlertSeverityWarning,
			Category:           model.AlertCategorySecurity,
			AutoDismissMinutes: 60,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		want := base.Add(time.Hour)
		if created.AutoDismissAt == nil || !created.AutoDismissAt.Equal(want) {
			t.Errorf("AutoDismissAt = %v, want %v", created.AutoDismissAt, want)
		}
		if created.CreatedBy != "operator" {
			t.Errorf("CreatedBy = %q", created.CreatedBy)
		}
	})
}

func TestDismiss(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id is not found", func(t *testing.T) {
		uc := New(newFakeRepo(), &mockLogger{})
		err := uc.Dismiss(ctx, model.SystemScope, "nope")
		if !errors.Is(err, alert.ErrAlertNotFound) {
			t.Fatalf("got %v, want ErrAlertNotFound", err)
		}
	})

	t.Run("dismiss is idempotent", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, &mockLogger{})

		created, err := uc.Create(ctx, model.SystemScope, alert.CreateAlertInput{
			Title:    "Webhook failure: stripe",
			Severity: model.AlertSeverityWarning,
			Category: model.AlertCategoryWebhook,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		sc := model.Scope{UserID: "operator"}
		if err := uc.Dismiss(ctx, sc, created.ID); err != nil {
			t.Fatalf("first Dismiss: %v", err)
		}
		first := *repo.alerts[created.ID].DismissedAt

		// Second dismiss is a no-op, not an error, and the original
		// dismissal record survives.
		if err := uc.Dismiss(ctx, model.Scope{UserID: "someone-else"}, created.ID); err != nil {
			t.Fatalf("second Dismiss: %v", err)
		}
		got := repo.alerts[created.ID]
		if got.DismissedBy != "operator" || !got.DismissedAt.Equal(first) {
			t.Errorf("second dismiss overwrote the first: %+v", got)
		}
	})
}

func TestSweepExpired(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	now := base
	repo := newFakeRepo()
	uc := NewWithClock(repo, &mockLogger{}, func() time.Time { return now })

	created, err := uc.Create(ctx, model.SystemScope, alert.CreateAlertInput{
		Title:              "Rate limit exceeded: stripe",
		Severity:           model.AlertSeverityWarning,
		Category:           model.AlertCategorySecurity,
		AutoDismissMinutes: 5,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Before expiry the sweep finds nothing.
	count, err := uc.SweepExpired(ctx)
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if count != 0 {
		t.Fatalf("early sweep dismissed %d, want 0", count)
	}

	now = base.Add(5 * time.Minute)
	count, err = uc.SweepExpired(ctx)
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if count != 1 {
		t.Fatalf("sweep dismissed %d, want 1", count)
	}
	got := repo.alerts[created.ID]
	if got.Status != model.AlertStatusDismissed || got.DismissedBy != model.AutoDismissedBy {
		t.Errorf("swept alert = %+v", got)
	}

	// A second sweep is a no-op for the same alert.
	count, err = uc.SweepExpired(ctx)
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if count != 0 {
		t.Errorf("second sweep dismissed %d, want 0", count)
	}
}

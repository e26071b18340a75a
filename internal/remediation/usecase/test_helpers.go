package usecase

import (
	"context"
	"time"

	alertRepo "webhook-ops/internal/alert/repository"
	"webhook-ops/internal/model"
	"webhook-ops/internal/runbook"
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

// Mock alert repository for testing
type mockAlertRepo struct {
	alert    model.Alert
	getErr   error
	appended []model.RemediationAction
	marked   bool
	summary  string
}

func (m *mockAlertRepo) CreateAlert(ctx context.Context, opt alertRepo.CreateAlertOptions) (model.Alert, error) {
	return model.Alert{}, nil
}

func (m *mockAlertRepo) GetOneAlert(ctx context.Context, opt alertRepo.GetOneAlertOptions) (model.Alert, error) {
	return m.alert, m.getErr
}

func (m *mockAlertRepo) ListAlerts(ctx context.Context, opt alertRepo.ListAlertsOptions) ([]model.Alert, error) {
	return nil, nil
}

func (m *mockAlertRepo) DismissAlert(ctx context.Context, id, dismissedBy string, at time.Time) (bool, error) {
	return false, nil
}

func (m *mockAlertRepo) SweepExpired(ctx context.Context, now time.Time, dismissedBy string) (int, error) {
	return 0, nil
}

func (m *mockAlertRepo) MarkAutoProcessed(ctx context.Context, id, summary string, at time.Time) error {
	m.marked = true
	m.summary = summary
	return nil
}

func (m *mockAlertRepo) AppendActions(ctx context.Context, alertID string, actions []model.RemediationAction) error {
	m.appended = append(m.appended, actions...)
	return nil
}

func (m *mockAlertRepo) ListActions(ctx context.Context, alertID string) ([]model.RemediationAction, error) {
	return m.appended, nil
}

// Mock runbook usecase for testing
type mockRunbookUC struct {
	runbooks []model.Runbook
	err      error
}

func (m *mockRunbookUC) Create(ctx context.Context, input runbook.CreateRunbookInput) (model.Runbook, error) {
	return model.Runbook{}, nil
}

func (m *mockRunbookUC) List(ctx context.Context, input runbook.ListRunbooksInput) ([]model.Runbook, error) {
	return m.runbooks, m.err
}

func (m *mockRunbookUC) Detail(ctx context.Context, id string) (model.Runbook, error) {
	return model.Runbook{}, nil
}

func (m *mockRunbookUC) Update(ctx context.Context, input runbook.UpdateRunbookInput) (model.Runbook, error) {
	return model.Runbook{}, nil
}

func (m *mockRunbookUC) Delete(ctx context.Context, id string) error {
	return nil
}

func (m *mockRunbookUC) GetActiveBySource(ctx context.Context, source string) ([]model.Runbook, error) {
	return m.runbooks, m.err
}

// Mock notifier for testing
type mockNotifier struct {
	sent []string
	err  error
}

func (m *mockNotifier) Send(ctx context.Context, text string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, text)
	return nil
}

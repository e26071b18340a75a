package usecase

import (
	"time"

	alertRepo "webhook-ops/internal/alert/repository"
	"webhook-ops/internal/remediation"
	"webhook-ops/internal/runbook"
	"webhook-ops/pkg/log"
)

const defaultActionTimeout = 10 * time.Second

// implUseCase is the private implementation of remediation.UseCase.
type implUseCase struct {
	alerts        alertRepo.Repository
	runbooks      runbook.UseCase
	notifier      remediation.Notifier
	l             log.Logger
	now           func() time.Time
	actionTimeout time.Duration
}

// New creates a new remediation UseCase implementation.
func New(alerts alertRepo.Repository, runbooks runbook.UseCase, notifier remediation.Notifier, l log.Logger, actionTimeout time.Duration) *implUseCase {
	if actionTimeout <= 0 {
		actionTimeout = defaultActionTimeout
	}
	return &implUseCase{
		alerts:        alerts,
		runbooks:      runbooks,
		notifier:      notifier,
		l:             l,
		now:           time.Now,
		actionTimeout: actionTimeout,
	}
}

// NewWithClock creates a UseCase with an injected clock for tests.
func NewWithClock(alerts alertRepo.Repository, runbooks runbook.UseCase, notifier remediation.Notifier, l log.Logger, actionTimeout time.Duration, now func() time.Time) *implUseCase {
	uc := New(alerts, runbooks, notifier, l, actionTimeout)
	uc.now = now
	return uc
}

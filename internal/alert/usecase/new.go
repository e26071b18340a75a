package usecase

import (
	"time"

	"webhook-ops/internal/alert/repository"
	"webhook-ops/pkg/log"
)

// implUseCase is the private implementation of alert.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

// New creates a new alert UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}

// NewWithClock creates a UseCase with an injected clock for sweep tests.
func NewWithClock(repo repository.Repository, l log.Logger, now func() time.Time) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  now,
	}
}

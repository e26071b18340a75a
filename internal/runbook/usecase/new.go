package usecase

import (
	"webhook-ops/internal/runbook/repository"
	"webhook-ops/pkg/log"
)

// implUseCase is the private implementation of runbook.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new runbook UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

package usecase

import (
	"webhook-ops/internal/event"
	"webhook-ops/internal/event/repository"
	"webhook-ops/pkg/log"
)

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	repo       repository.Repository
	dispatcher event.Dispatcher
	l          log.Logger
}

// New creates a new event UseCase implementation.
func New(repo repository.Repository, dispatcher event.Dispatcher, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		dispatcher: dispatcher,
		l:          l,
	}
}

package usecase

import (
	"indexing-srv/internal/model"
	"indexing-srv/internal/outcome"
	"indexing-srv/internal/outcome/repository"
	"indexing-srv/pkg/log"
	"indexing-srv/pkg/queue"
)

const sinkQueueName = "outcomes"

// implUseCase implements the outcome.UseCase interface
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	publisher outcome.Publisher
	events    outcome.EventPublisher
	sink      *queue.Queue[model.StageResult]
}

// New creates a new outcome usecase. publisher and events may be nil: results
// are then only logged and persisted, and RetryFailed is unavailable.
func New(
	l log.Logger,
	repo repository.Repository,
	publisher outcome.Publisher,
	events outcome.EventPublisher,
	cfg outcome.Config,
) outcome.UseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		publisher: publisher,
		events:    events,
		sink:      queue.New[model.StageResult](l, sinkQueueName, cfg.BufferSize, 1),
	}
}

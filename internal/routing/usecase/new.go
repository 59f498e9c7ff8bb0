package usecase

import (
	"indexing-srv/internal/model"
	"indexing-srv/internal/outcome"
	"indexing-srv/internal/routing"
	"indexing-srv/pkg/log"
	"indexing-srv/pkg/queue"
)

// implUseCase implements the routing.UseCase interface
type implUseCase struct {
	l        log.Logger
	deletes  queue.Pusher[model.ResourceDescriptor]
	updates  queue.Pusher[model.ResourceDescriptor]
	reporter outcome.Reporter
}

// New creates a new routing usecase
func New(
	l log.Logger,
	deletes queue.Pusher[model.ResourceDescriptor],
	updates queue.Pusher[model.ResourceDescriptor],
	reporter outcome.Reporter,
) routing.UseCase {
	return &implUseCase{
		l:        l,
		deletes:  deletes,
		updates:  updates,
		reporter: reporter,
	}
}

package usecase

import (
	"golang.org/x/time/rate"

	"indexing-srv/internal/model"
	"indexing-srv/internal/outcome"
	"indexing-srv/internal/reindex"
	repo "indexing-srv/internal/reindex/repository"
	"indexing-srv/internal/resource"
	"indexing-srv/pkg/fcrepo"
	"indexing-srv/pkg/log"
	"indexing-srv/pkg/queue"
)

// implUseCase implements the reindex.UseCase interface
type implUseCase struct {
	l         log.Logger
	visited   repo.VisitedRepository
	repo      fcrepo.IFcrepo
	publisher reindex.Publisher
	walks     queue.Pusher[reindex.WalkItem]
	updates   queue.Pusher[model.ResourceDescriptor]
	reporter  outcome.Reporter
	limiter   *rate.Limiter
	cfg       reindex.Config

	resolver    resource.Resolver
	resolverErr error
}

// New creates a new reindex usecase. The API side only needs publisher; the
// walker side needs the visited set, repository client, queues and reporter.
func New(
	l log.Logger,
	visited repo.VisitedRepository,
	repository fcrepo.IFcrepo,
	publisher reindex.Publisher,
	walks queue.Pusher[reindex.WalkItem],
	updates queue.Pusher[model.ResourceDescriptor],
	reporter outcome.Reporter,
	cfg reindex.Config,
) reindex.UseCase {
	resolver, err := resource.New(cfg.ReindexPrefix, cfg.BaseURL)
	return &implUseCase{
		l:           l,
		visited:     visited,
		repo:        repository,
		publisher:   publisher,
		walks:       walks,
		updates:     updates,
		reporter:    reporter,
		limiter:     newLimiter(cfg.FetchRate, cfg.FetchBurst),
		cfg:         cfg,
		resolver:    resolver,
		resolverErr: err,
	}
}

func newLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"indexing-srv/internal/model"
	"indexing-srv/internal/reindex"
	repo "indexing-srv/internal/reindex/repository"
	"indexing-srv/internal/resource"
	"indexing-srv/pkg/log"
	"indexing-srv/pkg/queue"
	"indexing-srv/pkg/rdfxml"
)

const (
	visitFirst     = "first"
	visitDuplicate = "duplicate"
	visitFailed    = "failed"
)

// Walk queues the root of a walk, blocking while the reindex queue is full.
func (uc *implUseCase) Walk(ctx context.Context, item reindex.WalkItem) error {
	if uc.walks == nil {
		return reindex.ErrWalkerNotEnabled
	}
	if err := uc.walks.Push(ctx, item); err != nil {
		uc.report(ctx, item, model.BranchDispatch, fmt.Errorf("queue walk root: %w", err))
		return err
	}
	return nil
}

// Visit indexes item and fans its children out on the reindex queue. Children
// that do not fit are kept on a local frontier and visited here, so a worker
// never blocks on its own queue.
func (uc *implUseCase) Visit(ctx context.Context, item reindex.WalkItem) {
	ctx = log.WithTraceID(ctx, item.WalkID)
	frontier := []reindex.WalkItem{item}
	for len(frontier) > 0 {
		next := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		for _, child := range uc.visit(ctx, next) {
			if err := uc.walks.TryPush(child); err != nil {
				if !errors.Is(err, queue.ErrQueueFull) {
					uc.l.Warnf(ctx, "reindex.usecase.Visit: queue child %s: %v", child.Descriptor.Identifier, err)
				}
				inlineChildrenTotal.Inc()
				frontier = append(frontier, child)
			}
		}
	}
}

// visit handles one resource and returns the children still to walk.
func (uc *implUseCase) visit(ctx context.Context, item reindex.WalkItem) []reindex.WalkItem {
	d := item.Descriptor

	first, err := uc.visited.MarkVisited(ctx, repo.MarkVisitedOptions{WalkID: item.WalkID, Identifier: d.Identifier})
	if err != nil {
		// the depth bound still ends the walk when the visited set is down
		uc.l.Warnf(ctx, "reindex.usecase.visit: visited set unavailable, visiting %s: %v", d.Identifier, err)
		first = true
	}
	if !first {
		visitsTotal.WithLabelValues(visitDuplicate).Inc()
		uc.l.Debugf(ctx, "reindex.usecase.visit: walk %s already visited %s", item.WalkID, d.Identifier)
		return nil
	}

	if err := uc.updates.Push(ctx, d); err != nil {
		uc.report(ctx, item, model.BranchDispatch, fmt.Errorf("queue update: %w", err))
	}

	if uc.cfg.MaxDepth > 0 && item.Depth >= uc.cfg.MaxDepth {
		visitsTotal.WithLabelValues(visitFirst).Inc()
		return nil
	}

	uris, err := uc.containment(ctx, d)
	if err != nil {
		visitsTotal.WithLabelValues(visitFailed).Inc()
		uc.report(ctx, item, model.BranchFetch, err)
		return nil
	}

	resolver, err := resource.NewFromBaseURL(d.BaseURL)
	if err != nil {
		visitsTotal.WithLabelValues(visitFailed).Inc()
		uc.report(ctx, item, model.BranchResolve, err)
		return nil
	}

	children := make([]reindex.WalkItem, 0, len(uris))
	for _, uri := range uris {
		child, err := resolver.Resolve(uri)
		if err != nil {
			uc.report(ctx, item, model.BranchResolve, err)
			continue
		}
		children = append(children, item.Child(child))
	}

	visitsTotal.WithLabelValues(visitFirst).Inc()
	uc.report(ctx, item, model.BranchFetch, nil)
	return children
}

func (uc *implUseCase) containment(ctx context.Context, d model.ResourceDescriptor) ([]string, error) {
	if err := uc.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrTransport, err)
	}

	body, err := uc.repo.GetContainment(ctx, d.URI())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrTransport, err)
	}

	doc, err := rdfxml.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrParse, err)
	}

	var uris []string
	for uri := range doc.Contains() {
		uris = append(uris, uri)
	}
	return uris, nil
}

func (uc *implUseCase) report(ctx context.Context, item reindex.WalkItem, branch string, err error) {
	if err != nil {
		uc.l.Warnf(ctx, "reindex.usecase.visit: route %s walk %s %s failed for %s: %v",
			model.RouteWalker, item.WalkID, branch, item.Descriptor.Identifier, err)
	}
	if uc.reporter == nil {
		return
	}
	uc.reporter.Report(ctx, model.StageResult{
		Route:      model.RouteWalker,
		Branch:     branch,
		Descriptor: item.Descriptor,
		Err:        err,
		At:         time.Now().UTC(),
	})
}

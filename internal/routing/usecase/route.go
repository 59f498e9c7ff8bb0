package usecase

import (
	"context"
	"fmt"
	"time"

	"indexing-srv/internal/model"
	"indexing-srv/internal/routing"
)

const (
	destinationDelete = "delete"
	destinationUpdate = "update"
)

// Route sends removals to the delete queue and everything else to the update queue.
func (uc *implUseCase) Route(ctx context.Context, ev model.ChangeEvent) error {
	if ev.Identifier == "" {
		return uc.fail(ctx, ev, model.BranchClassify, routing.ErrMissingIdentifier)
	}
	if err := model.ValidateIRI(ev.Descriptor().URI()); err != nil {
		return uc.fail(ctx, ev, model.BranchClassify, fmt.Errorf("%w: %w", routing.ErrInvalidIdentifier, err))
	}

	target, destination := uc.updates, destinationUpdate
	if ev.IsDelete() {
		target, destination = uc.deletes, destinationDelete
	}

	if err := target.Push(ctx, ev.Descriptor()); err != nil {
		return uc.fail(ctx, ev, model.BranchDispatch, fmt.Errorf("dispatch to %s: %w", destination, err))
	}

	routedTotal.WithLabelValues(destination).Inc()
	uc.l.Debugf(ctx, "routing.usecase.Route: %s %s -> %s", ev.EventType, ev.Identifier, destination)
	return nil
}

// Reject reports an undecodable message on the router route, as Route does for
// events it cannot classify.
func (uc *implUseCase) Reject(ctx context.Context, ev model.ChangeEvent, cause error) error {
	return uc.fail(ctx, ev, model.BranchClassify, fmt.Errorf("%w: %w", routing.ErrUndecodable, cause))
}

func (uc *implUseCase) fail(ctx context.Context, ev model.ChangeEvent, branch string, err error) error {
	uc.l.Warnf(ctx, "routing.usecase.Route: route %s: %v", model.RouteEventRouter, err)
	uc.reporter.Report(ctx, model.StageResult{
		Route:      model.RouteEventRouter,
		Branch:     branch,
		Descriptor: ev.Descriptor(),
		EventType:  ev.EventType,
		Err:        err,
		At:         time.Now().UTC(),
	})
	return err
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"indexing-srv/internal/model"
	"indexing-srv/pkg/sparql"
)

type branch struct {
	name string
	run  func(ctx context.Context) error
}

// fanOut runs every branch concurrently and reports one result per branch.
// Branch errors never cancel siblings.
func (uc *implUseCase) fanOut(ctx context.Context, route string, d model.ResourceDescriptor, eventType string, branches ...branch) []model.StageResult {
	results := make([]model.StageResult, len(branches))

	var g errgroup.Group
	for i, b := range branches {
		g.Go(func() error {
			start := time.Now()
			err := b.run(ctx)
			branchDuration.WithLabelValues(route, b.name).Observe(time.Since(start).Seconds())

			results[i] = model.StageResult{
				Route:      route,
				Branch:     b.name,
				Descriptor: d,
				EventType:  eventType,
				Err:        err,
				At:         time.Now().UTC(),
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		uc.reporter.Report(ctx, r)
	}
	return results
}

func transportErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", model.ErrTransport, err)
}

// triplestoreErr is transportErr, except that a subject the update language
// cannot carry is a classification error and is never replayed.
func triplestoreErr(err error) error {
	if errors.Is(err, sparql.ErrInvalidIRI) {
		return fmt.Errorf("%w: %w", model.ErrClassification, err)
	}
	return transportErr(err)
}

package usecase

import (
	"context"
	"errors"
	"time"

	"indexing-srv/internal/model"
	repo "indexing-srv/internal/outcome/repository"
)

const (
	statusOK     = "ok"
	statusFailed = "failed"
)

// Start launches the sink worker.
func (uc *implUseCase) Start(ctx context.Context) {
	uc.sink.Start(ctx, uc.handle)
}

// Stop drains pending results and stops the sink.
func (uc *implUseCase) Stop() {
	uc.sink.Stop()
}

// Report hands r to the sink. Once the sink is stopped results are handled inline.
func (uc *implUseCase) Report(ctx context.Context, r model.StageResult) {
	if r.At.IsZero() {
		r.At = time.Now().UTC()
	}
	if err := uc.sink.Push(ctx, r); err != nil {
		uc.handle(context.WithoutCancel(ctx), r)
	}
}

func (uc *implUseCase) handle(ctx context.Context, r model.StageResult) {
	status := statusOK
	if r.Failed() {
		status = statusFailed
	}
	stageResultsTotal.WithLabelValues(r.Route, r.Branch, status).Inc()

	if r.Failed() {
		uc.l.Errorf(ctx, "outcome.usecase.handle: route %s branch %s failed for %q: %v",
			r.Route, r.Branch, r.Descriptor.URI(), r.Err)
		if retryable(r) {
			uc.persist(ctx, r)
		}
	} else {
		uc.l.Debugf(ctx, "outcome.usecase.handle: route %s branch %s done for %q",
			r.Route, r.Branch, r.Descriptor.URI())
	}

	if uc.publisher != nil {
		if err := uc.publisher.PublishOutcome(ctx, r); err != nil {
			uc.l.Warnf(ctx, "outcome.usecase.handle: publish outcome failed: %v", err)
		}
	}
}

func (uc *implUseCase) persist(ctx context.Context, r model.StageResult) {
	_, err := uc.repo.CreateFailure(ctx, repo.CreateFailureOptions{
		Route:        r.Route,
		Branch:       r.Branch,
		Identifier:   r.Descriptor.Identifier,
		BaseURL:      r.Descriptor.BaseURL,
		EventType:    r.EventType,
		ErrorMessage: r.ErrorMessage(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "outcome.usecase.persist: failure for %q not persisted: %v", r.Descriptor.URI(), err)
		return
	}
	failuresPersistedTotal.Inc()
}

// retryable reports whether replaying the event could fix r. Unclassifiable
// events and results without a resolved resource cannot be replayed.
func retryable(r model.StageResult) bool {
	if errors.Is(r.Err, model.ErrClassification) || errors.Is(r.Err, model.ErrConfiguration) {
		return false
	}
	return r.Descriptor.BaseURL != ""
}

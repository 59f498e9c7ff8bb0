package usecase

import (
	"context"
	"time"

	"indexing-srv/internal/outcome"
	repo "indexing-srv/internal/outcome/repository"
	"indexing-srv/pkg/paginator"
)

// ListFailed returns one page of unresolved failures, oldest first.
func (uc *implUseCase) ListFailed(ctx context.Context, ip outcome.ListFailedInput) (outcome.ListFailedOutput, error) {
	ip.Paginate.Adjust()

	failures, err := uc.repo.ListFailures(ctx, repo.ListFailuresOptions{
		Limit:  ip.Paginate.Limit,
		Offset: ip.Paginate.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "outcome.usecase.ListFailed: %v", err)
		return outcome.ListFailedOutput{}, outcome.ErrListFailed
	}

	total, err := uc.repo.CountFailures(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "outcome.usecase.ListFailed: %v", err)
		return outcome.ListFailedOutput{}, outcome.ErrListFailed
	}

	return outcome.ListFailedOutput{
		Failures:  failures,
		Paginator: paginator.New(ip.Paginate, total, len(failures)),
	}, nil
}

// RetryFailed re-publishes unresolved failures as change events and marks them resolved.
// A failure whose event cannot be published stays unresolved.
func (uc *implUseCase) RetryFailed(ctx context.Context, ip outcome.RetryFailedInput) (outcome.RetryFailedOutput, error) {
	if uc.events == nil {
		return outcome.RetryFailedOutput{}, outcome.ErrEventBusNotEnabled
	}
	startTime := time.Now()

	failures, err := uc.repo.ListFailures(ctx, repo.ListFailuresOptions{Limit: ip.Limit})
	if err != nil {
		uc.l.Errorf(ctx, "outcome.usecase.RetryFailed: %v", err)
		return outcome.RetryFailedOutput{}, outcome.ErrListFailed
	}

	out := outcome.RetryFailedOutput{TotalRetried: len(failures)}
	for _, f := range failures {
		if err := uc.events.PublishEvent(ctx, f.ChangeEvent()); err != nil {
			uc.l.Warnf(ctx, "outcome.usecase.RetryFailed: republish %s failed: %v", f.ID, err)
			out.Failed++
			continue
		}
		if err := uc.repo.MarkResolved(ctx, f.ID); err != nil {
			uc.l.Warnf(ctx, "outcome.usecase.RetryFailed: mark %s resolved failed: %v", f.ID, err)
			out.Failed++
			continue
		}
		out.Republished++
	}
	out.Duration = time.Since(startTime)

	uc.l.Infof(ctx, "outcome.usecase.RetryFailed: retried=%d republished=%d failed=%d",
		out.TotalRetried, out.Republished, out.Failed)
	return out, nil
}

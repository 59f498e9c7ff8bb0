package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"indexing-srv/internal/reindex"
	"indexing-srv/pkg/log"
)

// Trigger resolves the request path and publishes a new walk.
func (uc *implUseCase) Trigger(ctx context.Context, ip reindex.TriggerInput) (reindex.TriggerOutput, error) {
	if uc.publisher == nil {
		return reindex.TriggerOutput{}, reindex.ErrPublisherNotEnabled
	}
	if uc.resolverErr != nil {
		uc.l.Errorf(ctx, "reindex.usecase.Trigger: %v", uc.resolverErr)
		return reindex.TriggerOutput{}, fmt.Errorf("%w: %w", reindex.ErrTriggerFailed, uc.resolverErr)
	}

	d, err := uc.resolver.Resolve(ip.RequestPath)
	if err != nil {
		uc.l.Warnf(ctx, "reindex.usecase.Trigger: %v", err)
		return reindex.TriggerOutput{}, fmt.Errorf("%w: %w", reindex.ErrInvalidPath, err)
	}

	item := reindex.WalkItem{WalkID: uuid.NewString(), Descriptor: d}
	ctx = log.WithTraceID(ctx, item.WalkID)
	if err := uc.publisher.PublishReindex(ctx, item); err != nil {
		uc.l.Errorf(ctx, "reindex.usecase.Trigger: publish walk %s: %v", item.WalkID, err)
		return reindex.TriggerOutput{}, fmt.Errorf("%w: %w", reindex.ErrTriggerFailed, err)
	}

	walksTriggeredTotal.Inc()
	uc.l.Infof(ctx, "reindex.usecase.Trigger: walk %s started at %s", item.WalkID, d.URI())

	return reindex.TriggerOutput{
		WalkID:     item.WalkID,
		Identifier: d.Identifier,
		URI:        d.URI(),
	}, nil
}

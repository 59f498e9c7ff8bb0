package postgre

import (
	"context"
	"time"

	"github.com/google/uuid"

	"indexing-srv/internal/model"
	repo "indexing-srv/internal/outcome/repository"
)

// CreateFailure - Insert a failed branch (returns created entity)
func (r *implPostgresRepository) CreateFailure(ctx context.Context, opt repo.CreateFailureOptions) (model.PropagationFailure, error) {
	now := time.Now().UTC()
	f := model.PropagationFailure{
		ID:           uuid.NewString(),
		Route:        opt.Route,
		Branch:       opt.Branch,
		Identifier:   opt.Identifier,
		BaseURL:      opt.BaseURL,
		EventType:    opt.EventType,
		ErrorMessage: opt.ErrorMessage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.db.ExecContext(ctx, insertFailureQuery,
		f.ID, f.Route, f.Branch, f.Identifier, f.BaseURL, f.EventType, f.ErrorMessage, now)
	if err != nil {
		r.l.Errorf(ctx, "outcome.repository.postgre.CreateFailure: Failed to insert failure: %v", err)
		return model.PropagationFailure{}, repo.ErrFailedToInsert
	}

	return f, nil
}

// ListFailures - List unresolved failures, oldest first
func (r *implPostgresRepository) ListFailures(ctx context.Context, opt repo.ListFailuresOptions) ([]model.PropagationFailure, error) {
	rows, err := r.db.QueryContext(ctx, listFailuresQuery, listLimit(opt.Limit), listOffset(opt.Offset))
	if err != nil {
		r.l.Errorf(ctx, "outcome.repository.postgre.ListFailures: Failed to query failures: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var failures []model.PropagationFailure
	for rows.Next() {
		var f model.PropagationFailure
		if err := rows.Scan(
			&f.ID, &f.Route, &f.Branch, &f.Identifier, &f.BaseURL, &f.EventType,
			&f.ErrorMessage, &f.RetryCount, &f.Resolved, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			r.l.Errorf(ctx, "outcome.repository.postgre.ListFailures: Failed to scan failure: %v", err)
			return nil, repo.ErrFailedToList
		}
		failures = append(failures, f)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "outcome.repository.postgre.ListFailures: Failed to iterate failures: %v", err)
		return nil, repo.ErrFailedToList
	}

	return failures, nil
}

// CountFailures - Count unresolved failures
func (r *implPostgresRepository) CountFailures(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, countFailuresQuery).Scan(&total); err != nil {
		r.l.Errorf(ctx, "outcome.repository.postgre.CountFailures: Failed to count failures: %v", err)
		return 0, repo.ErrFailedToList
	}
	return total, nil
}

// MarkResolved - Mark a failure as resolved
func (r *implPostgresRepository) MarkResolved(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, markResolvedQuery, id, time.Now().UTC())
	if err != nil {
		r.l.Errorf(ctx, "outcome.repository.postgre.MarkResolved: Failed to update failure %s: %v", id, err)
		return repo.ErrFailedToMarkResolved
	}

	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "outcome.repository.postgre.MarkResolved: Failed to read affected rows: %v", err)
		return repo.ErrFailedToMarkResolved
	}
	if n == 0 {
		return repo.ErrNotFound
	}

	return nil
}

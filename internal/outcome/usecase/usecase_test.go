package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indexing-srv/internal/model"
	"indexing-srv/internal/outcome"
	repo "indexing-srv/internal/outcome/repository"
	"indexing-srv/pkg/log"
	"indexing-srv/pkg/paginator"
)

type fakeRepo struct {
	mu        sync.Mutex
	created   []repo.CreateFailureOptions
	failures  []model.PropagationFailure
	resolved  []string
	listErr   error
	resolveOK func(id string) bool
}

func (f *fakeRepo) CreateFailure(_ context.Context, opt repo.CreateFailureOptions) (model.PropagationFailure, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, opt)
	return model.PropagationFailure{ID: fmt.Sprint(len(f.created))}, nil
}

func (f *fakeRepo) ListFailures(_ context.Context, opt repo.ListFailuresOptions) ([]model.PropagationFailure, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	rows := f.failures
	if opt.Offset >= len(rows) {
		return nil, nil
	}
	rows = rows[opt.Offset:]
	if opt.Limit > 0 && opt.Limit < len(rows) {
		return rows[:opt.Limit], nil
	}
	return rows, nil
}

func (f *fakeRepo) CountFailures(_ context.Context) (int64, error) {
	if f.listErr != nil {
		return 0, f.listErr
	}
	return int64(len(f.failures)), nil
}

func (f *fakeRepo) MarkResolved(_ context.Context, id string) error {
	if f.resolveOK != nil && !f.resolveOK(id) {
		return repo.ErrFailedToMarkResolved
	}
	f.resolved = append(f.resolved, id)
	return nil
}

type fakePublisher struct {
	mu       sync.Mutex
	outcomes []model.StageResult
}

func (p *fakePublisher) PublishOutcome(_ context.Context, r model.StageResult) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.outcomes = append(p.outcomes, r)
	return nil
}

type fakeEvents struct {
	events []model.ChangeEvent
	failOn string
}

func (e *fakeEvents) PublishEvent(_ context.Context, ev model.ChangeEvent) error {
	if ev.Identifier == e.failOn {
		return errors.New("bus down")
	}
	e.events = append(e.events, ev)
	return nil
}

var desc = model.ResourceDescriptor{Identifier: "/objects/42", BaseURL: "http://localhost:8080/rest"}

func TestSinkPersistsFailedBranches(t *testing.T) {
	r := &fakeRepo{}
	pub := &fakePublisher{}
	uc := New(log.NewNop(), r, pub, nil, outcome.Config{BufferSize: 8})
	uc.Start(context.Background())

	ctx := context.Background()
	uc.Report(ctx, model.StageResult{Route: model.RouteDelete, Branch: model.BranchIndex, Descriptor: desc, EventType: model.EventTypeNodeRemoved})
	uc.Report(ctx, model.StageResult{Route: model.RouteDelete, Branch: model.BranchTriplestore, Descriptor: desc, EventType: model.EventTypeNodeRemoved, Err: model.ErrTransport})
	uc.Report(ctx, model.StageResult{Route: model.RouteEventRouter, Branch: model.BranchDispatch, Err: model.ErrClassification})
	uc.Stop()

	require.Len(t, r.created, 1)
	assert.Equal(t, repo.CreateFailureOptions{
		Route:        model.RouteDelete,
		Branch:       model.BranchTriplestore,
		Identifier:   "/objects/42",
		BaseURL:      "http://localhost:8080/rest",
		EventType:    model.EventTypeNodeRemoved,
		ErrorMessage: "transport error",
	}, r.created[0])

	require.Len(t, pub.outcomes, 3)
	for _, o := range pub.outcomes {
		assert.False(t, o.At.IsZero())
	}
}

func TestReportAfterStopIsHandledInline(t *testing.T) {
	r := &fakeRepo{}
	uc := New(log.NewNop(), r, nil, nil, outcome.Config{BufferSize: 1})
	uc.Start(context.Background())
	uc.Stop()

	uc.Report(context.Background(), model.StageResult{Route: model.RouteUpdate, Branch: model.BranchIndex, Descriptor: desc, Err: model.ErrTransport})
	assert.Len(t, r.created, 1)
}

func TestRetryFailed(t *testing.T) {
	r := &fakeRepo{failures: []model.PropagationFailure{
		{ID: "a", Identifier: "/a", BaseURL: desc.BaseURL, EventType: model.EventTypeNodeRemoved},
		{ID: "b", Identifier: "/b", BaseURL: desc.BaseURL},
		{ID: "c", Identifier: "/c", BaseURL: desc.BaseURL},
	}, resolveOK: func(id string) bool { return id != "c" }}
	ev := &fakeEvents{failOn: "/b"}
	uc := New(log.NewNop(), r, nil, ev, outcome.Config{})

	out, err := uc.RetryFailed(context.Background(), outcome.RetryFailedInput{Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalRetried)
	assert.Equal(t, 1, out.Republished)
	assert.Equal(t, 2, out.Failed)
	assert.Equal(t, []string{"a"}, r.resolved)
	assert.Equal(t, []model.ChangeEvent{
		{Identifier: "/a", EventType: model.EventTypeNodeRemoved, BaseURL: desc.BaseURL},
		{Identifier: "/c", BaseURL: desc.BaseURL},
	}, ev.events)
}

func TestRetryFailedWithoutEventBus(t *testing.T) {
	uc := New(log.NewNop(), &fakeRepo{}, nil, nil, outcome.Config{})
	_, err := uc.RetryFailed(context.Background(), outcome.RetryFailedInput{})
	assert.ErrorIs(t, err, outcome.ErrEventBusNotEnabled)
}

func TestListFailed(t *testing.T) {
	r := &fakeRepo{failures: []model.PropagationFailure{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	uc := New(log.NewNop(), r, nil, nil, outcome.Config{})

	out, err := uc.ListFailed(context.Background(), outcome.ListFailedInput{
		Paginate: paginator.PaginateQuery{Page: 2, Limit: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []model.PropagationFailure{{ID: "b"}}, out.Failures)
	assert.Equal(t, paginator.Paginator{Total: 3, Count: 1, PerPage: 1, CurrentPage: 2}, out.Paginator)

	out, err = uc.ListFailed(context.Background(), outcome.ListFailedInput{})
	require.NoError(t, err)
	assert.Len(t, out.Failures, 3)
	assert.Equal(t, paginator.DefaultLimit, out.Paginator.PerPage)
	assert.Equal(t, 1, out.Paginator.CurrentPage)

	r.listErr = repo.ErrFailedToList
	_, err = uc.ListFailed(context.Background(), outcome.ListFailedInput{})
	assert.ErrorIs(t, err, outcome.ErrListFailed)
}

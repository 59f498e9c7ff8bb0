package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indexing-srv/internal/model"
	"indexing-srv/internal/reindex"
	repo "indexing-srv/internal/reindex/repository"
	"indexing-srv/pkg/fcrepo"
	"indexing-srv/pkg/log"
	"indexing-srv/pkg/queue"
)

const testBaseURL = "http://localhost:8080/rest"

func containerRDF(uri string, children ...string) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ldp="http://www.w3.org/ns/ldp#">`)
	fmt.Fprintf(&b, `<rdf:Description rdf:about="%s">`, uri)
	for _, c := range children {
		fmt.Fprintf(&b, `<ldp:contains rdf:resource="%s"/>`, c)
	}
	b.WriteString(`</rdf:Description></rdf:RDF>`)
	return []byte(b.String())
}

type fakeRepo struct {
	fcrepo.IFcrepo
	containment map[string][]byte

	mu      sync.Mutex
	fetched []string
}

func (f *fakeRepo) GetContainment(_ context.Context, uri string) ([]byte, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, uri)
	f.mu.Unlock()

	body, ok := f.containment[uri]
	if !ok {
		return nil, errors.New("404")
	}
	return body, nil
}

type fakeVisited struct {
	mu   sync.Mutex
	seen map[string]bool
	err  error
}

func (f *fakeVisited) MarkVisited(_ context.Context, opt repo.MarkVisitedOptions) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := opt.WalkID + opt.Identifier
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

type collectingPusher[T any] struct {
	mu    sync.Mutex
	items []T
	full  bool
}

func (p *collectingPusher[T]) Push(_ context.Context, v T) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = append(p.items, v)
	return nil
}

func (p *collectingPusher[T]) TryPush(v T) error {
	if p.full {
		return queue.ErrQueueFull
	}
	return p.Push(context.Background(), v)
}

func (p *collectingPusher[T]) take() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	items := p.items
	p.items = nil
	return items
}

type fakePublisher struct {
	items []reindex.WalkItem
	err   error
}

func (f *fakePublisher) PublishReindex(_ context.Context, item reindex.WalkItem) error {
	f.items = append(f.items, item)
	return f.err
}

type fakeReporter struct {
	mu      sync.Mutex
	results []model.StageResult
}

func (f *fakeReporter) Report(_ context.Context, r model.StageResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, r)
}

func (f *fakeReporter) failed() []model.StageResult {
	var out []model.StageResult
	for _, r := range f.results {
		if r.Failed() {
			out = append(out, r)
		}
	}
	return out
}

// tree R{C1{C3}, C2}
func treeRepo() *fakeRepo {
	r := testBaseURL + "/R"
	return &fakeRepo{containment: map[string][]byte{
		r:            containerRDF(r, r+"/C1", r+"/C2"),
		r + "/C1":    containerRDF(r+"/C1", r+"/C1/C3"),
		r + "/C2":    containerRDF(r + "/C2"),
		r + "/C1/C3": containerRDF(r + "/C1/C3"),
	}}
}

type harness struct {
	uc       reindex.UseCase
	repo     *fakeRepo
	walks    *collectingPusher[reindex.WalkItem]
	updates  *collectingPusher[model.ResourceDescriptor]
	reporter *fakeReporter
}

func newHarness(r *fakeRepo, visited repo.VisitedRepository, cfg reindex.Config) *harness {
	h := &harness{
		repo:     r,
		walks:    &collectingPusher[reindex.WalkItem]{},
		updates:  &collectingPusher[model.ResourceDescriptor]{},
		reporter: &fakeReporter{},
	}
	cfg.BaseURL = testBaseURL
	cfg.ReindexPrefix = "/reindex"
	h.uc = New(log.NewNop(), visited, r, nil, h.walks, h.updates, h.reporter, cfg)
	return h
}

// run plays the reindex queue workers until the queue is empty.
func (h *harness) run(root reindex.WalkItem) {
	h.uc.Visit(context.Background(), root)
	for items := h.walks.take(); len(items) > 0; items = h.walks.take() {
		for _, item := range items {
			h.uc.Visit(context.Background(), item)
		}
	}
}

func (h *harness) updated() []string {
	var ids []string
	for _, d := range h.updates.take() {
		ids = append(ids, d.Identifier)
	}
	sort.Strings(ids)
	return ids
}

func rootItem(walkID string) reindex.WalkItem {
	return reindex.WalkItem{WalkID: walkID, Descriptor: model.ResourceDescriptor{Identifier: "/R", BaseURL: testBaseURL}}
}

func TestWalkTree(t *testing.T) {
	h := newHarness(treeRepo(), &fakeVisited{seen: map[string]bool{}}, reindex.Config{})

	h.run(rootItem("w1"))

	assert.Equal(t, []string{"/R", "/R/C1", "/R/C1/C3", "/R/C2"}, h.updated())
	assert.Len(t, h.repo.fetched, 4)
	assert.Empty(t, h.reporter.failed())
}

func TestWalkTreeInlineWhenQueueFull(t *testing.T) {
	h := newHarness(treeRepo(), &fakeVisited{seen: map[string]bool{}}, reindex.Config{})
	h.walks.full = true

	h.run(rootItem("w1"))

	assert.Equal(t, []string{"/R", "/R/C1", "/R/C1/C3", "/R/C2"}, h.updated())
}

func TestWalkCycleVisitsOnce(t *testing.T) {
	r := testBaseURL + "/R"
	fr := &fakeRepo{containment: map[string][]byte{
		r:         containerRDF(r, r+"/C1"),
		r + "/C1": containerRDF(r+"/C1", r),
	}}
	h := newHarness(fr, &fakeVisited{seen: map[string]bool{}}, reindex.Config{})

	h.run(rootItem("w1"))

	assert.Equal(t, []string{"/R", "/R/C1"}, h.updated())
	assert.Len(t, fr.fetched, 2)
}

func TestWalkDiamondVisitsOnce(t *testing.T) {
	r := testBaseURL + "/R"
	fr := &fakeRepo{containment: map[string][]byte{
		r:        containerRDF(r, r+"/A", r+"/B"),
		r + "/A": containerRDF(r+"/A", r+"/S"),
		r + "/B": containerRDF(r+"/B", r+"/S"),
		r + "/S": containerRDF(r + "/S"),
	}}
	h := newHarness(fr, &fakeVisited{seen: map[string]bool{}}, reindex.Config{})

	h.run(rootItem("w1"))

	assert.Equal(t, []string{"/R", "/R/A", "/R/B", "/R/S"}, h.updated())
}

func TestWalkMaxDepth(t *testing.T) {
	h := newHarness(treeRepo(), &fakeVisited{seen: map[string]bool{}}, reindex.Config{MaxDepth: 1})

	h.run(rootItem("w1"))

	assert.Equal(t, []string{"/R", "/R/C1", "/R/C2"}, h.updated())
}

func TestWalkVisitedSetDown(t *testing.T) {
	h := newHarness(treeRepo(), &fakeVisited{err: errors.New("redis down")}, reindex.Config{})

	h.run(rootItem("w1"))

	assert.Equal(t, []string{"/R", "/R/C1", "/R/C1/C3", "/R/C2"}, h.updated())
}

func TestWalkFetchFailure(t *testing.T) {
	h := newHarness(&fakeRepo{containment: map[string][]byte{}}, &fakeVisited{seen: map[string]bool{}}, reindex.Config{})

	h.run(rootItem("w1"))

	assert.Equal(t, []string{"/R"}, h.updated())
	failed := h.reporter.failed()
	require.Len(t, failed, 1)
	assert.Equal(t, model.RouteWalker, failed[0].Route)
	assert.Equal(t, model.BranchFetch, failed[0].Branch)
	assert.ErrorIs(t, failed[0].Err, model.ErrTransport)
}

func TestWalkChildOutsideRepository(t *testing.T) {
	r := testBaseURL + "/R"
	fr := &fakeRepo{containment: map[string][]byte{
		r: containerRDF(r, "http://elsewhere/other/X"),
	}}
	h := newHarness(fr, &fakeVisited{seen: map[string]bool{}}, reindex.Config{})

	h.run(rootItem("w1"))

	assert.Equal(t, []string{"/R"}, h.updated())
	failed := h.reporter.failed()
	require.Len(t, failed, 1)
	assert.Equal(t, model.BranchResolve, failed[0].Branch)
	assert.ErrorIs(t, failed[0].Err, model.ErrConfiguration)
}

func TestWalkChildOnForeignHost(t *testing.T) {
	r := testBaseURL + "/R"
	fr := &fakeRepo{containment: map[string][]byte{
		r: containerRDF(r, "http://elsewhere:8080/rest/X"),
	}}
	h := newHarness(fr, &fakeVisited{seen: map[string]bool{}}, reindex.Config{})

	h.run(rootItem("w1"))

	assert.Equal(t, []string{"/R"}, h.updated())
	failed := h.reporter.failed()
	require.Len(t, failed, 1)
	assert.Equal(t, model.BranchResolve, failed[0].Branch)
	assert.ErrorIs(t, failed[0].Err, model.ErrConfiguration)
}

func TestWalkQueuesRoot(t *testing.T) {
	h := newHarness(treeRepo(), &fakeVisited{seen: map[string]bool{}}, reindex.Config{})

	require.NoError(t, h.uc.Walk(context.Background(), rootItem("w1")))

	assert.Equal(t, []reindex.WalkItem{rootItem("w1")}, h.walks.take())
}

func TestTrigger(t *testing.T) {
	pub := &fakePublisher{}
	uc := New(log.NewNop(), nil, nil, pub, nil, nil, nil, reindex.Config{
		ReindexPrefix: "/reindex",
		BaseURL:       testBaseURL,
	})

	out, err := uc.Trigger(context.Background(), reindex.TriggerInput{RequestPath: "/reindex/objects/42"})

	require.NoError(t, err)
	assert.Equal(t, "/objects/42", out.Identifier)
	assert.Equal(t, testBaseURL+"/objects/42", out.URI)
	assert.NotEmpty(t, out.WalkID)
	require.Len(t, pub.items, 1)
	assert.Equal(t, out.WalkID, pub.items[0].WalkID)
	assert.Equal(t, 0, pub.items[0].Depth)
}

func TestTriggerErrors(t *testing.T) {
	cfg := reindex.Config{ReindexPrefix: "/reindex", BaseURL: testBaseURL}

	t.Run("path outside prefix", func(t *testing.T) {
		uc := New(log.NewNop(), nil, nil, &fakePublisher{}, nil, nil, nil, cfg)
		_, err := uc.Trigger(context.Background(), reindex.TriggerInput{RequestPath: "/other/objects/42"})
		assert.ErrorIs(t, err, reindex.ErrInvalidPath)
		assert.ErrorIs(t, err, model.ErrConfiguration)
	})

	t.Run("unsafe identifier", func(t *testing.T) {
		pub := &fakePublisher{}
		uc := New(log.NewNop(), nil, nil, pub, nil, nil, nil, cfg)
		_, err := uc.Trigger(context.Background(), reindex.TriggerInput{RequestPath: "/reindex/a%3E%20%3Fp%20%3Fo%20%7D%20%3B%20DROP%20ALL"})
		assert.ErrorIs(t, err, reindex.ErrInvalidPath)
		assert.ErrorIs(t, err, model.ErrInvalidIRI)
		assert.Empty(t, pub.items)
	})

	t.Run("publish failure", func(t *testing.T) {
		uc := New(log.NewNop(), nil, nil, &fakePublisher{err: errors.New("closed")}, nil, nil, nil, cfg)
		_, err := uc.Trigger(context.Background(), reindex.TriggerInput{RequestPath: "/reindex/objects/42"})
		assert.ErrorIs(t, err, reindex.ErrTriggerFailed)
	})

	t.Run("no publisher", func(t *testing.T) {
		uc := New(log.NewNop(), nil, nil, nil, nil, nil, nil, cfg)
		_, err := uc.Trigger(context.Background(), reindex.TriggerInput{RequestPath: "/reindex/objects/42"})
		assert.ErrorIs(t, err, reindex.ErrPublisherNotEnabled)
	})

	t.Run("no base url", func(t *testing.T) {
		uc := New(log.NewNop(), nil, nil, &fakePublisher{}, nil, nil, nil, reindex.Config{ReindexPrefix: "/reindex"})
		_, err := uc.Trigger(context.Background(), reindex.TriggerInput{RequestPath: "/reindex/objects/42"})
		assert.ErrorIs(t, err, reindex.ErrTriggerFailed)
	})
}

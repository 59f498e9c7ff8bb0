package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"indexing-srv/internal/model"
	"indexing-srv/internal/propagation"
	"indexing-srv/pkg/rdfxml"
)

// Update republishes a changed resource when it is marked indexable.
func (uc *implUseCase) Update(ctx context.Context, d model.ResourceDescriptor) propagation.UpdateOutput {
	uri := d.URI()

	transform, err := uc.indexingTransform(ctx, uri)
	if err != nil {
		r := model.StageResult{
			Route:      model.RouteUpdate,
			Branch:     model.BranchFetch,
			Descriptor: d,
			Err:        err,
			At:         time.Now().UTC(),
		}
		uc.reporter.Report(ctx, r)
		return propagation.UpdateOutput{Results: []model.StageResult{r}}
	}

	if !transform.Indexable {
		skippedTotal.Inc()
		uc.l.Debugf(ctx, "propagation.usecase.Update: %s is not indexable, skipping", uri)
		return propagation.UpdateOutput{Skipped: true}
	}

	name := transform.TransformName
	if name == "" {
		name = uc.cfg.DefaultTransform
	}

	results := uc.fanOut(ctx, model.RouteUpdate, d, "",
		branch{model.BranchLog, func(ctx context.Context) error {
			uc.l.Infof(ctx, "propagation.usecase.Update: indexing %s with transform %s", uri, name)
			return nil
		}},
		branch{model.BranchTriplestore, func(ctx context.Context) error {
			triples, err := uc.repo.GetNTriples(ctx, uri)
			if err != nil {
				return transportErr(err)
			}
			return triplestoreErr(uc.sparql.Replace(ctx, uri, triples))
		}},
		branch{model.BranchIndex, func(ctx context.Context) error {
			doc, err := uc.repo.GetTransform(ctx, uri, name)
			if err != nil {
				return transportErr(err)
			}
			return transportErr(uc.solr.Update(ctx, doc))
		}},
	)

	return propagation.UpdateOutput{TransformName: name, Results: results}
}

func (uc *implUseCase) indexingTransform(ctx context.Context, uri string) (model.IndexableTransform, error) {
	body, err := uc.repo.GetRDF(ctx, uri)
	if err != nil {
		return model.IndexableTransform{}, transportErr(err)
	}

	doc, err := rdfxml.Parse(bytes.NewReader(body))
	if err != nil {
		return model.IndexableTransform{}, fmt.Errorf("%w: %w", model.ErrParse, err)
	}

	name, indexable := doc.IndexingTransform()
	return model.IndexableTransform{TransformName: name, Indexable: indexable}, nil
}

package usecase

import (
	"context"

	"indexing-srv/internal/model"
	"indexing-srv/internal/propagation"
)

// Delete removes the triples and the search document of a removed resource.
func (uc *implUseCase) Delete(ctx context.Context, d model.ResourceDescriptor) propagation.DeleteOutput {
	uri := d.URI()

	results := uc.fanOut(ctx, model.RouteDelete, d, model.EventTypeNodeRemoved,
		branch{model.BranchLog, func(ctx context.Context) error {
			uc.l.Infof(ctx, "propagation.usecase.Delete: removing %s from triplestore and search index", uri)
			return nil
		}},
		branch{model.BranchTriplestore, func(ctx context.Context) error {
			return triplestoreErr(uc.sparql.Delete(ctx, uri))
		}},
		branch{model.BranchIndex, func(ctx context.Context) error {
			return transportErr(uc.solr.Delete(ctx, d.Identifier))
		}},
	)

	return propagation.DeleteOutput{Results: results}
}

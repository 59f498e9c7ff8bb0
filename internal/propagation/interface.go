package propagation

import (
	"context"

	"indexing-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Delete removes the resource from the triplestore and the search index.
	Delete(ctx context.Context, d model.ResourceDescriptor) DeleteOutput
	// Update republishes an indexable resource to the triplestore and the search index.
	Update(ctx context.Context, d model.ResourceDescriptor) UpdateOutput
}

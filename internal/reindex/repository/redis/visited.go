package redis

import (
	"context"
	"fmt"

	"indexing-srv/internal/reindex/repository"
)

// visitedKey namespaces visit marks per walk.
func visitedKey(walkID, identifier string) string {
	return fmt.Sprintf("indexing:walk:%s:%s", walkID, identifier)
}

func (r *implVisitedRepository) MarkVisited(ctx context.Context, opt repository.MarkVisitedOptions) (bool, error) {
	first, err := r.redis.SetNX(ctx, visitedKey(opt.WalkID, opt.Identifier), 1, r.ttl)
	if err != nil {
		r.l.Errorf(ctx, "reindex.repository.redis.MarkVisited: SETNX failed: %v", err)
		return false, err
	}
	return first, nil
}

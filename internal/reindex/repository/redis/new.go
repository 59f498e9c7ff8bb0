package redis

import (
	"time"

	"indexing-srv/internal/reindex/repository"
	"indexing-srv/pkg/log"
	pkgRedis "indexing-srv/pkg/redis"
)

const defaultVisitedTTL = 24 * time.Hour

type implVisitedRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory. Visit marks expire after ttl.
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.VisitedRepository {
	if ttl <= 0 {
		ttl = defaultVisitedTTL
	}
	return &implVisitedRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}

package usecase

import (
	"indexing-srv/internal/outcome"
	"indexing-srv/internal/propagation"
	"indexing-srv/pkg/fcrepo"
	"indexing-srv/pkg/log"
	"indexing-srv/pkg/solr"
	"indexing-srv/pkg/sparql"
)

// implUseCase implements the propagation.UseCase interface
type implUseCase struct {
	l        log.Logger
	repo     fcrepo.IFcrepo
	sparql   sparql.ISparql
	solr     solr.ISolr
	reporter outcome.Reporter
	cfg      propagation.Config
}

// New creates a new propagation usecase
func New(
	l log.Logger,
	repo fcrepo.IFcrepo,
	sparql sparql.ISparql,
	solr solr.ISolr,
	reporter outcome.Reporter,
	cfg propagation.Config,
) propagation.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		sparql:   sparql,
		solr:     solr,
		reporter: reporter,
		cfg:      cfg,
	}
}

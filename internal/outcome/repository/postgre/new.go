package postgre

import (
	"database/sql"

	repo "indexing-srv/internal/outcome/repository"
	"indexing-srv/pkg/log"
)

type implPostgresRepository struct {
	l  log.Logger
	db *sql.DB
}

// New creates a Postgres backed failure repository.
func New(l log.Logger, db *sql.DB) repo.Repository {
	return &implPostgresRepository{
		l:  l,
		db: db,
	}
}

package repository

import "errors"

var (
	ErrNotFound             = errors.New("failure not found")
	ErrFailedToInsert       = errors.New("failed to insert")
	ErrFailedToList         = errors.New("failed to list")
	ErrFailedToMarkResolved = errors.New("failed to mark resolved")
)

// Package db pkg/db/errors.go provides errors for the db package.
package db

import "errors"

var (
	ErrFailedOpenDB      = errors.New("failed to open database")
	ErrFailedToInit      = errors.New("failed to initialize schema")
	ErrFailedToEnableWAL = errors.New("failed to enable WAL mode")
	ErrFailedToBeginTx   = errors.New("failed to begin transaction")
	ErrFailedToQuery     = errors.New("failed to query")
	ErrFailedToScan      = errors.New("failed to scan")
	ErrFailedToInsert    = errors.New("failed to insert")
	ErrFailedToUpsert    = errors.New("failed to upsert")
	ErrFailedToDelete    = errors.New("failed to delete")
	ErrRoadNotFound      = errors.New("road not found")
)

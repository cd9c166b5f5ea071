// Package scheduler pkg/scheduler/errors.go provides errors for the scheduler package.
package scheduler

import "errors"

var (
	ErrNilBaseInterval   = errors.New("base interval function is required")
	ErrInvalidRecordDate = errors.New("inspection record has an invalid date")
	ErrMissingRoadID     = errors.New("road asset has no road id")
)

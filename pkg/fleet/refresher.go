// Package fleet pkg/fleet/refresher.go
package fleet

import (
	"context"
	"log"
	"time"
)

const DefaultRefreshInterval = time.Hour

// Refresher rebuilds the schedule on a fixed cadence so overdue status
// tracks the passage of time even when no inspections are recorded.
type Refresher struct {
	svc      *Service
	interval time.Duration
}

// NewRefresher wraps the fleet service. A non-positive interval falls
// back to DefaultRefreshInterval.
func NewRefresher(svc *Service, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	return &Refresher{svc: svc, interval: interval}
}

// Start runs the refresh loop until the context is canceled.
func (r *Refresher) Start(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Printf("fleet: schedule refresher running every %v", r.interval)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.svc.Regenerate()
		}
	}
}

// Stop implements the lifecycle service interface; the loop already
// exits on context cancellation.
func (*Refresher) Stop(context.Context) error {
	return nil
}

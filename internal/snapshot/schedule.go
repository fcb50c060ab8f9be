package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler reloads a Store on a cron schedule.
type Scheduler struct {
	cron  *cron.Cron
	store *Store
}

// NewScheduler registers a reload job. spec uses the standard five-field
// syntax or a descriptor such as "@hourly" or "@every 6h".
func NewScheduler(ctx context.Context, store *Store, spec string) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		// Reload logs its own failures and keeps the previous snapshot.
		_, _ = store.Reload(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("parse reload schedule %q: %w", spec, err)
	}
	return &Scheduler{cron: c, store: store}, nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	s.store.logger.Info("Dataset reload scheduler started", "next", s.Next())
}

// Stop stops the scheduler and waits for a running reload to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.store.logger.Info("Dataset reload scheduler stopped")
}

// Next returns the time of the next scheduled reload as RFC 3339, or an
// empty string before Start.
func (s *Scheduler) Next() string {
	entries := s.cron.Entries()
	if len(entries) == 0 || entries[0].Next.IsZero() {
		return ""
	}
	return entries[0].Next.Format(time.RFC3339)
}

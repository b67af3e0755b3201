// Package scheduler runs periodic refresh cycles on a cron spec,
// independent of read-triggered refreshes. Both paths share the
// coordinator, so a scheduled cycle overlapping a triggered one is a
// no-op.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"opportunityhub/internal/ingest"
)

type Scheduler struct {
	cron        *cron.Cron
	coordinator *ingest.Coordinator
	spec        string
}

func New(coordinator *ingest.Coordinator, spec string) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		coordinator: coordinator,
		spec:        spec,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if !s.coordinator.RunSync(context.Background()) {
			log.Println("Scheduled refresh skipped: another refresh is in flight")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to register refresh job: %w", err)
	}

	s.cron.Start()
	log.Printf("Refresh scheduler started (spec %q)", s.spec)
	return nil
}

// Stop shuts the cron loop down; a running cycle finishes first.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Refresh scheduler stopped")
}

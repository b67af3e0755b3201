package ingest

import (
	"context"
	"log"
	"sync"
)

// RunFunc is the refresh work the coordinator guards; in production it
// is Pipeline.Run.
type RunFunc func(ctx context.Context) (int, error)

// Coordinator guarantees at most one refresh is in flight process-wide.
// The mutex is held only for the flag check-and-set, never across the
// fetch/parse/store sequence.
type Coordinator struct {
	mu         sync.Mutex
	inProgress bool
	run        RunFunc
}

func NewCoordinator(run RunFunc) *Coordinator {
	return &Coordinator{run: run}
}

// TriggerAsync starts a refresh on a background goroutine and returns
// immediately. It reports false when a refresh is already running, in
// which case the caller proceeds with whatever is cached. A started
// refresh always runs to completion; callers cannot cancel it.
func (c *Coordinator) TriggerAsync() bool {
	c.mu.Lock()
	if c.inProgress {
		c.mu.Unlock()
		return false
	}
	c.inProgress = true
	c.mu.Unlock()

	go func() {
		defer func() {
			c.mu.Lock()
			c.inProgress = false
			c.mu.Unlock()
		}()

		if _, err := c.run(context.Background()); err != nil {
			log.Printf("Background refresh failed: %v", err)
		}
	}()

	return true
}

// RunSync executes the refresh on the caller's goroutine under the same
// single-flight guard; the scheduler uses it for periodic cycles. It
// reports false without running when a refresh is already in flight.
func (c *Coordinator) RunSync(ctx context.Context) bool {
	c.mu.Lock()
	if c.inProgress {
		c.mu.Unlock()
		return false
	}
	c.inProgress = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inProgress = false
		c.mu.Unlock()
	}()

	if _, err := c.run(ctx); err != nil {
		log.Printf("Scheduled refresh failed: %v", err)
	}
	return true
}

// InProgress reports whether a refresh is currently running.
func (c *Coordinator) InProgress() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inProgress
}

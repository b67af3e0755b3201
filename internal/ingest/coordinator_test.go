package ingest_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"opportunityhub/internal/ingest"
)

func TestTriggerAsyncSingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var runs int32

	coordinator := ingest.NewCoordinator(func(ctx context.Context) (int, error) {
		if atomic.AddInt32(&runs, 1) == 1 {
			close(started)
		}
		<-release
		return 0, nil
	})

	if !coordinator.TriggerAsync() {
		t.Fatal("first trigger should start a refresh")
	}
	<-started

	if coordinator.TriggerAsync() {
		t.Error("second trigger should report already in flight")
	}
	if !coordinator.InProgress() {
		t.Error("InProgress should be true while the run blocks")
	}

	close(release)
	waitIdle(t, coordinator)

	if got := atomic.LoadInt32(&runs); got != 1 {
		t.Errorf("run executed %d times, want 1", got)
	}
	if !coordinator.TriggerAsync() {
		t.Error("trigger should succeed again after completion")
	}
	waitIdle(t, coordinator)
}

func TestRunSyncGuard(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	coordinator := ingest.NewCoordinator(func(ctx context.Context) (int, error) {
		close(started)
		<-release
		return 0, nil
	})

	coordinator.TriggerAsync()
	<-started

	if coordinator.RunSync(context.Background()) {
		t.Error("RunSync should refuse while a refresh is in flight")
	}

	close(release)
	waitIdle(t, coordinator)

	ran := false
	second := ingest.NewCoordinator(func(ctx context.Context) (int, error) {
		ran = true
		return 3, nil
	})
	if !second.RunSync(context.Background()) {
		t.Error("RunSync should run when idle")
	}
	if !ran {
		t.Error("RunSync did not invoke the run func")
	}
}

func waitIdle(t *testing.T, c *ingest.Coordinator) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !c.InProgress() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("coordinator never returned to idle")
}

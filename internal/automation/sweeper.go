// Package automation runs the two recurring sweeps: auction closing and
// commission reconciliation. Sweeps are never triggered by requests; each
// owns a ticker, an injectable clock, and a guard against overlapping
// ticks.
package automation

import (
	"context"
	"sync/atomic"
	"time"

	"auction-platform/internal/metrics"
	"auction-platform/utils"
)

// task is one sweep pass evaluated against a single timestamp.
type task interface {
	Name() string
	RunOnce(now time.Time)
}

// Sweeper drives a task on a fixed interval. A tick that arrives while the
// previous run is still in flight is skipped, so the idempotency-guard
// writes inside a run never race with themselves.
type Sweeper struct {
	task     task
	interval time.Duration
	now      func() time.Time
	running  atomic.Bool
}

// NewSweeper creates a sweeper for the task at the given cadence.
func NewSweeper(t task, interval time.Duration) *Sweeper {
	return &Sweeper{task: t, interval: interval, now: time.Now}
}

// WithClock overrides the sweeper clock. For tests.
func (s *Sweeper) WithClock(now func() time.Time) *Sweeper {
	s.now = now
	return s
}

// Start runs ticks until ctx is cancelled. Blocks; run it in a goroutine.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	utils.Info("sweep started", map[string]any{
		"sweep":    s.task.Name(),
		"interval": s.interval.String(),
	})
	for {
		select {
		case <-ctx.Done():
			utils.Info("sweep stopped", map[string]any{"sweep": s.task.Name()})
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick runs one pass unless the previous one is still in flight.
func (s *Sweeper) Tick() {
	if !s.running.CompareAndSwap(false, true) {
		metrics.SweepSkipped.WithLabelValues(s.task.Name()).Inc()
		utils.Warn("sweep tick skipped, previous run still in flight", map[string]any{
			"sweep": s.task.Name(),
		})
		return
	}
	defer s.running.Store(false)

	s.task.RunOnce(s.now().UTC())
	metrics.SweepRuns.WithLabelValues(s.task.Name()).Inc()
}

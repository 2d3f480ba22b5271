package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kofeld/signalbot/internal/schedule"
)

// Scheduler repeatedly runs a task with a target cadence. Stop takes
// effect at the next cycle boundary, so a cycle already in progress
// always completes.
type Scheduler struct {
	task     schedule.Task
	interval time.Duration

	running  atomic.Bool
	stopC    chan struct{}
	stopOnce sync.Once
}

func NewScheduler(task schedule.Task, cfg Config) *Scheduler {
	return &Scheduler{
		task:     task,
		interval: cfg.AnalysisInterval,
		stopC:    make(chan struct{}),
	}
}

// Run loops until Stop is called. After each cycle it sleeps whatever
// remains of the interval; an overrunning cycle starts the next one
// immediately with a warning. A task error is a defect and terminates
// the loop.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.stopRequested() {
		// stopped before it ever started
		return nil
	}
	s.running.Store(true)
	defer s.running.Store(false)
	slog.Info("scheduler started", "task", s.task.Name(), "interval", s.interval)

	for !s.stopRequested() {
		start := time.Now()

		if err := s.task.Run(ctx); err != nil {
			return fmt.Errorf("task %q: %w", s.task.Name(), err)
		}

		elapsed := time.Since(start)
		sleep := s.interval - elapsed
		if sleep > 0 {
			slog.Debug("cycle completed", "elapsed", elapsed, "sleep", sleep)
			s.idle(sleep)
		} else {
			slog.Warn("cycle overran analysis interval", "elapsed", elapsed, "interval", s.interval)
		}
	}
	slog.Info("scheduler stopped")
	return nil
}

// stopRequested reports whether Stop has been called. The loop checks it
// only at cycle boundaries, so the closed channel is the single source of
// truth: a Stop racing with startup can never be overwritten.
func (s *Scheduler) stopRequested() bool {
	select {
	case <-s.stopC:
		return true
	default:
		return false
	}
}

// idle waits out the remainder of a cycle. A stop request wakes it early;
// that is still cycle-boundary granularity since no work is in flight.
func (s *Scheduler) idle(d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-s.stopC:
	}
}

// Stop requests termination. Safe to call from any goroutine and more
// than once.
func (s *Scheduler) Stop() {
	s.running.Store(false)
	s.stopOnce.Do(func() {
		close(s.stopC)
	})
}

// Running reports whether the loop will begin another cycle.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

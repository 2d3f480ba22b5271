package bot

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTask struct {
	runs  atomic.Int32
	delay time.Duration
	err   error
}

func (t *countingTask) Run(ctx context.Context) error {
	t.runs.Add(1)
	if t.delay > 0 {
		time.Sleep(t.delay)
	}
	return t.err
}

func (t *countingTask) Name() string {
	return "counting task"
}

func TestScheduler_StopAtCycleBoundary(t *testing.T) {
	task := &countingTask{}
	s := NewScheduler(task, Config{AnalysisInterval: time.Hour})

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, s.Run(context.Background()))
	}()

	// let the first cycle start, then stop during the idle sleep
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Equal(t, int32(1), task.runs.Load())
	assert.False(t, s.Running())
}

func TestScheduler_OverrunStartsNextCycleImmediately(t *testing.T) {
	// each cycle takes longer than the interval; no cycle may be skipped
	task := &countingTask{delay: 5 * time.Millisecond}
	s := NewScheduler(task, Config{AnalysisInterval: time.Millisecond})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Run(context.Background())
	}()

	time.Sleep(60 * time.Millisecond)
	s.Stop()
	<-done

	assert.GreaterOrEqual(t, task.runs.Load(), int32(3))
}

func TestScheduler_TaskErrorTerminatesLoop(t *testing.T) {
	task := &countingTask{err: errors.New("boom")}
	s := NewScheduler(task, Config{AnalysisInterval: time.Millisecond})

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "counting task")
	assert.Equal(t, int32(1), task.runs.Load())
}

func TestScheduler_StopBeforeRun(t *testing.T) {
	task := &countingTask{}
	s := NewScheduler(task, Config{AnalysisInterval: time.Hour})
	s.Stop()

	assert.NoError(t, s.Run(context.Background()))
	assert.Equal(t, int32(0), task.runs.Load())
}

func TestScheduler_StopDuringStartup(t *testing.T) {
	// Stop arriving while Run is still starting must always win: the loop
	// may complete at most the cycle already underway, never spin.
	for i := 0; i < 100; i++ {
		task := &countingTask{}
		s := NewScheduler(task, Config{AnalysisInterval: time.Hour})

		done := make(chan error, 1)
		go func() {
			done <- s.Run(context.Background())
		}()
		s.Stop()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("run did not return after stop")
		}
		assert.LessOrEqual(t, task.runs.Load(), int32(1))
		assert.False(t, s.Running())
	}
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	s := NewScheduler(&countingTask{}, Config{AnalysisInterval: time.Hour})
	s.Stop()
	assert.NotPanics(t, func() { s.Stop() })
}

func TestCycleTask_ProcessesAllSymbolsInOrder(t *testing.T) {
	var order []string
	p := processorFunc(func(ctx context.Context, symbol string) {
		order = append(order, symbol)
	})
	cfg := testConfig()
	cfg.SymbolDelay = 0

	cycle := NewCycleTask(p, cfg)
	require.NoError(t, cycle.Run(context.Background()))
	assert.Equal(t, []string{"BTC/USDT", "ETH/USDT"}, order)
}

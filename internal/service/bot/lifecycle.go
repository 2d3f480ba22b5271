package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kofeld/signalbot/internal/service/notifier"
)

type State int32

const (
	StateCreated State = iota
	StateInitializing
	StateRunning
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// shutdownNotifyTimeout bounds how long shutdown waits on the farewell
// notification before closing collaborators.
const shutdownNotifyTimeout = 5 * time.Second

// Bot owns the startup and shutdown ordering around the scheduler.
// Initialize is fatal on any failure; Shutdown is idempotent and always
// attempts to close every collaborator.
type Bot struct {
	scheduler *Scheduler
	store     DataStore
	notifier  notifier.Notifier

	state        atomic.Int32
	shutdownOnce sync.Once
	now          func() time.Time
}

func NewBot(scheduler *Scheduler, store DataStore, notif notifier.Notifier) *Bot {
	return &Bot{
		scheduler: scheduler,
		store:     store,
		notifier:  notif,
		now:       time.Now,
	}
}

func (b *Bot) State() State {
	return State(b.state.Load())
}

// Initialize brings up the data store, then the notifier, then announces
// startup. Any failure leaves the bot stopped and must abort the process.
func (b *Bot) Initialize(ctx context.Context) error {
	if !b.state.CompareAndSwap(int32(StateCreated), int32(StateInitializing)) {
		return fmt.Errorf("initialize from state %s", b.State())
	}
	slog.Info("initializing bot")

	if err := b.init(ctx); err != nil {
		b.state.Store(int32(StateStopped))
		return err
	}

	slog.Info("bot initialized")
	return nil
}

func (b *Bot) init(ctx context.Context) error {
	if err := b.store.Init(ctx); err != nil {
		return fmt.Errorf("init data store: %w", err)
	}
	if err := b.notifier.Init(ctx); err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	started := fmt.Sprintf("🤖 Trading Bot Started at %s", b.now().Format("2006-01-02 15:04:05"))
	if err := b.notifier.Send(ctx, started); err != nil {
		return fmt.Errorf("send startup notification: %w", err)
	}
	return nil
}

// Run drives the scheduler loop until a stop request. An error or panic
// escaping the pipeline boundary is a programming defect: it is converted
// to an error and a best-effort alert so the caller can still shut down.
func (b *Bot) Run(ctx context.Context) (err error) {
	if !b.state.CompareAndSwap(int32(StateInitializing), int32(StateRunning)) {
		return fmt.Errorf("run from state %s", b.State())
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("main loop: %v", r)
		}
		if err != nil {
			slog.Error("unrecovered error in main loop", "error", err)
			if nerr := b.notifier.Send(ctx, fmt.Sprintf("❌ Trading bot error: %s", err)); nerr != nil {
				slog.Error("failed to send loop error alert", "error", nerr)
			}
		}
	}()

	return b.scheduler.Run(ctx)
}

// Shutdown stops the scheduler, announces the stop, then closes the
// notifier and the data store. Collaborator failures are logged, never
// escalated, and one close failure does not prevent the other close.
// Safe from any exit path; repeated calls are a logged no-op.
func (b *Bot) Shutdown(ctx context.Context) {
	ran := false
	b.shutdownOnce.Do(func() {
		ran = true
		b.shutdown(ctx)
	})
	if !ran {
		slog.Info("shutdown already requested", "state", b.State())
	}
}

func (b *Bot) shutdown(ctx context.Context) {
	b.state.Store(int32(StateStopping))
	slog.Info("shutting down bot")
	b.scheduler.Stop()

	// bounded wait: delivery is attempted exactly once and never retried
	nctx, cancel := context.WithTimeout(ctx, shutdownNotifyTimeout)
	stopped := fmt.Sprintf("🛑 Trading Bot Stopped at %s", b.now().Format("2006-01-02 15:04:05"))
	if err := b.notifier.Send(nctx, stopped); err != nil {
		slog.Error("failed to send shutdown notification", "error", err)
	}
	cancel()

	if err := b.notifier.Shutdown(ctx); err != nil {
		slog.Error("failed to shut down notifier", "error", err)
	}
	if err := b.store.Close(); err != nil {
		slog.Error("failed to close data store", "error", err)
	}

	b.state.Store(int32(StateStopped))
	slog.Info("bot stopped")
}

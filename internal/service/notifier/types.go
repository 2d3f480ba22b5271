package notifier

import "context"

// Notifier delivers text alerts. Send is best-effort from the caller's
// point of view: the orchestration layer logs failures and moves on.
type Notifier interface {
	Init(ctx context.Context) error
	Send(ctx context.Context, text string) error
	Shutdown(ctx context.Context) error
}

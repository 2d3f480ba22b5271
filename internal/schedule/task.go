package schedule

import "context"

// Task is one unit of scheduled work. Run returns an error only for
// defects the caller should treat as fatal; expected per-item failures
// are the task's own to absorb.
type Task interface {
	Run(ctx context.Context) error
	Name() string
}

// Package workers runs background jobs of the client runtime, such as the
// periodic refresh of the visible list.
package workers

import "context"

// Worker is a background job with an explicit lifecycle. Start must not
// block; Stop blocks until the job's goroutines have exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Refresher reloads some piece of state.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshFunc adapts a function to [Refresher].
type RefreshFunc func(ctx context.Context) error

func (f RefreshFunc) Refresh(ctx context.Context) error {
	return f(ctx)
}

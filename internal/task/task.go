// Package task runs named background jobs spawned by request handlers.
package task

import (
	"context"
	"log/slog"
	"time"
)

// Runner executes a job without blocking the caller. Jobs receive their own
// context so they survive the request that spawned them.
type Runner interface {
	Go(name string, fn func(ctx context.Context))
}

// Background runs each job on its own goroutine with a bounded lifetime.
// Panics are recovered and logged so a bad job cannot take the server down.
type Background struct {
	timeout time.Duration
}

func NewBackground(timeout time.Duration) *Background {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Background{timeout: timeout}
}

func (b *Background) Go(name string, fn func(ctx context.Context)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("background task panicked", "task", name, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
		defer cancel()

		fn(ctx)
	}()
}

// Sync runs jobs inline on the calling goroutine. Tests use it to make
// fire-and-forget work deterministic.
type Sync struct{}

func (Sync) Go(_ string, fn func(ctx context.Context)) {
	fn(context.Background())
}

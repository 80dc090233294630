package pkgroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 4

// Manager runs named tasks in goroutines with a concurrency limit.
//
// Errors returned by tasks are collected and joined by Wait. A panicking
// task is logged and reported as an error instead of crashing the process.
type Manager struct {
	mu   sync.Mutex
	errs []error
	wg   sync.WaitGroup
	sema chan struct{}
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{
		sema: make(chan struct{}, maxGoroutine),
	}
}

// Go schedules f under name. It blocks while the manager is full and gives
// up when ctx is done before a slot frees.
func (g *Manager) Go(ctx context.Context, name string, f func(ctx context.Context) error) {
	select {
	case g.sema <- struct{}{}:
	case <-ctx.Done():
		slog.WarnContext(ctx, "task canceled before start", "task", name, "because", ctx.Err())
		return
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			<-g.sema

			if rvr := recover(); rvr != nil {
				slog.ErrorContext(ctx, "panic occurred in task", "task", name, "panic", rvr, "stack", string(debug.Stack()))
				g.collect(fmt.Errorf("task %s panicked: %v", name, rvr))
			}
		}()

		if err := ctx.Err(); err != nil {
			slog.WarnContext(ctx, "task canceled", "task", name, "because", err)
			return
		}

		if err := f(ctx); err != nil {
			g.collect(fmt.Errorf("task %s: %w", name, err))
		}
	}()
}

func (g *Manager) collect(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}

// Wait blocks until all scheduled tasks finish and returns any collected errors.
func (g *Manager) Wait() error {
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()

	return errors.Join(g.errs...)
}

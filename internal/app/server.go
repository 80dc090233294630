package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Start runs the terminal session and, when enabled, the HTTP server. The
// returned channel is closed when the session ends or a signal arrives.
func (a *App) Start() <-chan struct{} {
	terminateChan := make(chan struct{})
	var once sync.Once
	terminate := func() {
		once.Do(func() { close(terminateChan) })
	}

	if a.httpServer != nil {
		a.goroutine.Go(a.ctx, "http server", func(context.Context) error {
			slog.Info("http server listening", "address", a.httpServer.Addr)

			if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				slog.Error("failed to listen and serve http server", "error", err)
				return err
			}
			return nil
		})
	}

	// The session blocks on stdin, so it stays outside the goroutine manager
	// and Stop does not wait for it.
	go func() {
		defer terminate()

		if err := a.prices.Run(a.ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("terminal session failed", "error", err)
		}
	}()

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

		select {
		case <-sigint:
			slog.Info("termination signal received")
			if a.cancel != nil {
				a.cancel()
			}
			terminate()
		case <-terminateChan:
		}
	}()

	return terminateChan
}

func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
		}
	}

	slog.InfoContext(ctx, "waiting for all goroutine to finish")
	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "error from goroutines executions", "error", err)
	}

	for name, closer := range a.closerFn {
		if name == "HTTP Server" {
			continue
		}
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}

	slog.InfoContext(ctx, "application gracefully shutdown")
}

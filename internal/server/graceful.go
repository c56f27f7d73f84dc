package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

const hookTimeout = 10 * time.Second

// ShutdownHook releases a resource once the HTTP server has stopped
type ShutdownHook struct {
	Name string
	Fn   func(ctx context.Context) error
}

type GracefulServer struct {
	server          *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
	hooks           []ShutdownHook
	mu              sync.Mutex
}

func NewGracefulServer(server *http.Server, logger *slog.Logger, shutdownTimeout time.Duration) *GracefulServer {
	return &GracefulServer{
		server:          server,
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}
}

// RegisterShutdownHook adds a hook; hooks run in reverse registration order
func (gs *GracefulServer) RegisterShutdownHook(name string, fn func(ctx context.Context) error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.hooks = append(gs.hooks, ShutdownHook{Name: name, Fn: fn})
}

// Run serves until ctx is cancelled or the listener fails, then shuts down
func (gs *GracefulServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", gs.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", gs.server.Addr, err)
	}
	return gs.Serve(ctx, listener)
}

// Serve is Run on an already bound listener
func (gs *GracefulServer) Serve(ctx context.Context, listener net.Listener) error {
	serverErrors := make(chan error, 1)

	go func() {
		gs.logger.Info("starting server",
			"addr", listener.Addr().String(),
			"read_timeout", gs.server.ReadTimeout,
			"write_timeout", gs.server.WriteTimeout,
		)
		serverErrors <- gs.server.Serve(listener)
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		gs.logger.Info("shutdown signal received", "cause", context.Cause(ctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), gs.shutdownTimeout)
		defer cancel()

		return gs.shutdown(shutdownCtx)
	}
}

func (gs *GracefulServer) shutdown(ctx context.Context) error {
	gs.logger.Info("starting graceful shutdown", "timeout", gs.shutdownTimeout)

	var errs []error

	gs.logger.Info("stopping HTTP server")
	if err := gs.server.Shutdown(ctx); err != nil {
		gs.logger.Error("HTTP server shutdown failed", "error", err)
		errs = append(errs, fmt.Errorf("HTTP server shutdown failed: %w", err))
	} else {
		gs.logger.Info("HTTP server stopped gracefully")
	}

	gs.mu.Lock()
	hooks := make([]ShutdownHook, len(gs.hooks))
	copy(hooks, gs.hooks)
	gs.mu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		hook := hooks[i]
		if ctx.Err() != nil {
			gs.logger.Warn("shutdown timeout exceeded, skipping hook", "hook", hook.Name)
			errs = append(errs, fmt.Errorf("shutdown hook %s skipped: %w", hook.Name, ctx.Err()))
			continue
		}

		hookCtx, cancel := context.WithTimeout(ctx, hookTimeout)
		err := hook.Fn(hookCtx)
		cancel()

		if err != nil {
			gs.logger.Error("shutdown hook failed", "hook", hook.Name, "error", err)
			errs = append(errs, fmt.Errorf("shutdown hook %s failed: %w", hook.Name, err))
			continue
		}
		gs.logger.Debug("shutdown hook completed", "hook", hook.Name)
	}

	gs.logger.Info("graceful shutdown completed")
	return errors.Join(errs...)
}

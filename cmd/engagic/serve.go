package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Engagic/engagic-sub004/pkg/api"
	"github.com/Engagic/engagic-sub004/pkg/cleanup"
	"github.com/Engagic/engagic-sub004/pkg/queue"
	"github.com/Engagic/engagic-sub004/pkg/scheduler"
)

// newServeCmd runs the full daemon: sync scheduler, queue workers, cleanup
// loop, and the HTTP API, until a shutdown signal arrives.
func newServeCmd() *cobra.Command {
	var httpPort string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the sync loop, queue workers, and HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), httpPort)
		},
	}
	cmd.Flags().StringVar(&httpPort, "port", getEnv("HTTP_PORT", "8080"), "HTTP listen port")
	return cmd
}

func runServe(ctx context.Context, httpPort string) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	slog.Info("Starting engagic",
		"http_port", httpPort,
		"pod_id", a.podID,
		"cities", len(a.cfg.Cities),
		"workers", a.cfg.LLMConcurrency)

	// Jobs this pod held when it last died go back to pending before any
	// worker starts.
	if err := queue.ReclaimStartupJobs(ctx, a.dbClient.Client, a.podID); err != nil {
		slog.Error("Startup job reclaim failed", "error", err)
	}

	proc, err := a.buildProcessor()
	if err != nil {
		return err
	}

	workerPool := queue.NewWorkerPool(a.podID, a.dbClient.Client, a.cfg, proc, a.sink)
	if err := workerPool.Start(ctx); err != nil {
		return err
	}

	syncScheduler := scheduler.New(a.fetcher, a.cfg)
	syncScheduler.Start(ctx)

	cleaner := cleanup.NewService(a.cfg, a.dbClient.Client, a.svcs)
	cleaner.Start(ctx)

	httpServer := api.NewServer(a.dbClient, a.svcs, workerPool)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case runErr = <-errCh:
		slog.Error("HTTP server error triggered shutdown", "error", runErr)
	}

	// Staged shutdown: stop taking new work, let in-flight jobs finish
	// inside the grace period, then drain the HTTP server.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownGrace)
	defer cancel()

	syncScheduler.Stop()
	cleaner.Stop()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown grace exceeded, in-flight jobs will be lease-reclaimed")
	}

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	return runErr
}

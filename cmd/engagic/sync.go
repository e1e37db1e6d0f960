package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/queue"
	"github.com/Engagic/engagic-sub004/pkg/scheduler"
)

// newSyncCitiesCmd syncs cities once and exits.
func newSyncCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-cities [banana|@file...]",
		Short: "Sync meeting data for all active cities, or just the ones named (@file reads one banana per line)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			return runSync(cmd.Context(), a, args)
		},
	}
}

// newProcessCitiesCmd drains the processing queue and exits.
func newProcessCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process-cities",
		Short: "Run queue workers until the processing queue is drained",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			return runProcess(cmd.Context(), a)
		},
	}
}

// newSyncAndProcessCmd runs a sync sweep and then drains the queue.
func newSyncAndProcessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-and-process-cities [banana|@file...]",
		Short: "Sync cities, then process everything that was enqueued",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			// A partial sync still processes whatever was enqueued; the
			// partial failure is reported through the exit code afterwards.
			syncErr := runSync(cmd.Context(), a, args)
			var partialErr *partialError
			if syncErr != nil && !errors.As(syncErr, &partialErr) {
				return syncErr
			}
			if err := runProcess(cmd.Context(), a); err != nil {
				return err
			}
			return syncErr
		},
	}
}

func runSync(ctx context.Context, a *app, args []string) error {
	bananas, err := expandBananas(args)
	if err != nil {
		return err
	}

	cfg := a.cfg
	if len(bananas) > 0 {
		selected, err := selectCities(cfg.Cities, bananas)
		if err != nil {
			return err
		}
		scoped := *cfg
		scoped.Cities = selected
		cfg = &scoped
	}

	result, err := scheduler.SyncAll(ctx, a.fetcher, cfg)
	if err != nil {
		return err
	}
	slog.Info("Sync complete",
		"cities", result.Cities,
		"failed", result.Failed,
		"meetings", result.Meetings,
		"enqueued", result.Enqueued)
	if result.Failed > 0 {
		return &partialError{failed: result.Failed, total: result.Cities}
	}
	return nil
}

// expandBananas resolves command arguments into a flat banana list. An
// argument of the form @path is replaced by the file's contents, one banana
// per line, with blank lines and # comments skipped.
func expandBananas(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") {
			out = append(out, arg)
			continue
		}
		path := strings.TrimPrefix(arg, "@")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &usageError{msg: fmt.Sprintf("cannot read city list %s: %v", path, err)}
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			out = append(out, line)
		}
	}
	return out, nil
}

// selectCities resolves explicit bananas against the registry.
func selectCities(cities []config.CityConfig, bananas []string) ([]config.CityConfig, error) {
	byBanana := make(map[string]config.CityConfig, len(cities))
	for _, c := range cities {
		byBanana[c.Banana] = c
	}
	out := make([]config.CityConfig, 0, len(bananas))
	for _, b := range bananas {
		c, ok := byBanana[b]
		if !ok {
			return nil, &usageError{msg: fmt.Sprintf("unknown city %q", b)}
		}
		out = append(out, c)
	}
	return out, nil
}

// runProcess starts the worker pool and stops once the queue has no pending
// or processing jobs left.
func runProcess(ctx context.Context, a *app) error {
	if err := queue.ReclaimStartupJobs(ctx, a.dbClient.Client, a.podID); err != nil {
		return err
	}

	proc, err := a.buildProcessor()
	if err != nil {
		return err
	}
	pool := queue.NewWorkerPool(a.podID, a.dbClient.Client, a.cfg, proc, a.sink)
	if err := pool.Start(ctx); err != nil {
		return err
	}
	defer pool.Stop()

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return errInterrupted
		case <-ticker.C:
			stats, err := queue.GetStats(ctx, a.dbClient.Client)
			if err != nil {
				return err
			}
			if stats.Pending == 0 && stats.Processing == 0 {
				slog.Info("Queue drained",
					"completed", stats.Completed,
					"failed", stats.Failed,
					"dead_letter", stats.DeadLetter)
				return nil
			}
			slog.Info("Processing", "pending", stats.Pending, "in_flight", stats.Processing)
		}
	}
}

// engagic is a civic meeting aggregator: it syncs city meeting data from vendor
// platforms, summarizes agendas with an LLM, and serves the results over a
// read-only HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Exit codes: 0 success, 1 input or runtime error, 2 partial failure,
// 130 interrupted.
const (
	exitOK        = 0
	exitError     = 1
	exitPartial   = 2
	exitInterrupt = 130
)

var errInterrupted = errors.New("interrupted")

var configDir string

func main() {
	os.Exit(run())
}

func run() int {
	root := &cobra.Command{
		Use:           "engagic",
		Short:         "Civic meeting aggregation and summarization",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			loadEnv()
		},
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"), "path to configuration directory")

	root.AddCommand(
		newServeCmd(),
		newSyncCitiesCmd(),
		newProcessCitiesCmd(),
		newSyncAndProcessCmd(),
		newPreviewQueueCmd(),
		newExtractTextCmd(),
		newStatusCmd(),
	)

	// One interrupt cancels gracefully; a second kills the process.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		code := exitCode(err)
		switch code {
		case exitInterrupt:
			slog.Warn("Interrupted")
		case exitPartial:
			slog.Warn("Completed with failures", "error", err)
		default:
			slog.Error("Command failed", "error", err)
		}
		return code
	}
	return exitOK
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, errInterrupted) || errors.Is(err, context.Canceled) {
		return exitInterrupt
	}
	var partialErr *partialError
	if errors.As(err, &partialErr) {
		return exitPartial
	}
	return exitError
}

// usageError marks bad invocations (unknown city, malformed arguments).
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

// partialError marks a run where some, but not all, work failed. It exits
// with code 2 so cron wrappers can tell partial sweeps from hard failures.
type partialError struct {
	failed int
	total  int
}

func (e *partialError) Error() string {
	return fmt.Sprintf("%d of %d cities failed to sync", e.failed, e.total)
}

func loadEnv() {
	envPath := filepath.Join(configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("No .env file, using existing environment", "path", envPath)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Engagic/engagic-sub004/pkg/extract"
	"github.com/Engagic/engagic-sub004/pkg/fetcher"
	"github.com/Engagic/engagic-sub004/pkg/queue"
)

// newPreviewQueueCmd shows what a sync would enqueue, without enqueuing.
func newPreviewQueueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview-queue [banana...]",
		Short: "Dry-run the enqueue decision for stored meetings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			bananas := args
			if len(bananas) == 0 {
				cities, err := a.svcs.City.ListActive(ctx)
				if err != nil {
					return err
				}
				for _, c := range cities {
					bananas = append(bananas, c.ID)
				}
			}

			decider := fetcher.NewEnqueueDecider(a.dbClient.Client, a.svcs.Meeting, a.cfg)
			out := cmd.OutOrStdout()
			for _, banana := range bananas {
				meetings, err := a.svcs.Meeting.ListByCity(ctx, banana, 0)
				if err != nil {
					return err
				}
				for _, m := range meetings {
					decision, err := decider.Decide(ctx, m)
					if err != nil {
						return err
					}
					if decision.Enqueue {
						fmt.Fprintf(out, "ENQUEUE  p=%-4d %s  %s\n", decision.Priority, m.ID, m.Title)
					} else {
						fmt.Fprintf(out, "skip     %-6s %s  (%s)\n", "", m.ID, decision.Reason)
					}
				}
			}
			return nil
		},
	}
}

// newExtractTextCmd downloads one document and prints its extracted text.
func newExtractTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract-text <url>",
		Short: "Download a PDF and print its extracted text",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &usageError{msg: "exactly one document URL is required"}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			downloader := extract.NewDownloader(a.cfg.PDFExtractTimeout)
			extractor := extract.NewPDFExtractor(1, a.cfg.PDFExtractTimeout, a.sink)

			data, err := downloader.Fetch(ctx, args[0])
			if err != nil {
				return fmt.Errorf("download failed: %w", err)
			}
			result, err := extractor.ExtractFromBytes(ctx, data)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}
			if !result.Success {
				return fmt.Errorf("extraction failed: %s", result.Error)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pages: %d, characters: %d\n\n", result.PageCount, len(result.Text))
			fmt.Fprintln(out, result.Text)
			return nil
		},
	}
}

// newStatusCmd prints a one-shot operational snapshot.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show city sync state and queue depth",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()

			cities, err := a.svcs.City.ListAll(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "cities: %d\n", len(cities))
			for _, c := range cities {
				last := "never"
				if c.LastSyncedAt != nil {
					last = c.LastSyncedAt.Format("2006-01-02 15:04")
				}
				fmt.Fprintf(out, "  %-20s %-10s %-8s last_sync=%s errors=%d\n",
					c.ID, c.Vendor, c.Status, last, c.SyncErrorCount)
			}

			stats, err := queue.GetStats(ctx, a.dbClient.Client)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nqueue: pending=%d processing=%d completed=%d failed=%d dead_letter=%d\n",
				stats.Pending, stats.Processing, stats.Completed, stats.Failed, stats.DeadLetter)
			if stats.OldestReady != nil {
				fmt.Fprintf(out, "oldest pending job: %s\n", stats.OldestReady.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

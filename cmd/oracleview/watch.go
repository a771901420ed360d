package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nuwa-protocol/oracleview/internal/config"
	"github.com/nuwa-protocol/oracleview/internal/output"
	"github.com/nuwa-protocol/oracleview/internal/report"
	"github.com/nuwa-protocol/oracleview/internal/rooch"
)

func watchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Continuously display the latest Oracle request",
		Long: `Re-fetch and re-render the most recent Oracle request on an interval.

Examples:
  oracleview watch
  oracleview watch --interval 10s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runWatch(cfg, interval)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "Refresh interval (defaults to config)")
	return cmd
}

func runWatch(cfg *config.Config, intervalOverride time.Duration) error {
	interval := cfg.WatchInterval
	if intervalOverride > 0 {
		interval = intervalOverride
	}

	client := rooch.NewClient(rooch.ClientConfig{
		Binary:      cfg.Binary,
		RequestType: cfg.RequestType,
		Timeout:     cfg.Timeout,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C gracefully
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	refresh := func() {
		res, err := client.FetchLatest(ctx)
		if err != nil {
			output.RenderWatchError(os.Stdout, err, interval)
			return
		}
		output.RenderWatchFrame(os.Stdout, report.Build(res.Object), interval)
	}

	refresh()

	for {
		select {
		case <-ctx.Done():
			output.ClearScreen(os.Stdout)
			fmt.Println("Exiting...")
			return nil
		case <-ticker.C:
			if ctx.Err() != nil {
				continue
			}
			refresh()
		}
	}
}

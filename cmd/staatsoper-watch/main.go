// Command staatsoper-watch checks the Wiener Staatsoper event listing once a
// day for ticket availability on tomorrow's performance and sends a Telegram
// notification when remaining tickets (Restkarten) are found.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/mhofer/staatsoper-watch/internal/checker"
	"github.com/mhofer/staatsoper-watch/internal/config"
	"github.com/mhofer/staatsoper-watch/internal/logger"
	"github.com/mhofer/staatsoper-watch/internal/notifier"
	"github.com/mhofer/staatsoper-watch/internal/schedule"
	"github.com/mhofer/staatsoper-watch/internal/scraper"
)

var (
	flagConfig  string
	flagOnce    bool
	flagDryRun  bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staatsoper-watch",
		Short: "Watch the Wiener Staatsoper listing for ticket availability",
		Long: `Checks the Wiener Staatsoper event listing once a day for ticket
availability on tomorrow's performance and sends a Telegram notification when
remaining tickets are found.

Telegram credentials come from the TELEGRAM_TOKEN and TELEGRAM_CHAT_ID
environment variables. Without them the watcher still runs, it just logs a
warning instead of notifying.`,
		RunE: runWatch,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file (built-in defaults if unset)")
	cmd.Flags().BoolVar(&flagOnce, "once", false, "Run a single check immediately and exit")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the notification instead of sending it")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runWatch is the main command logic
func runWatch(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stdout))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	hour, minute, err := cfg.Target()
	if err != nil {
		return err
	}

	var n notifier.Notifier
	if flagDryRun {
		n = notifier.NewDryRunNotifier()
	} else {
		n = notifier.FromEnv()
	}

	chk := checker.New(scraper.New(cfg.ListingURL, loc), n, loc)

	if flagOnce {
		outcome := chk.Run(time.Now())
		logger.Info("Check finished", logger.Fields{"outcome": outcome.String()})
		return nil
	}

	gate := schedule.NewGate(hour, minute, loc)

	// The cron fires every minute; the gate turns that into one run per day
	// at the configured local time.
	c := cron.New()
	if _, err := c.AddFunc("* * * * *", func() {
		now := time.Now()
		if !gate.ShouldRun(now) {
			return
		}
		gate.MarkFired(now)

		outcome := chk.Run(now)
		logger.Info("Check finished", logger.Fields{"outcome": outcome.String()})
	}); err != nil {
		return fmt.Errorf("scheduling tick: %w", err)
	}

	logger.Info("staatsoper-watch started", logger.Fields{
		"listing_url": cfg.ListingURL,
		"timezone":    cfg.Timezone,
		"target_time": cfg.TargetTime,
		"dry_run":     flagDryRun,
	})

	c.Start()
	defer c.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("Signal received, shutting down", logger.Fields{"signal": sig.String()})
	return nil
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

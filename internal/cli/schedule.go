package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/socialdir/socialdir/internal/config"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the digest on a cron schedule until interrupted",
	Long: `Schedule starts a daemon that performs a full digest run on the cron
expression from the config (schedule.cron, default Monday 08:00).

A failed run is logged and the daemon keeps going; the next tick tries
again. Stop with Ctrl-C or SIGTERM.`,
	RunE: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Schedule.Cron == "" {
		return fmt.Errorf("schedule.cron is not set")
	}
	log := newLogger(cfg)

	// Wire clients once, up front, so credential problems surface at
	// startup instead of on the first tick.
	runner, err := newRunner(ctx, cfg, log, true)
	if err != nil {
		return err
	}

	c := cron.New()
	_, err = c.AddFunc(cfg.Schedule.Cron, func() {
		if _, err := runner.Run(ctx, time.Now()); err != nil {
			log.Error().Err(err).Msg("digest run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", cfg.Schedule.Cron, err)
	}

	c.Start()
	log.Info().Str("cron", cfg.Schedule.Cron).Msg("schedule daemon started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutting down")
	<-c.Stop().Done()
	return nil
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/socialdir/socialdir/internal/config"
)

var runNoMail bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Score the roster, persist scores, and send the digest",
	Long: `Run performs one full digest pass: it loads the roster and your
calendar window, scores every contact against their target cadence,
writes the scores back to the spreadsheet, and emails the digest.

Scores are persisted before mail goes out; if the write fails, no
digest is sent, so the sheet and the emailed ranking never diverge.

Examples:
  socialdir run            # Full run
  socialdir run --no-mail  # Persist scores but skip the email`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runNoMail, "no-mail", false, "Persist scores but do not send the digest")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	runner, err := newRunner(ctx, cfg, log, !runNoMail)
	if err != nil {
		return err
	}

	res, err := runner.Run(ctx, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Run %s complete: %d contacts scored against %d events\n",
		res.RunID, res.Contacts, res.Events)
	fmt.Printf("  active: %d  scheduled: %d  inactive: %d\n",
		len(res.Digest.Active), len(res.Digest.Scheduled), len(res.Digest.Inactive))
	return nil
}

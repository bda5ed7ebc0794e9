package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/socialdir/socialdir/internal/config"
	"github.com/socialdir/socialdir/internal/output"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Preview the digest in the terminal without writing or mailing",
	Long: `Report loads the roster and calendar, computes scores, and prints the
ranking locally. Nothing is written back to the spreadsheet and no
email is sent.

Examples:
  socialdir report            # Table output
  socialdir report -o json    # Digest as JSON`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	runner, err := newRunner(ctx, cfg, log, false)
	if err != nil {
		return err
	}

	res, err := runner.Preview(ctx, time.Now())
	if err != nil {
		return err
	}

	return output.Write(outputFmt, res.Digest)
}

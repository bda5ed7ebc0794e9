package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/socialdir/socialdir/internal/config"
	"github.com/socialdir/socialdir/internal/googleauth"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with Google and cache a token",
	Long: `Auth runs the Google OAuth consent flow in your browser and caches
the resulting token. Later commands reuse the cached token and refresh
it automatically.

The token covers all three APIs the digest needs: Sheets (read/write),
Calendar (read-only), and Gmail (send).`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if googleauth.HasToken(cfg.Google.TokenPath) {
		fmt.Printf("Already authenticated (token at %s)\n", cfg.Google.TokenPath)
		fmt.Println("Delete the token file to re-run the consent flow.")
		return nil
	}

	if _, err := googleauth.NewClient(cmd.Context(), cfg.Google.CredentialsPath, cfg.Google.TokenPath); err != nil {
		return err
	}

	fmt.Printf("Authentication successful, token cached at %s\n", cfg.Google.TokenPath)
	return nil
}

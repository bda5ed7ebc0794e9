package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "socialdir")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'socialdir config show' to view current configuration")
		return nil
	}

	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Create OAuth credentials in the Google Cloud console (Desktop app)")
	fmt.Printf("  2. Save credentials.json to %s/\n", configDir)
	fmt.Println("  3. Set sheets.id to your directory spreadsheet")
	fmt.Println("  4. Run 'socialdir auth' to authenticate")
	fmt.Println("  5. Run 'socialdir report' to preview your first digest")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'socialdir config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# socialdir configuration

[google]
credentials_path = "~/.config/socialdir/credentials.json"
token_path = "~/.config/socialdir/token.json"

[sheets]
id = ""                          # spreadsheet ID, or set SOCIALDIR_SHEET_ID
roster_range = "Directory!A2:E"
score_range = "Directory!F2:H"   # [score, last seen, updated] per roster row
columns = ["first", "last", "source", "email", "targetFrequency"]

[calendar]
provider = "google"              # "google" or "ics"
id = "primary"
ics_url = ""                     # only used when provider = "ics"
lookback_months = 12
lookahead_months = 12

[mail]
enabled = true
from = ""                        # e.g. "Jane Doe <jane@example.com>"
to = ""
subject_prefix = "[Social Directory]"

[digest]
directory_url = ""               # "Full Directory" link in the digest footer

[schedule]
cron = "0 8 * * MON"             # used by 'socialdir schedule'

[log]
level = "info"
`

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"
)

// Load reads and parses the configuration file. A .env file in the
// working directory is loaded first so environment overrides work for
// local development.
func Load(path string) (*Config, error) {
	// Missing .env is fine; it only exists in dev checkouts.
	_ = godotenv.Load()

	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'socialdir config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyEnv overrides deployment-specific fields from the environment,
// so a checked-in config never has to carry sheet IDs or feed URLs.
func (c *Config) applyEnv() {
	if v := os.Getenv("SOCIALDIR_SHEET_ID"); v != "" {
		c.Sheets.ID = v
	}
	if v := os.Getenv("SOCIALDIR_ICS_URL"); v != "" {
		c.Calendar.ICSURL = v
	}
	if v := os.Getenv("SOCIALDIR_CREDENTIALS_PATH"); v != "" {
		c.Google.CredentialsPath = v
	}
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Google.CredentialsPath, err = expandPath(c.Google.CredentialsPath)
	if err != nil {
		return err
	}

	c.Google.TokenPath, err = expandPath(c.Google.TokenPath)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Google.CredentialsPath == "" {
		errs = append(errs, errors.New("google.credentials_path is required"))
	}
	if c.Google.TokenPath == "" {
		errs = append(errs, errors.New("google.token_path is required"))
	}

	if c.Sheets.ID == "" {
		errs = append(errs, errors.New("sheets.id is required"))
	}
	if c.Sheets.RosterRange == "" {
		errs = append(errs, errors.New("sheets.roster_range is required"))
	}
	if c.Sheets.ScoreRange == "" {
		errs = append(errs, errors.New("sheets.score_range is required"))
	}
	if len(c.Sheets.Columns) > 0 {
		if !hasColumn(c.Sheets.Columns, "email") || !hasColumn(c.Sheets.Columns, "targetFrequency") {
			errs = append(errs, errors.New("sheets.columns must include 'email' and 'targetFrequency'"))
		}
	}

	switch c.Calendar.Provider {
	case "google":
	case "ics":
		if c.Calendar.ICSURL == "" {
			errs = append(errs, errors.New("calendar.ics_url is required when calendar.provider is 'ics'"))
		}
	default:
		errs = append(errs, fmt.Errorf("calendar.provider must be 'google' or 'ics', got '%s'", c.Calendar.Provider))
	}
	if c.Calendar.LookbackMonths < 1 {
		errs = append(errs, errors.New("calendar.lookback_months must be at least 1"))
	}
	if c.Calendar.LookaheadMonths < 1 {
		errs = append(errs, errors.New("calendar.lookahead_months must be at least 1"))
	}

	if c.Mail.Enabled {
		if c.Mail.From == "" {
			errs = append(errs, errors.New("mail.from is required when mail is enabled"))
		}
		if c.Mail.To == "" {
			errs = append(errs, errors.New("mail.to is required when mail is enabled"))
		}
	}

	if c.Schedule.Cron != "" {
		if _, err := cron.ParseStandard(c.Schedule.Cron); err != nil {
			errs = append(errs, fmt.Errorf("schedule.cron is not a valid cron expression: %w", err))
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn, or error, got '%s'", c.Log.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func hasColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

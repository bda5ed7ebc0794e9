package config

// Config represents the application configuration
type Config struct {
	Google   GoogleConfig   `toml:"google"`
	Sheets   SheetsConfig   `toml:"sheets"`
	Calendar CalendarConfig `toml:"calendar"`
	Mail     MailConfig     `toml:"mail"`
	Digest   DigestConfig   `toml:"digest"`
	Schedule ScheduleConfig `toml:"schedule"`
	Log      LogConfig      `toml:"log"`
}

// GoogleConfig contains OAuth credential locations shared by the
// Sheets, Calendar, and Gmail clients
type GoogleConfig struct {
	CredentialsPath string `toml:"credentials_path"`
	TokenPath       string `toml:"token_path"`
}

// SheetsConfig locates the roster spreadsheet
type SheetsConfig struct {
	ID          string   `toml:"id"`
	RosterRange string   `toml:"roster_range"`
	ScoreRange  string   `toml:"score_range"`
	Columns     []string `toml:"columns"`
}

// CalendarConfig selects and bounds the event source
type CalendarConfig struct {
	Provider        string `toml:"provider"` // "google" or "ics"
	ID              string `toml:"id"`       // Google calendar ID, usually "primary"
	ICSURL          string `toml:"ics_url"`  // Feed URL when provider is "ics"
	LookbackMonths  int    `toml:"lookback_months"`
	LookaheadMonths int    `toml:"lookahead_months"`
}

// MailConfig contains digest email settings
type MailConfig struct {
	Enabled       bool   `toml:"enabled"`
	From          string `toml:"from"`
	To            string `toml:"to"`
	SubjectPrefix string `toml:"subject_prefix"`
}

// DigestConfig contains digest rendering settings
type DigestConfig struct {
	DirectoryURL string `toml:"directory_url"`
}

// ScheduleConfig contains the schedule daemon settings
type ScheduleConfig struct {
	Cron string `toml:"cron"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Google: GoogleConfig{
			CredentialsPath: "~/.config/socialdir/credentials.json",
			TokenPath:       "~/.config/socialdir/token.json",
		},
		Sheets: SheetsConfig{
			RosterRange: "Directory!A2:E",
			ScoreRange:  "Directory!F2:H",
			Columns:     []string{"first", "last", "source", "email", "targetFrequency"},
		},
		Calendar: CalendarConfig{
			Provider:        "google",
			ID:              "primary",
			LookbackMonths:  12,
			LookaheadMonths: 12,
		},
		Mail: MailConfig{
			Enabled:       true,
			SubjectPrefix: "[Social Directory]",
		},
		Schedule: ScheduleConfig{
			Cron: "0 8 * * MON", // Monday morning digest
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

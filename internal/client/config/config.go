package config

import "time"

// Default OAuth scope: read-only Drive metadata is all the dashboard needs.
const defaultDriveScope = "https://www.googleapis.com/auth/drive.readonly"

// Config holds runtime settings for the DocSync Hub CLI.
//
// Fields:
//   - GoogleClientID / GoogleClientSecret: OAuth client for the device flow.
//   - Scopes: OAuth scopes requested on consent.
//   - DatabaseFile: SQLite file name holding the category assignments.
//   - GeminiAPIKey / GeminiModel: suggestion backend settings.
//   - SuggestTimeout: per-call deadline for suggestion requests.
type Config struct {
	GoogleClientID     string
	GoogleClientSecret string
	Scopes             []string
	DatabaseFile       string
	GeminiAPIKey       string
	GeminiModel        string
	SuggestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Scopes = []string{defaultDriveScope}
	c.DatabaseFile = "docsync.db"
	c.GeminiModel = "gemini-2.5-flash"
	c.SuggestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/docsynchub/docsync/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   SQLite database file name (default from Config)
//	-g string   Google OAuth client ID
//	-m string   Gemini model name
//	-t int      suggestion timeout in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-g", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseFile, "d", cfg.DatabaseFile, "sqlite database file name")
	fs.StringVar(&cfg.GoogleClientID, "g", cfg.GoogleClientID, "google oauth client id")
	fs.StringVar(&cfg.GeminiModel, "m", cfg.GeminiModel, "gemini model name")
	suggestTimeout := fs.Int("t", int(cfg.SuggestTimeout.Seconds()), "suggestion timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SuggestTimeout = time.Duration(*suggestTimeout) * time.Second
}

// parseEnv overlays secrets from the environment. Keys follow the Google
// SDK conventions so an already-configured shell keeps working.
func parseEnv(cfg *Config) {
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		cfg.GoogleClientID = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_SECRET"); v != "" {
		cfg.GoogleClientSecret = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
}

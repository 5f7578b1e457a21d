package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/docsynchub/docsync/internal/flagx"
	"github.com/docsynchub/docsync/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	GoogleClientID     string         `json:"google_client_id"`
	GoogleClientSecret string         `json:"google_client_secret"`
	Scopes             []string       `json:"scopes"`
	DatabaseFile       string         `json:"database_file"`
	GeminiAPIKey       string         `json:"gemini_api_key"`
	GeminiModel        string         `json:"gemini_model"`
	SuggestTimeout     timex.Duration `json:"suggest_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (flagx.JsonConfigFlags);
// when absent, no JSON is loaded. Empty JSON fields leave the corresponding
// Config values untouched. Panics on read or unmarshal errors.
//
// Intended usage is: defaults -> parseJson -> parseEnv -> parseFlags, where
// later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.GoogleClientID != "" {
		cfg.GoogleClientID = jc.GoogleClientID
	}
	if jc.GoogleClientSecret != "" {
		cfg.GoogleClientSecret = jc.GoogleClientSecret
	}
	if len(jc.Scopes) > 0 {
		cfg.Scopes = jc.Scopes
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.GeminiAPIKey != "" {
		cfg.GeminiAPIKey = jc.GeminiAPIKey
	}
	if jc.GeminiModel != "" {
		cfg.GeminiModel = jc.GeminiModel
	}
	if jc.SuggestTimeout.Duration != 0 {
		cfg.SuggestTimeout = time.Duration(jc.SuggestTimeout.Duration)
	}
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, []string{defaultDriveScope}, c.Scopes)
	assert.Equal(t, "docsync.db", c.DatabaseFile)
	assert.Equal(t, "gemini-2.5-flash", c.GeminiModel)
	assert.Equal(t, 15*time.Second, c.SuggestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "docsync.db", cfg.DatabaseFile)
	assert.Equal(t, 15*time.Second, cfg.SuggestTimeout)
}

func TestParseEnv_OverlaysSecrets(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "cid-from-env")
	t.Setenv("GEMINI_API_KEY", "key-from-env")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "cid-from-env", cfg.GoogleClientID)
	assert.Equal(t, "key-from-env", cfg.GeminiAPIKey)
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	origLoad := loadDotEnv
	loadDotEnv = func() {}
	t.Cleanup(func() { loadDotEnv = origLoad })

	for _, k := range []string{EnvAPIBaseURL, EnvRequestTimeout, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3001/api", c.APIBaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, int64(10<<20), c.MaxUploadSize)
}

func TestLoadConfig_UsesDefaultsWithoutSources(t *testing.T) {
	isolateEnv(t)
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:3001/api", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	isolateEnv(t)
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, t.TempDir(), "cfg.json", map[string]any{
		"api_base_url":    "http://from-json/api",
		"request_timeout": "5s",
		"log_level":       "warn",
	})
	t.Setenv(EnvAPIBaseURL, "http://from-env/api")
	os.Args = []string{"testbin", "-c", path, "-t", "7"}

	cfg := LoadConfig()

	assert.Equal(t, "http://from-env/api", cfg.APIBaseURL, "env overrides JSON")
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout, "flags override JSON")
	assert.Equal(t, "warn", cfg.LogLevel, "JSON overrides defaults")
}

package config

import (
	"time"

	"github.com/dmitrijs2005/dataguard/internal/common"
)

// Config holds runtime settings for the Data Guard CLI.
//
// Fields:
//   - APIBaseURL: base URL every endpoint path is appended to.
//   - RequestTimeout: upper bound for a single API round trip (0 = none).
//   - LogLevel: debug, info, warn or error.
//   - MaxUploadSize: largest file accepted by scanfile, in bytes.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	LogLevel       string
	MaxUploadSize  int64
}

// LoadDefaults populates c with local development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = common.DefaultAPIBaseURL
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
	c.MaxUploadSize = 10 << 20
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

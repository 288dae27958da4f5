package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvAPIBaseURL     = "CIPHERA_API_URL"
	EnvRequestTimeout = "CIPHERA_REQUEST_TIMEOUT"
	EnvLogLevel       = "CIPHERA_LOG_LEVEL"
)

// loadDotEnv is a test seam; a missing .env file is not an error.
var loadDotEnv = func() { _ = godotenv.Load() }

func getEnv(key string) (string, bool) {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val, true
	}
	return "", false
}

// parseEnv overlays cfg with CIPHERA_* variables. A malformed timeout panics.
func parseEnv(cfg *Config) {
	loadDotEnv()

	if v, ok := getEnv(EnvAPIBaseURL); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := getEnv(EnvRequestTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := getEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
}

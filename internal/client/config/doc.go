// Package config loads runtime configuration for the Data Guard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment: a .env file in the working directory is loaded first
//     (existing variables win), then CIPHERA_API_URL,
//     CIPHERA_REQUEST_TIMEOUT and CIPHERA_LOG_LEVEL are read.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend API base URL
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://guard.example.com/api",
//	  "request_timeout": "30s",
//	  "log_level": "debug",
//	  "max_upload_size": 10485760
//	}
//
// Malformed input in any source panics; the CLI treats configuration errors
// as fatal.
package config

// Package config loads runtime configuration for the CareWork CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Environment variables prefixed with CAREWORK_ (see parseEnv). A .env
//     file in the working directory is loaded first when present.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the CareWork API
//	-t int      request timeout (seconds)
//	-d string   path of the local SQLite store; empty keeps state in memory
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "30s" or integer
// nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8080",
//	  "request_timeout": "30s",
//	  "rate_limit": 5,
//	  "database_path": "carework.db",
//	  "key_prefix": "@carework:",
//	  "environment": "production",
//	  "locale": "pt-BR",
//	  "log_level": "info",
//	  "log_format": "json"
//	}
package config

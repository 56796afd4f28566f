// Package config loads runtime configuration for the CoordiNet CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed with COORDINET_, optionally read from
//     a .env file in the working directory.
//  3. A JSON or YAML file selected with -c or -config; the extension picks
//     the format (.yaml/.yml is YAML, anything else JSON).
//  4. Command-line flags.
//
// Supported flags
//
//	-d string   database file (":memory:" keeps everything in memory)
//	-p string   storage key prefix
//	-l string   log level: debug, info, warn, error
//
// # File schema
//
// Durations use timex.Duration, so they may be strings like "5s" or integer
// nanoseconds:
//
//	database_path: data/coordinet.db
//	key_prefix: coordinet_
//	log_level: info
//	log_format: text
//	busy_timeout: 5s
//	conflict_retries: 3
//	conflict_backoff: 10ms
package config

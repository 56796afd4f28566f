package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the CoordiNet CLI.
type Config struct {
	DatabasePath    string
	KeyPrefix       string
	LogLevel        string
	LogFormat       string
	BusyTimeout     time.Duration
	ConflictRetries uint64
	ConflictBackoff time.Duration
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "data/coordinet.db"
	c.KeyPrefix = "coordinet_"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.BusyTimeout = 5 * time.Second
	c.ConflictRetries = 3
	c.ConflictBackoff = 10 * time.Millisecond
}

// LoadConfig builds the configuration from the process arguments and
// environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], ".env")
}

// Load applies defaults, the environment (after loading envFile if it
// exists), the config file named in args and finally the flags in args.
func Load(args []string, envFile string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, envFile); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFile(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

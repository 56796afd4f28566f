package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/coordinet/internal/flagx"
	"github.com/dmitrijs2005/coordinet/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. Pointer fields let
// a file set only some values.
type FileConfig struct {
	DatabasePath    *string         `json:"database_path" yaml:"database_path"`
	KeyPrefix       *string         `json:"key_prefix" yaml:"key_prefix"`
	LogLevel        *string         `json:"log_level" yaml:"log_level"`
	LogFormat       *string         `json:"log_format" yaml:"log_format"`
	BusyTimeout     *timex.Duration `json:"busy_timeout" yaml:"busy_timeout"`
	ConflictRetries *uint64         `json:"conflict_retries" yaml:"conflict_retries"`
	ConflictBackoff *timex.Duration `json:"conflict_backoff" yaml:"conflict_backoff"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return err
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.DatabasePath != nil {
		cfg.DatabasePath = *fc.DatabasePath
	}
	if fc.KeyPrefix != nil {
		cfg.KeyPrefix = *fc.KeyPrefix
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
	if fc.BusyTimeout != nil {
		cfg.BusyTimeout = fc.BusyTimeout.Duration
	}
	if fc.ConflictRetries != nil {
		cfg.ConflictRetries = *fc.ConflictRetries
	}
	if fc.ConflictBackoff != nil {
		cfg.ConflictBackoff = fc.ConflictBackoff.Duration
	}
}

package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "COORDINET_"

// env resolves COORDINET_* variables: the process environment first, then
// the values read from the .env file.
type env map[string]string

func (e env) lookup(name string) (string, bool) {
	if v, ok := os.LookupEnv(envPrefix + name); ok {
		return v, true
	}
	v, ok := e[envPrefix+name]
	return v, ok
}

// parseEnv overlays cfg with COORDINET_* variables. A missing envFile is
// ignored; the process environment is never modified.
func parseEnv(cfg *Config, envFile string) error {
	e := env{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err == nil {
			e = vars
		}
	}

	e.lookupString("DB_PATH", &cfg.DatabasePath)
	e.lookupString("KEY_PREFIX", &cfg.KeyPrefix)
	e.lookupString("LOG_LEVEL", &cfg.LogLevel)
	e.lookupString("LOG_FORMAT", &cfg.LogFormat)

	if err := e.lookupDuration("BUSY_TIMEOUT", &cfg.BusyTimeout); err != nil {
		return err
	}
	if err := e.lookupDuration("CONFLICT_BACKOFF", &cfg.ConflictBackoff); err != nil {
		return err
	}
	if v, ok := e.lookup("CONFLICT_RETRIES"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return err
		}
		cfg.ConflictRetries = n
	}
	return nil
}

func (e env) lookupString(name string, dst *string) {
	if v, ok := e.lookup(name); ok {
		*dst = v
	}
}

func (e env) lookupDuration(name string, dst *time.Duration) error {
	v, ok := e.lookup(name)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "data/coordinet.db", c.DatabasePath)
	assert.Equal(t, "coordinet_", c.KeyPrefix)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, 5*time.Second, c.BusyTimeout)
	assert.Equal(t, uint64(3), c.ConflictRetries)
	assert.Equal(t, 10*time.Millisecond, c.ConflictBackoff)
}

func TestLoad_NoSources(t *testing.T) {
	cfg, err := Load(nil, "")
	require.NoError(t, err)

	want := defaults()
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoad_Precedence(t *testing.T) {
	envFile := writeTemp(t, ".env", "COORDINET_LOG_FORMAT=json\nCOORDINET_KEY_PREFIX=fromdotenv_\n")
	t.Setenv("COORDINET_KEY_PREFIX", "fromenv_")
	t.Setenv("COORDINET_LOG_LEVEL", "warn")
	t.Setenv("COORDINET_CONFLICT_RETRIES", "9")

	file := writeTemp(t, "conf.yaml", "log_level: error\nbusy_timeout: 2s\ndatabase_path: file.db\n")

	cfg, err := Load([]string{"-c", file, "-d", "flag.db"}, envFile)
	require.NoError(t, err)

	want := defaults()
	want.LogFormat = "json"
	want.KeyPrefix = "fromenv_"
	want.ConflictRetries = 9
	want.LogLevel = "error"
	want.BusyTimeout = 2 * time.Second
	want.DatabasePath = "flag.db"
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoad_Errors(t *testing.T) {
	t.Run("bad env duration", func(t *testing.T) {
		t.Setenv("COORDINET_BUSY_TIMEOUT", "forever")
		_, err := Load(nil, "")
		require.ErrorContains(t, err, "environment")
	})

	t.Run("bad env retries", func(t *testing.T) {
		t.Setenv("COORDINET_CONFLICT_RETRIES", "-1")
		_, err := Load(nil, "")
		require.ErrorContains(t, err, "environment")
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := Load([]string{"-c", filepath.Join(t.TempDir(), "nope.json")}, "")
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("broken json", func(t *testing.T) {
		_, err := Load([]string{"-c", writeTemp(t, "c.json", "{")}, "")
		require.ErrorContains(t, err, "config file")
	})

	t.Run("missing flag value", func(t *testing.T) {
		_, err := Load([]string{"-d"}, "")
		require.ErrorContains(t, err, "flags")
	})
}

func TestLoad_EnvFileDoesNotLeakIntoProcess(t *testing.T) {
	envFile := writeTemp(t, ".env", "COORDINET_LOG_LEVEL=debug\n")

	cfg, err := Load(nil, envFile)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, set := os.LookupEnv("COORDINET_LOG_LEVEL")
	assert.False(t, set)
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
}

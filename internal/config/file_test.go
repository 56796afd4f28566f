package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTemp(t, "conf.json", `{
		"database_path": ":memory:",
		"key_prefix": "test_",
		"log_format": "json",
		"busy_timeout": "750ms",
		"conflict_retries": 0,
		"conflict_backoff": 5000000
	}`)

	cfg := defaults()
	require.NoError(t, parseFile(&cfg, []string{"-config", path}))

	want := defaults()
	want.DatabasePath = ":memory:"
	want.KeyPrefix = "test_"
	want.LogFormat = "json"
	want.BusyTimeout = 750 * time.Millisecond
	want.ConflictRetries = 0
	want.ConflictBackoff = 5 * time.Millisecond
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseFile_YAMLPartial(t *testing.T) {
	path := writeTemp(t, "conf.yml", "log_level: debug\nconflict_backoff: 1s\n")

	cfg := defaults()
	require.NoError(t, parseFile(&cfg, []string{"-c", path}))

	want := defaults()
	want.LogLevel = "debug"
	want.ConflictBackoff = time.Second
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseFile_NoFlag(t *testing.T) {
	cfg := defaults()
	require.NoError(t, parseFile(&cfg, []string{"-d", "x.db"}))
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseFile_BadDuration(t *testing.T) {
	path := writeTemp(t, "conf.yaml", "busy_timeout: whenever\n")

	cfg := defaults()
	require.Error(t, parseFile(&cfg, []string{"-c", path}))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(c *Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-d", "x.db", "-p", "t_", "-l", "debug"},
			want: func(c *Config) { c.DatabasePath, c.KeyPrefix, c.LogLevel = "x.db", "t_", "debug" },
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "conf.json", "-l=warn", "-z", "1"},
			want: func(c *Config) { c.LogLevel = "warn" },
		},
		{
			name:    "missing value",
			args:    []string{"-l"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(&cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.want(&want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

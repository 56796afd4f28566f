package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.yaml", "-d", "data.db"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.yaml"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.json", "-l", "debug"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-d"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d"},
		},
		{
			name:         "next dash-starting token is not a value",
			args:         []string{"-p", "-l", "warn"},
			allowedFlags: []string{"-p", "-l"},
			want:         []string{"-p", "-l", "warn"},
		},
		{
			name:         "several allowed flags keep their order",
			args:         []string{"-l", "info", "-c", "conf.json", "-d", "x.db"},
			allowedFlags: []string{"-d", "-l"},
			want:         []string{"-l", "info", "-d", "x.db"},
		},
		{
			name:         "repeated flag is preserved",
			args:         []string{"-d", "one.db", "-d", "two.db"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "one.db", "-d", "two.db"},
		},
		{
			name:         "empty args",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/etc/coordinet.yaml"}, "/etc/coordinet.yaml"},
		{"long", []string{"-config", "/etc/coordinet.json"}, "/etc/coordinet.json"},
		{"double dash with equals", []string{"--config=conf.json"}, "conf.json"},
		{"mixed with other flags", []string{"-d", "x.db", "-c", "conf.yml", "-l", "debug"}, "conf.yml"},
		{"last wins", []string{"-c", "1.json", "-config", "2.json"}, "2.json"},
		{"absent", []string{"-d", "x.db"}, ""},
		{"missing value", []string{"-c"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFileFlag(tt.args))
		})
	}
}

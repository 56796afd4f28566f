package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/coordinet/internal/flagx"
)

// parseFlags overlays cfg with -d, -p and -l. Other arguments are left for
// other parsers.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-p", "-l"})

	fs := flag.NewFlagSet("coordinet", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "database file")
	fs.StringVar(&cfg.KeyPrefix, "p", cfg.KeyPrefix, "storage key prefix")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(args)
}

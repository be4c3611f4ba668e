package config

import (
	"flag"
	"os"

	"github.com/emontoya05/healthtrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the SQLite database file
//	-g string   directory for the rotating log file
//	-v string   log level (debug|info|warn|error)
//
// os.Args is filtered down to these flags first so the parser does not choke
// on flags owned by other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-g", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	fs.StringVar(&cfg.LogDir, "g", cfg.LogDir, "log directory")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

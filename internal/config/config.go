// Package config assembles runtime settings from defaults, an optional JSON
// file, and command-line flags, in that order of precedence.
package config

// Config holds the runtime settings of healthtrack.
//
// Fields:
//   - DatabasePath: location of the SQLite file.
//   - LogDir: directory the rotating log file is written to.
//   - LogLevel: minimum level written to the log (debug|info|warn|error).
type Config struct {
	DatabasePath string
	LogDir       string
	LogLevel     string
}

// LoadDefaults populates c with the stock settings: the database file next
// to the binary, logs in ./logs, info level.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "health_app.db"
	c.LogDir = "logs"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

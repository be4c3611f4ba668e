package config

import (
	"encoding/json"
	"os"

	"github.com/emontoya05/healthtrack/internal/flagx"
)

// JsonConfig is the DTO used exclusively for JSON unmarshalling. Empty
// fields leave the current Config value untouched, so a partial file only
// overrides what it names.
type JsonConfig struct {
	DatabasePath string `json:"database_path"`
	LogDir       string `json:"log_dir"`
	LogLevel     string `json:"log_level"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. No flag, no overlay. Read or unmarshal errors panic;
// main recovers nothing because a broken config file should stop startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	applyJson(cfg, &jc)
}

func applyJson(cfg *Config, jc *JsonConfig) {
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogDir != "" {
		cfg.LogDir = jc.LogDir
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}

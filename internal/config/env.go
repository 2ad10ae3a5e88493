package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	EnvDataDir    = "ROLERADAR_DATA_DIR"
	EnvAPIBaseURL = "ROLERADAR_API_BASE_URL"
	EnvPort       = "ROLERADAR_PORT"
	EnvLogLevel   = "ROLERADAR_LOG_LEVEL"
)

// ApplyEnv overlays environment variables onto cfg. Unparseable values
// are ignored.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIBaseURL)); v != "" {
		cfg.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = p
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.App.LogLevel = v
	}
}

// DataDir is ROLERADAR_DATA_DIR or the working directory.
func DataDir() string {
	if d := strings.TrimSpace(os.Getenv(EnvDataDir)); d != "" {
		return d
	}
	return "."
}

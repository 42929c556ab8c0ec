// Package config reads process configuration from the environment, with an
// optional .env file in the working directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is the process configuration, read once at startup.
type Config struct {
	// ConfigDir holds storage.json and the default log file.
	ConfigDir     string
	LogFile       string
	LogLevel      string
	LogFormat     string
	SampleMaps    int
	WatchSettings bool
}

// Load reads .env (if present) and then the MAPDRAW_* variables.
func Load() (*Config, error) {
	// a missing .env is normal; real environment variables still apply
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a getenv function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		ConfigDir:     getenv("MAPDRAW_CONFIG_DIR"),
		LogFile:       getenv("MAPDRAW_LOG_FILE"),
		LogLevel:      withDefault(getenv("MAPDRAW_LOG_LEVEL"), "info"),
		LogFormat:     strings.ToLower(withDefault(getenv("MAPDRAW_LOG_FORMAT"), "text")),
		WatchSettings: true,
	}
	if cfg.ConfigDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = filepath.Join(getenv("HOME"), ".config")
		}
		cfg.ConfigDir = filepath.Join(base, "mapdraw")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.ConfigDir, "mapdraw.log")
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("MAPDRAW_LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("MAPDRAW_LOG_FORMAT: unknown format %q", cfg.LogFormat)
	}
	if v := getenv("MAPDRAW_SAMPLE_MAPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("MAPDRAW_SAMPLE_MAPS: want a non-negative integer, got %q", v)
		}
		cfg.SampleMaps = n
	}
	if v := getenv("MAPDRAW_WATCH_SETTINGS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("MAPDRAW_WATCH_SETTINGS: %w", err)
		}
		cfg.WatchSettings = b
	}
	return cfg, nil
}

// StoragePath is the settings key-value file.
func (c *Config) StoragePath() string { return filepath.Join(c.ConfigDir, "storage.json") }

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{"MAPDRAW_CONFIG_DIR": "/tmp/md"}))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/md", cfg.ConfigDir)
	assert.Equal(t, filepath.Join("/tmp/md", "mapdraw.log"), cfg.LogFile)
	assert.Equal(t, filepath.Join("/tmp/md", "storage.json"), cfg.StoragePath())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 0, cfg.SampleMaps)
	assert.True(t, cfg.WatchSettings)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"MAPDRAW_CONFIG_DIR":     "/tmp/md",
		"MAPDRAW_LOG_FILE":       "/var/log/md.log",
		"MAPDRAW_LOG_LEVEL":      "debug",
		"MAPDRAW_LOG_FORMAT":     "JSON",
		"MAPDRAW_SAMPLE_MAPS":    "5",
		"MAPDRAW_WATCH_SETTINGS": "false",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/var/log/md.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5, cfg.SampleMaps)
	assert.False(t, cfg.WatchSettings)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"level":  {"MAPDRAW_LOG_LEVEL": "loud"},
		"format": {"MAPDRAW_LOG_FORMAT": "xml"},
		"sample": {"MAPDRAW_SAMPLE_MAPS": "-1"},
		"watch":  {"MAPDRAW_WATCH_SETTINGS": "maybe"},
	}
	for name, vals := range cases {
		t.Run(name, func(t *testing.T) {
			vals["MAPDRAW_CONFIG_DIR"] = "/tmp/md"
			_, err := FromEnv(env(vals))
			assert.Error(t, err)
		})
	}
}

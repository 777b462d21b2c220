package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"forklift-ca/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forklift.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	m, err := cfg.MarkerSet()
	require.NoError(t, err)
	assert.Equal(t, core.DefaultMarkers(), m)
}

func TestLoadPartialFile(t *testing.T) {
	path := writeConfig(t, "workers: 4\nmarkers:\n  occupied: \"#\"\nlog:\n  level: debug\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "#", cfg.Markers.Occupied)
	assert.Equal(t, ".", cfg.Markers.Empty)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestParseFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "workers: 4\nformat: json\n")
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Parse(fs, []string{"-config", path, "-format", "yaml", "-input", "floor.txt"})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, "floor.txt", cfg.Input)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "forklift.json"))
	assert.ErrorContains(t, err, "extension")

	_, err = Load(writeConfig(t, "workers: [1, 2"))
	assert.ErrorContains(t, err, "failed to parse")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "same markers", mutate: func(c *Config) { c.Markers.Empty = "@" }, want: "must differ"},
		{name: "long marker", mutate: func(c *Config) { c.Markers.Occupied = "@@" }, want: "single character"},
		{name: "workers", mutate: func(c *Config) { c.Workers = 0 }, want: "workers"},
		{name: "format", mutate: func(c *Config) { c.Format = "xml" }, want: "output format"},
		{name: "profile", mutate: func(c *Config) { c.Profile = "block" }, want: "profile"},
		{name: "log level", mutate: func(c *Config) { c.Log.Level = "loud" }, want: "not a valid logrus Level"},
		{name: "log format", mutate: func(c *Config) { c.Log.Format = "xml" }, want: "log format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.want)
		})
	}
}

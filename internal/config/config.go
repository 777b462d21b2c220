// Package config holds command-line settings shared by the forklift tools.
// Values come from defaults, then an optional YAML file, then flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"forklift-ca/internal/core"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// MarkerConfig spells the two grid symbols as single-character strings.
type MarkerConfig struct {
	Occupied string `yaml:"occupied"`
	Empty    string `yaml:"empty"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config represents the settings of a forklift run.
type Config struct {
	Input   string       `yaml:"input"`
	Markers MarkerConfig `yaml:"markers"`
	Workers int          `yaml:"workers"`
	Format  string       `yaml:"format"`
	Profile string       `yaml:"profile"`
	Log     LogConfig    `yaml:"log"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	m := core.DefaultMarkers()
	return &Config{
		Input:   "-",
		Markers: MarkerConfig{Occupied: string(m.Occupied), Empty: string(m.Empty)},
		Workers: 1,
		Format:  FormatText,
		Log:     LogConfig{Level: "warn", Format: "text"},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", cleanPath, err)
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "grid file to read (- for stdin)")
	fs.StringVar(&c.Markers.Occupied, "occupied", c.Markers.Occupied, "symbol marking an occupied cell")
	fs.StringVar(&c.Markers.Empty, "empty", c.Markers.Empty, "symbol marking an empty cell")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to evaluate each pass")
	fs.StringVar(&c.Format, "format", c.Format, "output format: text, json or yaml")
	fs.StringVar(&c.Profile, "profile", c.Profile, "write a cpu or mem profile to the working directory")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level")
	fs.StringVar(&c.Log.Format, "log-format", c.Log.Format, "log format: text or json")
}

// Parse binds a fresh Config and a -config flag to fs and parses args. When a
// config file is named, it is loaded first and every flag set explicitly on
// the command line is applied on top of it.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := Default()
	cfg.Bind(fs)
	path := fs.String("config", "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *path != "" {
		fromFile, err := Load(*path)
		if err != nil {
			return nil, err
		}
		overlay := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
		fromFile.Bind(overlay)
		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "config" || setErr != nil {
				return
			}
			setErr = overlay.Set(f.Name, f.Value.String())
		})
		if setErr != nil {
			return nil, setErr
		}
		cfg = fromFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MarkerSet converts the configured symbols into core.Markers.
func (c *Config) MarkerSet() (core.Markers, error) {
	occ, err := singleRune("occupied", c.Markers.Occupied)
	if err != nil {
		return core.Markers{}, err
	}
	empty, err := singleRune("empty", c.Markers.Empty)
	if err != nil {
		return core.Markers{}, err
	}
	m := core.Markers{Occupied: occ, Empty: empty}
	if err := m.Validate(); err != nil {
		return core.Markers{}, err
	}
	return m, nil
}

// Validate checks every field and reports the first problem found.
func (c *Config) Validate() error {
	if _, err := c.MarkerSet(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("unknown profile mode %q", c.Profile)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

func singleRune(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s marker must be a single character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

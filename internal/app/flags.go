package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Input    string
	Occupied string
	Empty    string

	Width   int
	Height  int
	Density float64
	Workers int

	Scale    int
	Rate     int
	Seed     int64
	HUDWidth int
	Paused   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "cascade",
		Occupied: "@",
		Empty:    ".",
		Width:    128,
		Height:   128,
		Density:  0.7,
		Workers:  1,
		Scale:    4,
		Rate:     8,
		Seed:     42,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Input, "input", c.Input, "grid file to replay instead of a random field")
	fs.StringVar(&c.Occupied, "occupied", c.Occupied, "symbol marking an occupied cell in -input")
	fs.StringVar(&c.Empty, "empty", c.Empty, "symbol marking an empty cell in -input")
	fs.IntVar(&c.Width, "w", c.Width, "random field width")
	fs.IntVar(&c.Height, "h", c.Height, "random field height")
	fs.Float64Var(&c.Density, "density", c.Density, "random field density")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to evaluate each pass")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Rate, "rate", c.Rate, "passes per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

// SimOptions renders the field settings as the key/value map sim factories
// accept.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"workers": strconv.Itoa(c.Workers),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
}

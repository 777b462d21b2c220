package cascade

import (
	"context"
	"math"
	"strconv"

	"forklift-ca/internal/core"
)

// Display buffer values produced by Sim.Cells.
const (
	DisplayEmpty uint8 = iota
	DisplayOccupied
	DisplayRemoved
)

// Sim adapts the cascade to the core.Sim contract so the viewer can play it
// back one pass per tick.
type Sim struct {
	cfg    Config
	base   *core.Grid
	loaded bool

	engine     *Engine
	accessible int
	display    []uint8
}

// New returns a Sim that generates random fields from cfg.
func New(cfg Config) *Sim {
	s := &Sim{cfg: cfg}
	s.Reset(0)
	return s
}

// NewFromGrid returns a Sim that replays the cascade of g. Reset restores g
// rather than generating a new field.
func NewFromGrid(g *core.Grid, cfg Config) *Sim {
	cfg.Width, cfg.Height = g.Cols, g.Rows
	s := &Sim{cfg: cfg, base: g.Clone(), loaded: true}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "cascade" }

// Size reports the field dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the display buffer.
func (s *Sim) Cells() []uint8 { return s.display }

// Engine exposes the running engine.
func (s *Sim) Engine() *Engine { return s.engine }

// Accessible returns the single-pass count of the field at the last Reset.
func (s *Sim) Accessible() int { return s.accessible }

// Done reports whether the cascade has reached its fixed point.
func (s *Sim) Done() bool { return s.engine.State() == Terminated }

// Reset rebuilds the starting field and restarts the cascade. A zero seed
// falls back to the configured seed. Loaded fields ignore the seed.
func (s *Sim) Reset(seed int64) {
	if !s.loaded {
		effective := seed
		if effective == 0 {
			effective = s.cfg.Seed
		}
		if s.base == nil || s.base.Rows != s.cfg.Height || s.base.Cols != s.cfg.Width {
			s.base = core.NewGrid(s.cfg.Height, s.cfg.Width)
		}
		core.NewRNG(effective).FillDensity(s.base, s.cfg.Density)
	}
	s.engine = NewEngine(s.base, WithWorkers(s.cfg.Workers))
	s.accessible = CountAccessible(s.base)
	if len(s.display) != len(s.base.Cells()) {
		s.display = make([]uint8, len(s.base.Cells()))
	}
	s.refreshDisplay(nil)
}

// Step advances the cascade by one pass.
func (s *Sim) Step() {
	if s.Done() {
		s.refreshDisplay(nil)
		return
	}
	// Step only fails on context cancellation, which Background never signals.
	batch, err := s.engine.Step(context.Background())
	if err != nil {
		return
	}
	s.refreshDisplay(batch)
}

// AccessibleMask marks the cells the next pass would remove.
func (s *Sim) AccessibleMask() []bool {
	g := s.engine.Grid()
	mask := make([]bool, len(g.Cells()))
	for _, p := range Evaluate(g) {
		mask[g.Index(p.Row, p.Col)] = true
	}
	return mask
}

func (s *Sim) refreshDisplay(removed Batch) {
	g := s.engine.Grid()
	for i, c := range g.Cells() {
		if c == core.Occupied {
			s.display[i] = DisplayOccupied
			continue
		}
		s.display[i] = DisplayEmpty
	}
	for _, p := range removed {
		s.display[g.Index(p.Row, p.Col)] = DisplayRemoved
	}
}

// Parameters reports the field settings and the progress of the cascade.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				floatParam("density", "Density", s.cfg.Density),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Cascade",
			Params: []core.Parameter{
				intParam("accessible", "First pass", s.accessible),
				intParam("passes", "Passes", s.engine.Passes()),
				intParam("removed", "Removed", s.engine.Removed()),
				intParam("remaining", "Remaining", s.engine.Grid().Occupied()),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable settings. Loaded fields have
// fixed dimensions and density so nothing is adjustable.
func (s *Sim) ParameterControls() []core.ParameterControl {
	if s.loaded {
		return nil
	}
	return []core.ParameterControl{
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: 16, Min: 16, Max: 1024, HasMin: true, HasMax: true},
		{Key: "h", Label: "Height", Type: core.ParamTypeInt, Step: 16, Min: 16, Max: 1024, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates the density and regenerates the field.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if s.loaded || key != "density" || math.IsNaN(value) {
		return false
	}
	s.cfg.Density = math.Max(0, math.Min(1, value))
	s.Reset(0)
	return true
}

// SetIntParameter resizes a generated field.
func (s *Sim) SetIntParameter(key string, value int) bool {
	if s.loaded || value <= 0 {
		return false
	}
	switch key {
	case "w":
		s.cfg.Width = value
	case "h":
		s.cfg.Height = value
	default:
		return false
	}
	s.Reset(0)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func init() {
	core.Register("cascade", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}

//go:build ebiten

package app

import (
	"fmt"
	"time"

	"forklift-ca/internal/core"
	"forklift-ca/internal/render"
	"forklift-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type doneReporter interface {
	Done() bool
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	stepper *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	ticks    int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, render.CascadePalette()),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		stepper: core.NewFixedStep(cfg.Rate),
		scale:   cfg.Scale,
		paused:  cfg.Paused,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.ticks = 0
	g.resize()
}

func (g *Game) resize() {
	size := g.sim.Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H, render.CascadePalette())
		ebiten.SetWindowSize(size.W*g.scale+g.hud.Width(), size.H*g.scale)
	}
}

func (g *Game) done() bool {
	d, ok := g.sim.(doneReporter)
	return ok && d.Done()
}

func (g *Game) status() string {
	switch {
	case g.done():
		return fmt.Sprintf("fixed point after %d ticks", g.ticks)
	case g.paused:
		return "paused"
	default:
		return fmt.Sprintf("%d passes/s", g.stepper.Rate())
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.stepper.SetRate(g.stepper.Rate() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.stepper.Rate() > 1 {
		g.stepper.SetRate(g.stepper.Rate() / 2)
	}

	if g.hud.Update(g.sim.Size().W*g.scale, g.status()) {
		g.ticks = 0
		g.resize()
	}
	g.overlay.Update()

	if g.tickOnce || (!g.paused && !g.done() && g.stepper.ShouldStep()) {
		g.sim.Step()
		g.ticks++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

//go:build ebiten

package ui

import (
	"image/color"

	"forklift-ca/internal/core"
	"forklift-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type accessibleMaskProvider interface {
	AccessibleMask() []bool
}

// Overlay highlights the cells the next pass would remove. Key 1 toggles it.
type Overlay struct {
	sim     core.Sim
	scale   int
	show    bool
	painter *render.GridPainter
	tint    color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{
		sim:     sim,
		scale:   scale,
		painter: render.NewGridPainter(size.W, size.H, nil),
		tint:    color.RGBA{R: 64, G: 160, B: 230, A: 160},
	}
}

// Update handles the toggle key and follows resizes of the simulation.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
	size := o.sim.Size()
	if w, h := o.painter.Size(); w != size.W || h != size.H {
		o.painter = render.NewGridPainter(size.W, size.H, nil)
	}
}

// Draw tints accessible cells when enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(accessibleMaskProvider)
	if !ok {
		return
	}
	o.painter.BlitMask(screen, provider.AccessibleMask(), o.tint, o.scale)
}

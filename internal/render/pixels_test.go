package render

import (
	"image/color"
	"slices"
	"testing"

	"forklift-ca/internal/sims/cascade"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := CascadePalette()
	cells := []uint8{cascade.DisplayEmpty, cascade.DisplayOccupied, cascade.DisplayRemoved, 9}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	for i, c := range cells {
		want := palette[min(int(c), len(palette)-1)]
		got := color.RGBA{R: buf[4*i], G: buf[4*i+1], B: buf[4*i+2], A: buf[4*i+3]}
		if got != want {
			t.Fatalf("cell %d: got %v want %v", i, got, want)
		}
	}

	fillPaletteRGBA(buf, cells, nil)
	if !slices.Equal(buf, make([]byte, len(buf))) {
		t.Fatal("empty palette should clear the buffer")
	}
}

func TestFillMaskRGBA(t *testing.T) {
	tint := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = 0xff
	}
	fillMaskRGBA(buf, []bool{true, false}, tint)
	if !slices.Equal(buf, []byte{1, 2, 3, 4, 0, 0, 0, 0}) {
		t.Fatalf("unexpected buffer %v", buf)
	}
}

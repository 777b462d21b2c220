package cascade

import (
	"slices"
	"strconv"
	"testing"

	"forklift-ca/internal/core"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 16
	cfg.Seed = 99
	return cfg
}

func TestSimResetDeterministic(t *testing.T) {
	sim := New(smallConfig())
	initial := append([]uint8(nil), sim.Cells()...)

	sim.Step()
	sim.Reset(0)
	if !slices.Equal(initial, sim.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	sim.Reset(777)
	seeded := append([]uint8(nil), sim.Cells()...)
	sim.Reset(777)
	if !slices.Equal(seeded, sim.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different fields")
	}
}

func TestSimStepsToFixedPoint(t *testing.T) {
	sim := New(smallConfig())
	start := sim.Engine().Grid().Clone()
	want := TotalRemoved(start)

	for i := 0; i < start.Rows*start.Cols && !sim.Done(); i++ {
		sim.Step()
	}
	if !sim.Done() {
		t.Fatal("cascade did not terminate")
	}
	if got := sim.Engine().Removed(); got != want {
		t.Fatalf("sim removed %d, want %d", got, want)
	}
	if sim.Accessible() != CountAccessible(start) {
		t.Fatalf("first pass count %d, want %d", sim.Accessible(), CountAccessible(start))
	}
	for _, v := range sim.Cells() {
		if v == DisplayRemoved {
			t.Fatal("terminated sim should not show removals")
		}
	}
}

func TestSimDisplayMarksRemovedCells(t *testing.T) {
	g := mustGrid(t, ".....", ".@@@.", ".@@@.", ".@@@.", ".....")
	sim := NewFromGrid(g, DefaultConfig())
	if sim.Size() != (core.Size{W: 5, H: 5}) {
		t.Fatalf("unexpected size %+v", sim.Size())
	}

	sim.Step()
	cells := sim.Cells()
	for _, idx := range []int{6, 8, 16, 18} {
		if cells[idx] != DisplayRemoved {
			t.Fatalf("corner %d = %d, want removed", idx, cells[idx])
		}
	}
	if cells[12] != DisplayOccupied {
		t.Fatalf("centre = %d, want occupied", cells[12])
	}

	mask := sim.AccessibleMask()
	for _, idx := range []int{7, 11, 13, 17} {
		if !mask[idx] {
			t.Fatalf("edge %d should be accessible after the corners go", idx)
		}
	}
	if mask[12] {
		t.Fatal("centre still has 4 neighbours")
	}

	sim.Reset(5)
	if got := sim.Engine().Grid().Occupied(); got != 9 {
		t.Fatalf("Reset should restore the loaded field, got %d occupied", got)
	}
	if sim.ParameterControls() != nil {
		t.Fatal("loaded fields expose no controls")
	}
	if sim.SetFloatParameter("density", 0.1) {
		t.Fatal("loaded fields must reject density changes")
	}
}

func TestSimParameters(t *testing.T) {
	sim := New(smallConfig())
	if !sim.SetFloatParameter("density", 2) {
		t.Fatal("expected density to be adjustable")
	}
	p, ok := sim.Parameters().Lookup("density")
	if !ok || p.Value != "1" {
		t.Fatalf("density should clamp to 1, got %+v", p)
	}
	// A full field only loses its four corners.
	sim.Step()
	removed, _ := sim.Parameters().Lookup("removed")
	if removed.Value != "4" {
		t.Fatalf("removed = %s, want 4", removed.Value)
	}

	if !sim.SetIntParameter("w", 32) {
		t.Fatal("expected width to be adjustable")
	}
	if sim.Size().W != 32 || len(sim.Cells()) != 32*16 {
		t.Fatalf("resize not applied: %+v, %d cells", sim.Size(), len(sim.Cells()))
	}
	if sim.SetIntParameter("seed", 3) {
		t.Fatal("seed is not an int control")
	}
	remaining, _ := sim.Parameters().Lookup("remaining")
	if remaining.Value != strconv.Itoa(32*16) {
		t.Fatalf("remaining = %s", remaining.Value)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "40", "h": "-3", "density": "0.25", "workers": "4", "seed": "x"})
	if c.Width != 40 || c.Height != DefaultConfig().Height {
		t.Fatalf("unexpected dims %dx%d", c.Width, c.Height)
	}
	if c.Density != 0.25 || c.Workers != 4 || c.Seed != DefaultConfig().Seed {
		t.Fatalf("unexpected config %+v", c)
	}
	if FromMap(map[string]string{"density": "1.5"}).Density != DefaultConfig().Density {
		t.Fatal("out of range density should be ignored")
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Lookup("cascade")
	if !ok {
		t.Fatal("cascade sim not registered")
	}
	sim := factory(map[string]string{"w": "8", "h": "6"})
	if sim.Name() != "cascade" || sim.Size() != (core.Size{W: 8, H: 6}) {
		t.Fatalf("unexpected sim %s %+v", sim.Name(), sim.Size())
	}
}

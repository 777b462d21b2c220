package cascade

import (
	"testing"

	"forklift-ca/internal/core"
)

func mustGrid(t *testing.T, lines ...string) *core.Grid {
	t.Helper()
	g, err := core.ParseGrid(lines, core.DefaultMarkers())
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

func TestCountOccupiedNeighbors(t *testing.T) {
	g := mustGrid(t,
		"@@@",
		"@@@",
		"@@@",
	)
	tests := []struct {
		row, col int
		want     int
	}{
		{0, 0, 3},
		{0, 1, 5},
		{1, 1, 8},
		{2, 2, 3},
		{1, 2, 5},
		// Off-grid positions still count their in-bounds neighbours.
		{-1, -1, 1},
		{3, 1, 3},
	}
	for _, tc := range tests {
		if got := CountOccupiedNeighbors(g, tc.row, tc.col); got != tc.want {
			t.Fatalf("CountOccupiedNeighbors(%d,%d) = %d, want %d", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestCountOccupiedNeighborsIgnoresSelf(t *testing.T) {
	g := mustGrid(t, "@")
	if got := CountOccupiedNeighbors(g, 0, 0); got != 0 {
		t.Fatalf("single cell has %d neighbours, want 0", got)
	}
}

func TestIsAccessible(t *testing.T) {
	g := mustGrid(t,
		".@@.",
		"@@@@",
		".@@.",
	)
	// (1,1) has 6 occupied neighbours, (0,1) has 4, (1,0) has 3.
	if IsAccessible(g, 1, 1) {
		t.Fatal("(1,1) has 6 neighbours and must not be accessible")
	}
	if IsAccessible(g, 0, 1) {
		t.Fatal("(0,1) sits exactly at the threshold and must not be accessible")
	}
	if !IsAccessible(g, 1, 0) {
		t.Fatal("(1,0) has 3 neighbours and should be accessible")
	}
	if IsAccessible(g, 0, 0) {
		t.Fatal("empty cells are never accessible")
	}
	if IsAccessible(g, -1, 0) {
		t.Fatal("off-grid positions are never accessible")
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	g := mustGrid(t, "@@@@@")
	before := g.Clone()
	_ = Evaluate(g)
	if g.String() != before.String() {
		t.Fatal("Evaluate mutated the grid")
	}
}

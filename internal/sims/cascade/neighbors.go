package cascade

import "forklift-ca/internal/core"

// Threshold is the occupied-neighbour count at which a cell stops being
// accessible.
const Threshold = 4

// offsets lists the Moore neighbourhood as (dRow, dCol) pairs.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CountOccupiedNeighbors returns how many of the up-to-8 in-bounds neighbours
// of (row, col) are occupied. Off-grid neighbours never count.
func CountOccupiedNeighbors(g *core.Grid, row, col int) int {
	n := 0
	for _, d := range offsets {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= g.Rows || c < 0 || c >= g.Cols {
			continue
		}
		if g.Get(r, c) == core.Occupied {
			n++
		}
	}
	return n
}

// IsAccessible reports whether (row, col) is occupied and has fewer than
// Threshold occupied neighbours.
func IsAccessible(g *core.Grid, row, col int) bool {
	if g.Get(row, col) != core.Occupied {
		return false
	}
	return CountOccupiedNeighbors(g, row, col) < Threshold
}

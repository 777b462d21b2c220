package core

import (
	"fmt"
	"strings"
)

// Cell is the two-state value stored in a Grid.
type Cell uint8

const (
	Empty Cell = iota
	Occupied
)

// Position addresses a single cell by row and column.
type Position struct {
	Row, Col int
}

// Grid stores a fixed-size field of cells in row-major order. Dimensions never
// change after construction; only cell states do.
type Grid struct {
	Rows, Cols int
	data       []Cell
}

// NewGrid allocates an all-empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]Cell, rows*cols)}
}

// ParseGrid builds a grid from equal-length lines drawn from the two markers.
// It reports a *MalformedInputError for ragged rows, unknown symbols or an
// empty line set.
func ParseGrid(lines []string, m Markers) (*Grid, error) {
	if len(lines) == 0 {
		return nil, &MalformedInputError{Reason: "no rows"}
	}
	first := []rune(lines[0])
	if len(first) == 0 {
		return nil, &MalformedInputError{Line: 1, Reason: "empty row"}
	}
	g := NewGrid(len(lines), len(first))
	for r, line := range lines {
		row := []rune(line)
		if len(row) != g.Cols {
			return nil, &MalformedInputError{
				Line:   r + 1,
				Reason: fmt.Sprintf("row length %d differs from %d", len(row), g.Cols),
			}
		}
		for c, ch := range row {
			switch ch {
			case m.Occupied:
				g.data[r*g.Cols+c] = Occupied
			case m.Empty:
			default:
				return nil, &MalformedInputError{
					Line:   r + 1,
					Col:    c + 1,
					Reason: fmt.Sprintf("unrecognized symbol %q", ch),
				}
			}
		}
	}
	return g, nil
}

// Cells exposes the backing slice so callers can scan values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Get returns the cell at (row, col). Off-grid lookups read as Empty.
func (g *Grid) Get(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.data[row*g.Cols+col]
}

// Set stores a cell value. Off-grid writes are ignored.
func (g *Grid) Set(row, col int, v Cell) {
	if !g.InBounds(row, col) {
		return
	}
	g.data[row*g.Cols+col] = v
}

// Clone returns a deep copy that shares no storage with g.
func (g *Grid) Clone() *Grid {
	data := make([]Cell, len(g.data))
	copy(data, g.data)
	return &Grid{Rows: g.Rows, Cols: g.Cols, data: data}
}

// Occupied counts the occupied cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, c := range g.data {
		if c == Occupied {
			n++
		}
	}
	return n
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Empty
	}
}

// Format renders the grid back into lines using the provided markers.
func (g *Grid) Format(m Markers) string {
	var b strings.Builder
	b.Grow((g.Cols + 1) * g.Rows)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.data[r*g.Cols+c] == Occupied {
				b.WriteRune(m.Occupied)
			} else {
				b.WriteRune(m.Empty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the grid with the default markers.
func (g *Grid) String() string { return g.Format(DefaultMarkers()) }

package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid([]string{".@.", "@@@"}, DefaultMarkers())
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 3, g.Cols)
	want := []Cell{Empty, Occupied, Empty, Occupied, Occupied, Occupied}
	if diff := cmp.Diff(want, g.Cells()); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, g.Occupied())
}

func TestParseGridCustomMarkers(t *testing.T) {
	g, err := ParseGrid([]string{"#_", "_#"}, Markers{Occupied: '#', Empty: '_'})
	require.NoError(t, err)
	assert.Equal(t, Occupied, g.Get(0, 0))
	assert.Equal(t, Empty, g.Get(0, 1))
	assert.Equal(t, "#_\n_#\n", g.Format(Markers{Occupied: '#', Empty: '_'}))
}

func TestParseGridMalformed(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  MalformedInputError
	}{
		{name: "no rows", lines: nil, want: MalformedInputError{Reason: "no rows"}},
		{name: "empty row", lines: []string{""}, want: MalformedInputError{Line: 1, Reason: "empty row"}},
		{
			name:  "ragged",
			lines: []string{"@@@", "@@"},
			want:  MalformedInputError{Line: 2, Reason: "row length 2 differs from 3"},
		},
		{
			name:  "unknown symbol",
			lines: []string{"@.@", "@x@"},
			want:  MalformedInputError{Line: 2, Col: 2, Reason: `unrecognized symbol 'x'`},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseGrid(tc.lines, DefaultMarkers())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedInput))
			var mie *MalformedInputError
			require.True(t, errors.As(err, &mie))
			assert.Equal(t, tc.want, *mie)
		})
	}
}

func TestMalformedInputErrorMessage(t *testing.T) {
	assert.Equal(t, "malformed input: no rows", (&MalformedInputError{Reason: "no rows"}).Error())
	assert.Equal(t, "malformed input at line 3: bad", (&MalformedInputError{Line: 3, Reason: "bad"}).Error())
	assert.Equal(t, "malformed input at line 3 col 4: bad", (&MalformedInputError{Line: 3, Col: 4, Reason: "bad"}).Error())
}

func TestGetOffGridReadsEmpty(t *testing.T) {
	g := NewGrid(2, 2)
	for i := range g.Cells() {
		g.Cells()[i] = Occupied
	}
	for _, p := range []Position{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-1, -1}, {2, 2}} {
		if got := g.Get(p.Row, p.Col); got != Empty {
			t.Fatalf("Get(%d,%d) = %v, want Empty", p.Row, p.Col, got)
		}
	}
	g.Set(5, 5, Empty)
	if g.Occupied() != 4 {
		t.Fatalf("off-grid Set mutated the grid")
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	g, err := ParseGrid([]string{"@@", "@@"}, DefaultMarkers())
	require.NoError(t, err)
	c := g.Clone()
	c.Set(0, 0, Empty)
	assert.Equal(t, Occupied, g.Get(0, 0))
	assert.Equal(t, Empty, c.Get(0, 0))
	assert.Equal(t, g.Rows, c.Rows)
	assert.Equal(t, g.Cols, c.Cols)
}

func TestFormatRoundTrip(t *testing.T) {
	lines := []string{"..@@.", "@.@.@", "@@@@@"}
	g, err := ParseGrid(lines, DefaultMarkers())
	require.NoError(t, err)
	assert.Equal(t, "..@@.\n@.@.@\n@@@@@\n", g.String())
}

func TestMarkersValidate(t *testing.T) {
	assert.NoError(t, DefaultMarkers().Validate())
	assert.Error(t, Markers{Occupied: '@', Empty: '@'}.Validate())
	assert.Error(t, Markers{Occupied: '@'}.Validate())
}

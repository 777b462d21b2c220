package core

import "fmt"

// Markers names the two symbols used to spell a grid in text form.
type Markers struct {
	Occupied rune
	Empty    rune
}

// DefaultMarkers returns '@' for occupied and '.' for empty.
func DefaultMarkers() Markers {
	return Markers{Occupied: '@', Empty: '.'}
}

// Validate rejects marker pairs that cannot be told apart.
func (m Markers) Validate() error {
	if m.Occupied == m.Empty {
		return fmt.Errorf("occupied and empty markers must differ, both are %q", m.Occupied)
	}
	if m.Occupied == '\n' || m.Empty == '\n' || m.Occupied == 0 || m.Empty == 0 {
		return fmt.Errorf("markers must be printable, got %q and %q", m.Occupied, m.Empty)
	}
	return nil
}

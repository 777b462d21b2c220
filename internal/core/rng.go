package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillDensity marks each cell occupied with probability density. Values
// outside [0, 1] are clamped.
func (r *RNG) FillDensity(g *Grid, density float64) {
	switch {
	case density <= 0:
		g.Clear()
		return
	case density > 1:
		density = 1
	}
	cells := g.Cells()
	for i := range cells {
		if r.r.Float64() < density {
			cells[i] = Occupied
			continue
		}
		cells[i] = Empty
	}
}

// Shuffle permutes positions in place.
func (r *RNG) Shuffle(ps []Position) {
	r.r.Shuffle(len(ps), func(i, j int) { ps[i], ps[j] = ps[j], ps[i] })
}

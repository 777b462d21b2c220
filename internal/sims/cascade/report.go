package cascade

import (
	"context"

	"forklift-ca/internal/core"
)

// Report carries both answers for one grid along with the shape of the
// cascade that produced the second.
type Report struct {
	Rows       int   `json:"rows" yaml:"rows"`
	Cols       int   `json:"cols" yaml:"cols"`
	Occupied   int   `json:"occupied" yaml:"occupied"`
	Accessible int   `json:"accessible" yaml:"accessible"`
	Removed    int   `json:"removed" yaml:"removed"`
	Remaining  int   `json:"remaining" yaml:"remaining"`
	Passes     int   `json:"passes" yaml:"passes"`
	PassSizes  []int `json:"pass_sizes" yaml:"pass_sizes"`
}

// CountAccessible counts the cells removable in a single pass over g without
// modifying it.
func CountAccessible(g *core.Grid) int {
	n := 0
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if IsAccessible(g, r, c) {
				n++
			}
		}
	}
	return n
}

// TotalRemoved runs the cascade sequentially and returns how many cells it
// removed in total.
func TotalRemoved(g *core.Grid) int {
	// Run only fails on context cancellation, which Background never signals.
	res, _ := NewEngine(g).Run(context.Background())
	return res.Removed
}

// Analyze computes both counts for g. g is left untouched.
func Analyze(ctx context.Context, g *core.Grid, opts ...Option) (Report, error) {
	rep := Report{
		Rows:       g.Rows,
		Cols:       g.Cols,
		Occupied:   g.Occupied(),
		Accessible: CountAccessible(g),
	}
	res, err := NewEngine(g, opts...).Run(ctx)
	if err != nil {
		return rep, err
	}
	rep.Removed = res.Removed
	rep.Remaining = rep.Occupied - res.Removed
	rep.Passes = res.Passes
	rep.PassSizes = res.PassSizes
	return rep, nil
}

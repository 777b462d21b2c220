package cascade

import (
	"context"

	"forklift-ca/internal/core"

	"golang.org/x/sync/errgroup"
)

// Batch is the set of positions removed together in one pass, in row-major
// order.
type Batch []core.Position

// Evaluate scans g and collects every accessible position. g is not modified.
func Evaluate(g *core.Grid) Batch {
	return scanRows(g, 0, g.Rows, nil)
}

// EvaluateParallel splits the rows of g into contiguous bands and scans them
// concurrently. The result is identical to Evaluate. g must not be mutated
// until EvaluateParallel returns.
func EvaluateParallel(ctx context.Context, g *core.Grid, workers int) (Batch, error) {
	bands := divideRows(g.Rows, workers)
	if len(bands) <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Evaluate(g), nil
	}

	parts := make([]Batch, len(bands))
	eg, ctx := errgroup.WithContext(ctx)
	for i, b := range bands {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[i] = scanRows(g, b.start, b.end, nil)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make(Batch, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

// Apply empties every position of the batch.
func Apply(g *core.Grid, b Batch) {
	for _, p := range b {
		g.Set(p.Row, p.Col, core.Empty)
	}
}

func scanRows(g *core.Grid, start, end int, out Batch) Batch {
	for r := start; r < end; r++ {
		for c := 0; c < g.Cols; c++ {
			if IsAccessible(g, r, c) {
				out = append(out, core.Position{Row: r, Col: c})
			}
		}
	}
	return out
}

type rowBand struct {
	start, end int
}

// divideRows splits [0, rows) into at most workers contiguous bands whose
// sizes differ by at most one.
func divideRows(rows, workers int) []rowBand {
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		return []rowBand{{0, rows}}
	}
	bands := make([]rowBand, 0, workers)
	size, extra := rows/workers, rows%workers
	start := 0
	for i := 0; i < workers; i++ {
		end := start + size
		if i < extra {
			end++
		}
		bands = append(bands, rowBand{start, end})
		start = end
	}
	return bands
}

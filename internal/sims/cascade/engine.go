package cascade

import (
	"context"
	"fmt"
	"io"

	"forklift-ca/internal/core"

	"github.com/sirupsen/logrus"
)

// State is the lifecycle stage of an Engine.
type State int

const (
	Scanning State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type options struct {
	workers int
	log     logrus.FieldLogger
}

// Option configures an Engine.
type Option func(*options)

// WithWorkers parallelises the evaluation phase of each pass across n row
// bands. Values below 2 keep evaluation sequential.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger attaches a logger that receives one debug entry per pass.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func buildOptions(opts []Option) options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	o := options{workers: 1, log: discard}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result summarises a run to the fixed point.
type Result struct {
	Removed   int
	Passes    int
	PassSizes []int
}

// Engine runs the cascading removal over a private working copy of a grid.
type Engine struct {
	work    *core.Grid
	state   State
	removed int
	sizes   []int
	opts    options
}

// NewEngine clones g into a working grid. g itself is never modified.
func NewEngine(g *core.Grid, opts ...Option) *Engine {
	return &Engine{
		work:  g.Clone(),
		state: Scanning,
		opts:  buildOptions(opts),
	}
}

// Grid exposes the working grid. Callers must not mutate it.
func (e *Engine) Grid() *core.Grid { return e.work }

// State reports whether the engine is still scanning.
func (e *Engine) State() State { return e.state }

// Removed returns the running total of removed cells.
func (e *Engine) Removed() int { return e.removed }

// Passes returns the number of passes that removed at least one cell.
func (e *Engine) Passes() int { return len(e.sizes) }

// Step runs one pass: every accessible position is collected against the
// current working grid, then all of them are emptied at once. An empty batch
// moves the engine to Terminated; stepping a terminated engine is a no-op.
func (e *Engine) Step(ctx context.Context) (Batch, error) {
	if e.state == Terminated {
		return nil, nil
	}

	var batch Batch
	if e.opts.workers > 1 {
		var err error
		batch, err = EvaluateParallel(ctx, e.work, e.opts.workers)
		if err != nil {
			return nil, fmt.Errorf("evaluate pass %d: %w", len(e.sizes)+1, err)
		}
	} else {
		batch = Evaluate(e.work)
	}

	if len(batch) == 0 {
		e.state = Terminated
		e.opts.log.WithFields(logrus.Fields{
			"passes": len(e.sizes),
			"total":  e.removed,
		}).Debug("cascade reached fixed point")
		return nil, nil
	}

	Apply(e.work, batch)
	e.removed += len(batch)
	e.sizes = append(e.sizes, len(batch))
	e.opts.log.WithFields(logrus.Fields{
		"pass":    len(e.sizes),
		"removed": len(batch),
		"total":   e.removed,
	}).Debug("cascade pass")
	return batch, nil
}

// Run steps until the fixed point. Cancellation is observed between passes.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	for e.state == Scanning {
		if err := ctx.Err(); err != nil {
			return e.result(), err
		}
		if _, err := e.Step(ctx); err != nil {
			return e.result(), err
		}
	}
	return e.result(), nil
}

func (e *Engine) result() Result {
	sizes := make([]int, len(e.sizes))
	copy(sizes, e.sizes)
	return Result{Removed: e.removed, Passes: len(e.sizes), PassSizes: sizes}
}

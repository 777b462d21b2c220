// Command sweep runs the cascade over many random floors and summarises how
// the single-pass and cascading counts scale with roll density.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"forklift-ca/internal/core"
	"forklift-ca/internal/logging"
	"forklift-ca/internal/sims/cascade"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
)

type scenario struct {
	density float64
	trial   int
	seed    int64
}

type scenarioResult struct {
	scenario
	occupied   int
	accessible int
	removed    int
	passes     int
	err        error
}

type densitySummary struct {
	density        float64
	trials         int
	meanOccupied   float64
	meanAccessible float64
	meanRemoved    float64
	meanPasses     float64
	maxPasses      int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.Int("width", 128, "floor width")
	height := fs.Int("height", 128, "floor height")
	trials := fs.Int("trials", 8, "random floors per density")
	seed := fs.Int64("seed", 1337, "base seed")
	densities := fs.String("densities", "0.3,0.4,0.5,0.6,0.7,0.8,0.9", "comma-separated roll densities")
	workers := fs.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	profileMode := fs.String("profile", "", "write a cpu or mem profile to the working directory")
	logLevel := fs.String("log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	log, err := logging.New(*logLevel, "text", stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	levels, err := parseDensities(*densities)
	if err != nil {
		log.Error(err)
		return 2
	}
	if *width <= 0 || *height <= 0 || *trials <= 0 || *workers <= 0 {
		log.Error("width, height, trials and workers must be positive")
		return 2
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		log.Errorf("unknown profile mode %q", *profileMode)
		return 2
	}

	var sets []scenario
	for i, d := range levels {
		for trial := 0; trial < *trials; trial++ {
			sets = append(sets, scenario{density: d, trial: trial, seed: *seed + int64(i*10007+trial)})
		}
	}

	entry := log.WithField("sweep", uuid.NewString())
	entry.WithFields(logrus.Fields{
		"scenarios": len(sets),
		"workers":   *workers,
		"size":      fmt.Sprintf("%dx%d", *width, *height),
	}).Info("starting sweep")

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(ctx, sc, *width, *height)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, sc := range sets {
			select {
			case jobs <- sc:
			case <-ctx.Done():
				return
			}
		}
	}()

	start := time.Now()
	var all []scenarioResult
	failed := 0
	for res := range results {
		if res.err != nil {
			failed++
			entry.WithError(res.err).WithField("density", res.density).Warn("scenario aborted")
			continue
		}
		all = append(all, res)
	}
	elapsed := time.Since(start)

	summaries := summarise(all)
	fmt.Fprintf(stdout, "%-8s %6s %10s %10s %10s %8s %6s\n", "density", "trials", "occupied", "first", "removed", "passes", "max")
	for _, s := range summaries {
		fmt.Fprintf(stdout, "%-8.2f %6d %10.1f %10.1f %10.1f %8.2f %6d\n",
			s.density, s.trials, s.meanOccupied, s.meanAccessible, s.meanRemoved, s.meanPasses, s.maxPasses)
	}

	entry.WithFields(logrus.Fields{
		"completed": len(all),
		"failed":    failed,
		"elapsed":   elapsed.Round(time.Millisecond).String(),
	}).Info("sweep finished")
	if failed > 0 || ctx.Err() != nil {
		return 1
	}
	return 0
}

func runScenario(ctx context.Context, sc scenario, width, height int) scenarioResult {
	g := core.NewGrid(height, width)
	core.NewRNG(sc.seed).FillDensity(g, sc.density)
	rep, err := cascade.Analyze(ctx, g)
	return scenarioResult{
		scenario:   sc,
		occupied:   rep.Occupied,
		accessible: rep.Accessible,
		removed:    rep.Removed,
		passes:     rep.Passes,
		err:        err,
	}
}

func summarise(results []scenarioResult) []densitySummary {
	byDensity := map[float64]*densitySummary{}
	for _, r := range results {
		s, ok := byDensity[r.density]
		if !ok {
			s = &densitySummary{density: r.density}
			byDensity[r.density] = s
		}
		s.trials++
		s.meanOccupied += float64(r.occupied)
		s.meanAccessible += float64(r.accessible)
		s.meanRemoved += float64(r.removed)
		s.meanPasses += float64(r.passes)
		if r.passes > s.maxPasses {
			s.maxPasses = r.passes
		}
	}
	out := make([]densitySummary, 0, len(byDensity))
	for _, s := range byDensity {
		n := float64(s.trials)
		s.meanOccupied /= n
		s.meanAccessible /= n
		s.meanRemoved /= n
		s.meanPasses /= n
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].density < out[j].density })
	return out
}

func parseDensities(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("density %q: %w", part, err)
		}
		if d < 0 || d > 1 {
			return nil, fmt.Errorf("density %v outside [0, 1]", d)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no densities given")
	}
	return out, nil
}

// Command forklift reads a warehouse floor plan and prints how many paper
// rolls a forklift can reach right away, followed by how many it can remove
// in total once every freed roll is taken as well.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"forklift-ca/internal/config"
	"forklift-ca/internal/core"
	"forklift-ca/internal/input"
	"forklift-ca/internal/logging"
	"forklift-ca/internal/sims/cascade"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type output struct {
	RunID          string `json:"run_id" yaml:"run_id"`
	Input          string `json:"input" yaml:"input"`
	cascade.Report `yaml:",inline"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("forklift", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg, err := config.Parse(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	runID := uuid.NewString()
	entry := logger.WithField("run", runID)

	markers, _ := cfg.MarkerSet()
	grid, err := readGrid(cfg.Input, stdin, markers)
	if err != nil {
		var mie *core.MalformedInputError
		if errors.As(err, &mie) {
			entry.WithFields(logrus.Fields{"line": mie.Line, "col": mie.Col}).Error(err)
		} else {
			entry.Error(err)
		}
		return 1
	}
	entry.WithFields(logrus.Fields{
		"rows":     grid.Rows,
		"cols":     grid.Cols,
		"occupied": grid.Occupied(),
	}).Info("grid loaded")

	rep, err := cascade.Analyze(ctx, grid, cascade.WithWorkers(cfg.Workers), cascade.WithLogger(entry))
	if err != nil {
		entry.WithError(err).Error("cascade aborted")
		return 1
	}
	entry.WithFields(logrus.Fields{
		"accessible": rep.Accessible,
		"removed":    rep.Removed,
		"passes":     rep.Passes,
	}).Info("cascade finished")

	if err := writeReport(stdout, cfg.Format, output{RunID: runID, Input: cfg.Input, Report: rep}); err != nil {
		entry.WithError(err).Error("write report")
		return 1
	}
	return 0
}

func readGrid(path string, stdin io.Reader, m core.Markers) (*core.Grid, error) {
	if path == "" || path == "-" {
		return input.ReadGrid(stdin, m)
	}
	return input.ReadFile(path, m)
}

func writeReport(w io.Writer, format string, out output) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintf(w, "%d\n%d\n", out.Accessible, out.Removed)
		return err
	}
}

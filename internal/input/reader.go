// Package input reads grids from line-oriented text.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"forklift-ca/internal/core"
)

// ReadLines collects grid rows from r. Leading empty lines are skipped; the
// first empty line after a row, or EOF, ends the grid. Trailing carriage
// returns are stripped. A line of spaces is a row, since a space may be a
// marker.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var lines []string
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			if len(lines) > 0 {
				break
			}
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	return lines, nil
}

// ReadGrid reads and validates a grid from r.
func ReadGrid(r io.Reader, m core.Markers) (*core.Grid, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return core.ParseGrid(lines, m)
}

// ReadFile reads a grid from path; "-" or "" reads stdin.
func ReadFile(path string, m core.Markers) (*core.Grid, error) {
	if path == "" || path == "-" {
		return ReadGrid(os.Stdin, m)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grid: %w", err)
	}
	defer f.Close()
	g, err := ReadGrid(f, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

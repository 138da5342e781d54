// Package mapfile parses the CLI's ASCII map grammar: a rectangle of
// printable characters where '#' is opaque, '@' marks an origin, and any
// other printable character (the default is '.') is transparent. Trailing
// blank lines are stripped and the map width is the widest non-empty line.
// Lines are scanned one by one like the teacher's TFW sidecar parser, but
// are neither trimmed nor validated: only an empty map is rejected.
package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fovgrid/fov/internal/grid"
)

// Map is a parsed ASCII map: a transparency grid plus the origins found
// in input order.
type Map struct {
	Width, Height int
	transparent   []bool // row-major by y, true = transparent
	Origins       []Point
}

// Point is an integer tile coordinate.
type Point struct{ X, Y int }

// Transparent reports whether (x,y) is a transparent cell. Out-of-bounds
// coordinates report false, matching the Grid2D contract.
func (m *Map) Transparent(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.transparent[y*m.Width+x]
}

// Grid returns a read-only Grid2D view of the map's transparency, suitable
// as the T argument to fov.Compute. Writes through it are silently dropped.
func (m *Map) Grid() grid.Grid2D {
	return grid.NewCallback(m.Width, m.Height, m.Transparent, nil)
}

// Load reads an ASCII map from path.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads an ASCII map from r. Trailing blank lines are stripped; the
// map width is the widest non-empty line; shorter lines are padded with
// transparent '.' cells.
func Parse(r io.Reader) (*Map, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}

	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("map is empty")
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	height := len(lines)

	m := &Map{Width: width, Height: height, transparent: make([]bool, width*height)}
	for y, line := range lines {
		for x := 0; x < width; x++ {
			ch := byte('.')
			if x < len(line) {
				ch = line[x]
			}
			switch ch {
			case '#':
				m.transparent[y*width+x] = false
			case '@':
				m.transparent[y*width+x] = true
				m.Origins = append(m.Origins, Point{X: x, Y: y})
			default:
				m.transparent[y*width+x] = true
			}
		}
	}
	return m, nil
}

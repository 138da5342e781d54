package fov

import (
	"math"

	"github.com/fovgrid/fov/internal/grid"
)

// quadrant names the four 90-degree wedges symmetric shadowcasting scans;
// each quadrant's row axis and column axis map to grid (x,y) differently.
type quadrant int

const (
	quadNorth quadrant = iota
	quadSouth
	quadEast
	quadWest
)

// transform maps an (depth, col) pair scanned within a quadrant to absolute
// grid coordinates, per Albert Ford's 2021 symmetric shadowcasting layout.
func (q quadrant) transform(px, py, depth, col int) (int, int) {
	switch q {
	case quadNorth:
		return px + col, py - depth
	case quadSouth:
		return px + col, py + depth
	case quadEast:
		return px + depth, py + col
	default: // quadWest
		return px - depth, py + col
	}
}

// symRow is one row of the scan: all cells at a fixed depth whose column
// falls within [startSlope, endSlope] * depth.
type symRow struct {
	depth      int
	startSlope float64
	endSlope   float64
}

func (r symRow) minCol() int { return roundTiesUp(float64(r.depth) * r.startSlope) }
func (r symRow) maxCol() int { return roundTiesDown(float64(r.depth) * r.endSlope) }

func (r symRow) next() symRow {
	return symRow{depth: r.depth + 1, startSlope: r.startSlope, endSlope: r.endSlope}
}

func roundTiesUp(n float64) int   { return int(math.Floor(n + 0.5)) }
func roundTiesDown(n float64) int { return int(math.Ceil(n - 0.5)) }

// slopeOf returns the slope of the near edge of the cell at (depth,col):
// (2*col-1)/(2*depth).
func slopeOf(depth, col int) float64 {
	return (2*float64(col) - 1) / (2 * float64(depth))
}

// isSymmetric is the spec's inclusive cell-slice visibility test: the cell
// at (row.depth, col) is visible iff its centre's column falls within the
// row's slope cone, using inclusive comparisons.
func isSymmetric(r symRow, col int) bool {
	c := float64(col)
	d := float64(r.depth)
	return c >= d*r.startSlope && c <= d*r.endSlope
}

// computeSymmetricShadow implements symmetric shadowcasting: tile A is
// visible from B iff B is visible from A, via an inclusive half-width
// slope test on each scanned cell.
func computeSymmetricShadow(t, v grid.Grid2D, px, py int, opts Options) {
	maxDepth := opts.MaxRadius
	if maxDepth <= 0 {
		maxDepth = effectiveRadius(v)
	}
	radiusSq := opts.MaxRadius * opts.MaxRadius
	for _, q := range []quadrant{quadNorth, quadSouth, quadEast, quadWest} {
		scanSymmetric(t, v, px, py, q, symRow{depth: 1, startSlope: -1, endSlope: 1}, maxDepth, opts.MaxRadius, radiusSq, opts.LightWalls)
	}
}

func scanSymmetric(t, v grid.Grid2D, px, py int, q quadrant, row symRow, maxDepth, trueMaxRadius, radiusSq int, lightWalls bool) {
	if row.depth > maxDepth {
		return
	}
	var havePrevWall bool
	var prevWall bool

	markIfInRange := func(x, y int, isWall bool) {
		if !v.InBounds(x, y) {
			return
		}
		if trueMaxRadius > 0 {
			dx, dy := x-px, y-py
			if dx*dx+dy*dy > radiusSq {
				return
			}
		}
		if isWall && !lightWalls {
			return
		}
		v.SetBool(x, y, true)
	}

	minCol, maxCol := row.minCol(), row.maxCol()
	for col := minCol; col <= maxCol; col++ {
		x, y := q.transform(px, py, row.depth, col)
		wall := !t.GetBool(x, y) // out-of-bounds transparency reads false, so this also stops the scan at the grid edge
		if wall || isSymmetric(row, col) {
			markIfInRange(x, y, wall)
		}
		if havePrevWall {
			if prevWall && !wall {
				row.startSlope = slopeOf(row.depth, col)
			}
			if !prevWall && wall {
				next := row.next()
				next.endSlope = slopeOf(row.depth, col)
				scanSymmetric(t, v, px, py, q, next, maxDepth, trueMaxRadius, radiusSq, lightWalls)
			}
		}
		prevWall = wall
		havePrevWall = true
	}
	if havePrevWall && !prevWall {
		scanSymmetric(t, v, px, py, q, row.next(), maxDepth, trueMaxRadius, radiusSq, lightWalls)
	}
}

package fov

import "github.com/fovgrid/fov/internal/grid"

// recursiveMult is the octant transform table for recursive shadowcasting:
// absolute coordinates are px + dx*xx + dy*xy, py + dx*yx + dy*yy, where dx
// is the lateral offset and dy the (negative) distance from the origin
// along the octant's primary scan axis. Columns are {xx, xy, yx, yy}.
var recursiveMult = [8][4]int{
	{1, 0, 0, -1},
	{0, 1, -1, 0},
	{0, 1, 1, 0},
	{1, 0, 0, 1},
	{-1, 0, 0, 1},
	{0, -1, 1, 0},
	{0, -1, -1, 0},
	{-1, 0, 0, -1},
}

// computeRecursiveShadow runs classic recursive shadowcasting over the
// eight octants around the origin.
func computeRecursiveShadow(t, v grid.Grid2D, px, py int, opts Options) {
	radius := opts.MaxRadius
	if radius <= 0 {
		radius = effectiveRadius(v)
	}
	for o := 0; o < 8; o++ {
		m := recursiveMult[o]
		castLightRecursive(t, v, px, py, 1, 1.0, 0.0, radius, opts.MaxRadius, m[0], m[1], m[2], m[3], opts.LightWalls)
	}
}

// effectiveRadius bounds the row-iteration depth when max_radius is 0
// (unlimited): no row of an octant can lie further from the origin than the
// grid's larger dimension.
func effectiveRadius(g grid.Grid2D) int {
	w, h := g.Width(), g.Height()
	if w > h {
		return w
	}
	return h
}

// castLightRecursive scans rows of increasing distance from the origin
// within one octant, tracking a (start,end) slope cone. unbounded reports
// whether the true max_radius was 0 (unlimited), in which case the squared
// radius test is skipped and only the effectiveRadius row cap applies.
func castLightRecursive(t, v grid.Grid2D, px, py, row int, start, end float64, radius, trueMaxRadius, xx, xy, yx, yy int, lightWalls bool) {
	if start < end {
		return
	}
	radiusSq := trueMaxRadius * trueMaxRadius
	newStart := 0.0
	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		for dx <= 0 {
			dx++
			x := px + dx*xx + dy*xy
			y := py + dx*yx + dy*yy
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}
			if !v.InBounds(x, y) {
				continue
			}
			if trueMaxRadius <= 0 || dx*dx+dy*dy < radiusSq {
				if t.GetBool(x, y) || lightWalls {
					v.SetBool(x, y, true)
				}
			}
			if blocked {
				if !t.GetBool(x, y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if !t.GetBool(x, y) && j < radius {
				blocked = true
				castLightRecursive(t, v, px, py, j+1, start, lSlope, radius, trueMaxRadius, xx, xy, yx, yy, lightWalls)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

package fov

import (
	"github.com/fovgrid/fov/internal/grid"
	"github.com/fovgrid/fov/internal/line"
)

// permissiveCorners are the four corner offsets of a cell, relative
// to its center, shared by both the origin and target cell in a permissive
// test.
var permissiveCorners = [4][2]float64{{-0.5, -0.5}, {0.5, -0.5}, {-0.5, 0.5}, {0.5, 0.5}}

// computePermissive tests, for every tile in the window, a fixed set of 8
// bright lines (the 4 origin-cell corners each paired with one of the 2
// target-cell corners facing the origin along its dominant axis); the tile
// is visible once at least Permissiveness of those lines cross no opaque
// tile.
func computePermissive(t, v grid.Grid2D, px, py int, opts Options) {
	minX, minY, maxX, maxY := window(v, px, py, opts.MaxRadius)
	radiusSq := opts.MaxRadius * opts.MaxRadius
	k := opts.Permissiveness
	if k < 1 {
		k = 1
	}
	if k > 8 {
		k = 8
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x == px && y == py {
				continue
			}
			if opts.MaxRadius > 0 {
				dx, dy := x-px, y-py
				if dx*dx+dy*dy > radiusSq {
					continue
				}
			}
			if countClearLines(t, px, py, x, y) < k {
				continue
			}
			if t.GetBool(x, y) {
				v.SetBool(x, y, true)
			} else if opts.LightWalls {
				v.SetBool(x, y, true)
			}
		}
	}
}

// countClearLines returns how many of the 8 candidate corner-to-corner
// lines between the origin and target cell pass through no opaque tile
// (excluding the origin and target cells themselves).
func countClearLines(t grid.Grid2D, px, py, tx, ty int) int {
	targetCorners := facingCorners(px, py, tx, ty)
	clear := 0
	for _, oc := range permissiveCorners {
		for _, tc := range targetCorners {
			bx, by := float64(px)+oc[0], float64(py)+oc[1]
			ex, ey := float64(tx)+tc[0], float64(ty)+tc[1]
			if lineIsClear(t, bx, by, ex, ey, px, py, tx, ty) {
				clear++
			}
		}
	}
	return clear
}

// facingCorners picks the two corners of the target cell that face the
// origin along whichever axis the target is further away on.
func facingCorners(px, py, tx, ty int) [2][2]float64 {
	dx, dy := tx-px, ty-py
	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}
	if adx >= ady {
		sign := -1.0
		if dx < 0 {
			sign = 1.0
		}
		return [2][2]float64{{sign * 0.5, -0.5}, {sign * 0.5, 0.5}}
	}
	sign := -1.0
	if dy < 0 {
		sign = 1.0
	}
	return [2][2]float64{{-0.5, sign * 0.5}, {0.5, sign * 0.5}}
}

// lineIsClear samples a DDA path between two real endpoints and reports
// whether every intermediate cell (excluding the origin and target cells)
// is transparent. The first and last samples are the corner endpoints
// themselves, which round onto a neighbouring cell, so they are not tested.
func lineIsClear(t grid.Grid2D, bx, by, ex, ey float64, px, py, tx, ty int) bool {
	pts := line.DDA(bx, by, ex, ey, nil)
	for i, p := range pts {
		if i == 0 || i == len(pts)-1 {
			continue
		}
		if (p[0] == px && p[1] == py) || (p[0] == tx && p[1] == ty) {
			continue
		}
		if !t.GetBool(p[0], p[1]) {
			return false
		}
	}
	return true
}

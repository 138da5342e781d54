package fov

import "github.com/fovgrid/fov/internal/grid"

// applyWallLighting is the shared post-process for the raycasting engines:
// a wall is lit iff it is opaque and has a transparent, already-lit
// neighbor lying on the quadrant side closer to the origin along both
// axes (the 4-connected neighbor in the direction of the origin). The one
// exception: a wall on an axis through the origin that a ray already lit
// stays lit (see hasLitNearNeighborAny).
func applyWallLighting(t, v grid.Grid2D, px, py, minX, minY, maxX, maxY int) {
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !t.GetBool(x, y) && !v.GetBool(x, y) {
				if hasLitNearNeighbor(t, v, px, py, x, y) {
					v.SetBool(x, y, true)
				}
			} else if !t.GetBool(x, y) && v.GetBool(x, y) {
				if hasLitNearNeighbor(t, v, px, py, x, y) {
					continue
				}
				if !hasLitNearNeighborAny(t, v, px, py, x, y) {
					v.SetBool(x, y, false)
				}
			}
		}
	}
}

// hasLitNearNeighbor checks the one or two neighbors on the origin-facing
// side along x and y independently.
func hasLitNearNeighbor(t, v grid.Grid2D, px, py, x, y int) bool {
	nx := x
	if x > px {
		nx = x - 1
	} else if x < px {
		nx = x + 1
	}
	ny := y
	if y > py {
		ny = y - 1
	} else if y < py {
		ny = y + 1
	}
	if nx != x && t.GetBool(nx, y) && v.GetBool(nx, y) {
		return true
	}
	if ny != y && t.GetBool(x, ny) && v.GetBool(x, ny) {
		return true
	}
	return false
}

// hasLitNearNeighborAny is a conservative fallback for tiles lying exactly
// on an axis through the origin (where one of the two quadrant-side
// neighbors coincides with the tile itself): treat the wall as correctly
// lit if it was already reached directly by a ray, since there is no
// narrower side to re-check.
func hasLitNearNeighborAny(t, v grid.Grid2D, px, py, x, y int) bool {
	return x == px || y == py
}

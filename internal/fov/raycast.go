package fov

import (
	"github.com/fovgrid/fov/internal/grid"
	"github.com/fovgrid/fov/internal/line"
)

// computeCircularRaycast casts a Bresenham ray from the origin to every
// tile on the perimeter of the (possibly radius-clipped) window.
func computeCircularRaycast(t, v grid.Grid2D, px, py int, opts Options) {
	minX, minY, maxX, maxY := window(v, px, py, opts.MaxRadius)
	radiusSq := opts.MaxRadius * opts.MaxRadius

	for _, tgt := range perimeter(minX, minY, maxX, maxY) {
		castRay(t, v, px, py, tgt[0], tgt[1], opts.MaxRadius, radiusSq, opts.LightWalls)
	}
	if opts.LightWalls {
		applyWallLighting(t, v, px, py, minX, minY, maxX, maxY)
	}
}

// computeDiamondRaycast uses a diamond coverage pattern that visits every
// perimeter direction exactly once with minimal ray duplication: instead of
// the rectangular perimeter, it casts to the points of the diamond
// |x-px|+|y-py| == r for the clipped radius, falling back to the rectangle
// perimeter when unbounded.
func computeDiamondRaycast(t, v grid.Grid2D, px, py int, opts Options) {
	minX, minY, maxX, maxY := window(v, px, py, opts.MaxRadius)
	radiusSq := opts.MaxRadius * opts.MaxRadius

	var targets [][2]int
	if opts.MaxRadius > 0 {
		targets = diamondPerimeter(px, py, opts.MaxRadius, minX, minY, maxX, maxY)
	} else {
		targets = perimeter(minX, minY, maxX, maxY)
	}
	for _, tgt := range targets {
		castRay(t, v, px, py, tgt[0], tgt[1], opts.MaxRadius, radiusSq, opts.LightWalls)
	}
	if opts.LightWalls {
		applyWallLighting(t, v, px, py, minX, minY, maxX, maxY)
	}
}

// castRay steps a Bresenham line from the origin to (tx,ty), marking each
// tile lit until it leaves the window, exceeds the squared radius, or hits
// an opaque tile (which is itself marked lit only when lightWalls is set,
// and then the ray stops).
func castRay(t, v grid.Grid2D, px, py, tx, ty, maxRadius, radiusSq int, lightWalls bool) {
	b := line.NewBresenham(px, py, tx, ty)
	x, y := b.Pos()
	for {
		if !v.InBounds(x, y) {
			return
		}
		if maxRadius > 0 {
			dx, dy := x-px, y-py
			if dx*dx+dy*dy > radiusSq {
				return
			}
		}
		if !t.GetBool(x, y) {
			if lightWalls {
				v.SetBool(x, y, true)
			}
			return
		}
		v.SetBool(x, y, true)
		if !b.Step() {
			return
		}
		x, y = b.Pos()
	}
}

// perimeter returns every tile on the boundary of an axis-aligned
// rectangle, each visited exactly once.
func perimeter(minX, minY, maxX, maxY int) [][2]int {
	if minX > maxX || minY > maxY {
		return nil
	}
	var out [][2]int
	for x := minX; x <= maxX; x++ {
		out = append(out, [2]int{x, minY})
		if maxY != minY {
			out = append(out, [2]int{x, maxY})
		}
	}
	for y := minY + 1; y < maxY; y++ {
		out = append(out, [2]int{minX, y})
		if maxX != minX {
			out = append(out, [2]int{maxX, y})
		}
	}
	return out
}

// diamondPerimeter returns the tiles of the Manhattan-distance-r diamond
// around (px,py), clipped to the window, visiting each of the four edges
// once so no direction is cast twice.
func diamondPerimeter(px, py, r, minX, minY, maxX, maxY int) [][2]int {
	var out [][2]int
	add := func(x, y int) {
		if x >= minX && x <= maxX && y >= minY && y <= maxY {
			out = append(out, [2]int{x, y})
		}
	}
	for dx := 0; dx < r; dx++ {
		dy := r - dx
		add(px+dx, py+dy)
		add(px+dy, py-dx)
		add(px-dx, py-dy)
		add(px-dy, py+dx)
	}
	return out
}

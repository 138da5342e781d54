package fov

import (
	"github.com/fovgrid/fov/internal/grid"
	"github.com/fovgrid/fov/internal/status"
)

// computeRestrictive implements Mingos' restrictive precise angle
// shadowcasting (MRPAS): each of the four quadrants around the origin is
// scanned independently by Manhattan-distance lines, tracking a list of
// blocked angular slices.
//
// The horizontal-edge octant below intentionally mirrors the vertical-edge
// octant's obstacle scan rather than a variant seen in one upstream source
// that double-increments its obstacle index inside the scan loop (skipping
// every other existing slice on a match). That looks like a defect rather
// than an intentional skip, so both octants here share the same,
// non-defective obstacle scan.
func computeRestrictive(t, v grid.Grid2D, px, py int, opts Options) (status.Status, error) {
	w, h := v.Width(), v.Height()
	area := w * h
	if w != 0 && area/w != h {
		return status.Fail(status.OutOfMemory, "obstacle array size overflow for a %dx%d grid", w, h)
	}
	maxObstacles := area/7 + 1

	o := acquireObstacles(maxObstacles)
	defer releaseObstacles(o)

	type dir struct{ dx, dy int }
	for _, d := range []dir{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		restrictiveQuadrant(t, v, px, py, opts.MaxRadius, opts.LightWalls, d.dx, d.dy, o)
	}
	return status.Ok, nil
}

func restrictiveQuadrant(t, v grid.Grid2D, px, py, maxRadius int, lightWalls bool, dx, dy int, o *obstacleSlices) {
	restrictiveOctantVertical(t, v, px, py, maxRadius, lightWalls, dx, dy, o)
	restrictiveOctantHorizontal(t, v, px, py, maxRadius, lightWalls, dx, dy, o)
}

// restrictiveOctantVertical scans progressive rows outward along y,
// iterating columns x within each row.
func restrictiveOctantVertical(t, v grid.Grid2D, px, py, maxRadius int, lightWalls bool, dx, dy int, o *obstacleSlices) {
	o.reset()
	iteration := 1
	totalObstacles := 0
	obstaclesInLastLine := 0
	minAngle := 0.0

	y := py + dy
	if !inAxis(y, v.Height()) {
		return
	}
	for {
		slopesPerCell := 1.0 / float64(iteration)
		halfSlopes := slopesPerCell * 0.5
		processedCell := int((minAngle + halfSlopes) / slopesPerCell)
		minX := maxInt(0, px-iteration)
		maxX := minInt(v.Width()-1, px+iteration)
		done := true

		for x := px + processedCell*dx; x >= minX && x <= maxX; x += dx {
			visible := true
			extended := false
			centreSlope := float64(processedCell) * slopesPerCell
			startSlope := centreSlope - halfSlopes
			endSlope := centreSlope + halfSlopes

			if obstaclesInLastLine > 0 {
				if !(v.GetBool(x, y-dy) && t.GetBool(x, y-dy)) && !(v.GetBool(x-dx, y-dy) && t.GetBool(x-dx, y-dy)) {
					visible = false
				} else {
					for idx := 0; idx < obstaclesInLastLine && visible; idx++ {
						if startSlope <= o.end[idx] && endSlope >= o.start[idx] {
							if t.GetBool(x, y) {
								if centreSlope > o.start[idx] && centreSlope < o.end[idx] {
									visible = false
								}
							} else if startSlope >= o.start[idx] && endSlope <= o.end[idx] {
								visible = false
							} else {
								o.start[idx] = minF64(o.start[idx], startSlope)
								o.end[idx] = maxF64(o.end[idx], endSlope)
								extended = true
							}
						}
					}
				}
			}

			if visible {
				done = false
				v.SetBool(x, y, true)
				if !t.GetBool(x, y) {
					if minAngle >= startSlope {
						minAngle = endSlope
						if processedCell == iteration {
							done = true
						}
					} else if !extended {
						o.start = append(o.start, startSlope)
						o.end = append(o.end, endSlope)
						totalObstacles++
					}
					if !lightWalls {
						v.SetBool(x, y, false)
					}
				}
			}
			processedCell++
		}
		if iteration == maxRadius {
			done = true
		}
		iteration++
		obstaclesInLastLine = totalObstacles
		y += dy
		if !inAxis(y, v.Height()) {
			done = true
		}
		if done {
			return
		}
	}
}

// restrictiveOctantHorizontal scans progressive columns outward along x,
// iterating rows y within each column. Mirrors the vertical-edge octant's
// obstacle scan exactly (see computeRestrictive's doc comment on the
// historical defect).
func restrictiveOctantHorizontal(t, v grid.Grid2D, px, py, maxRadius int, lightWalls bool, dx, dy int, o *obstacleSlices) {
	o.reset()
	iteration := 1
	totalObstacles := 0
	obstaclesInLastLine := 0
	minAngle := 0.0

	x := px + dx
	if !inAxis(x, v.Width()) {
		return
	}
	for {
		slopesPerCell := 1.0 / float64(iteration)
		halfSlopes := slopesPerCell * 0.5
		processedCell := int((minAngle + halfSlopes) / slopesPerCell)
		minY := maxInt(0, py-iteration)
		maxY := minInt(v.Height()-1, py+iteration)
		done := true

		for y := py + processedCell*dy; y >= minY && y <= maxY; y += dy {
			visible := true
			extended := false
			centreSlope := float64(processedCell) * slopesPerCell
			startSlope := centreSlope - halfSlopes
			endSlope := centreSlope + halfSlopes

			if obstaclesInLastLine > 0 {
				if !(v.GetBool(x-dx, y) && t.GetBool(x-dx, y)) && !(v.GetBool(x-dx, y-dy) && t.GetBool(x-dx, y-dy)) {
					visible = false
				} else {
					for idx := 0; idx < obstaclesInLastLine && visible; idx++ {
						if startSlope <= o.end[idx] && endSlope >= o.start[idx] {
							if t.GetBool(x, y) {
								if centreSlope > o.start[idx] && centreSlope < o.end[idx] {
									visible = false
								}
							} else if startSlope >= o.start[idx] && endSlope <= o.end[idx] {
								visible = false
							} else {
								o.start[idx] = minF64(o.start[idx], startSlope)
								o.end[idx] = maxF64(o.end[idx], endSlope)
								extended = true
							}
						}
					}
				}
			}

			if visible {
				done = false
				v.SetBool(x, y, true)
				if !t.GetBool(x, y) {
					if minAngle >= startSlope {
						minAngle = endSlope
						if processedCell == iteration {
							done = true
						}
					} else if !extended {
						o.start = append(o.start, startSlope)
						o.end = append(o.end, endSlope)
						totalObstacles++
					}
					if !lightWalls {
						v.SetBool(x, y, false)
					}
				}
			}
			processedCell++
		}
		if iteration == maxRadius {
			done = true
		}
		iteration++
		obstaclesInLastLine = totalObstacles
		x += dx
		if !inAxis(x, v.Width()) {
			done = true
		}
		if done {
			return
		}
	}
}

func inAxis(v, length int) bool { return v >= 0 && v < length }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func minF64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

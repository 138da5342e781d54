package fov

import (
	"github.com/fovgrid/fov/internal/grid"
	"github.com/fovgrid/fov/internal/status"
)

// PascalDiffusion computes scalar visibility by diffusing light outward
// from the origin row by row: each destination cell receives the average
// of the source cells that "cast" onto it (the diagonal predecessor, plus
// the straight-ahead source while the cell lies within the scan's current
// span around the origin column, plus the same-row adjacent source once it
// lies on or outside that span; a cell exactly on the span's edge takes
// both), then is attenuated by its own transparency before
// contributing to the next row. V must answer scalar reads/writes.
func PascalDiffusion(t grid.Grid2D, v grid.ScalarGrid2D, px, py int) (status.Status, error) {
	if s, err := checkOrigin(v, px, py); err != nil {
		return s, err
	}
	w := v.Width()
	if w == 0 || v.Height() == 0 {
		return status.Ok, nil
	}

	row := make([]float64, w)
	row2 := make([]float64, w)
	row3 := make([]float64, w)

	pascalScanInit(t, v, px, py, row)

	copy(row2, row)
	pascalScanNextRow(t, v, px, py-1, -1, 1, row2, row3)
	copy(row2, row)
	pascalScanNextRow(t, v, px, py+1, 1, 1, row2, row3)
	return status.Ok, nil
}

// transparencyF64 reads a boolean transparency grid as a 0.0/1.0 weight,
// the multiplicative unit pascal diffusion and triage both propagate with.
func transparencyF64(t grid.Grid2D, x, y int) float64 {
	if t.GetBool(x, y) {
		return 1.0
	}
	return 0.0
}

func pascalScanInit(t grid.Grid2D, v grid.ScalarGrid2D, px, py int, row []float64) {
	v.SetF64(px, py, 1.0)
	row[px] = transparencyF64(t, px, py)
	visibility := row[px]
	for x := px - 1; x >= 0; x-- {
		v.SetF64(x, py, visibility)
		if visibility != 0 {
			visibility *= transparencyF64(t, x, py)
		}
		row[x] = visibility
	}
	visibility = row[px]
	for x := px + 1; x < len(row); x++ {
		v.SetF64(x, py, visibility)
		if visibility != 0 {
			visibility *= transparencyF64(t, x, py)
		}
		row[x] = visibility
	}
}

func pascalScanNextRow(t grid.Grid2D, v grid.ScalarGrid2D, px, scanY, scanDir, iteration int, prevRow, nextRow []float64) {
	if scanY < 0 || scanY >= v.Height() {
		return
	}
	v.SetF64(px, scanY, prevRow[px])
	nextRow[px] = prevRow[px] * transparencyF64(t, px, scanY)

	pascalScanLine(t, v, px, scanY, iteration, prevRow, nextRow, px-1, -1, -1)
	pascalScanLine(t, v, px, scanY, iteration, prevRow, nextRow, px+1, len(nextRow), 1)

	pascalScanNextRow(t, v, px, scanY+scanDir, scanDir, iteration+1, nextRow, prevRow)
}

func pascalScanLine(t grid.Grid2D, v grid.ScalarGrid2D, povX, scanY, iteration int, prevRow, nextRow []float64, xBegin, xEnd, xStep int) {
	for x := xBegin; x != xEnd; x += xStep {
		casts := 0
		visibility := 0.0

		casts++
		visibility += prevRow[x-xStep]

		if povX-iteration <= x && x <= povX+iteration {
			casts++
			visibility += prevRow[x]
		}
		if x <= povX-iteration || povX+iteration <= x {
			casts++
			visibility += nextRow[x-xStep]
		}
		visibility *= 1.0 / float64(casts)
		v.SetF64(x, scanY, visibility)
		if visibility != 0 {
			visibility *= transparencyF64(t, x, scanY)
		}
		nextRow[x] = visibility
	}
}

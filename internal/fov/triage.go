package fov

import (
	"github.com/fovgrid/fov/internal/grid"
	"github.com/fovgrid/fov/internal/status"
)

// Triage classification bits, stored in the low two bits of V's u8 cells.
const (
	TriageUnreachable  = 0b00
	TriageMaybeVisible = 0b01
	TriageAlwaysVisible = 0b10
)

// triage row bits: bit 2 caches whether the tile is transparent, alongside
// the two classification bits that are actually written to V.
const (
	bitMaybe       = 0b001
	bitAlways      = 0b010
	bitTransparent = 0b100
)

// Triage computes a cheap reachability over-approximation: every tile
// marked TriageUnreachable is guaranteed not visible under any exact
// engine; TriageAlwaysVisible tiles are guaranteed visible. V must answer
// scalar u8 reads/writes.
func Triage(t grid.Grid2D, v grid.ScalarGrid2D, px, py int) (status.Status, error) {
	if s, err := checkOrigin(v, px, py); err != nil {
		return s, err
	}
	w := v.Width()
	if w == 0 || v.Height() == 0 {
		return status.Ok, nil
	}

	row := make([]uint8, w)
	row2 := make([]uint8, w)
	row3 := make([]uint8, w)

	triageScanInit(t, v, px, py, row)

	copy(row2, row)
	triageScanNextRow(t, v, px, py-1, -1, 1, row2, row3)
	copy(row2, row)
	triageScanNextRow(t, v, px, py+1, 1, 1, row2, row3)
	return status.Ok, nil
}

func triageScanInit(t grid.Grid2D, v grid.ScalarGrid2D, px, py int, row []uint8) {
	if t.GetBool(px, py) {
		row[px] = bitTransparent | bitAlways | bitMaybe
	} else {
		row[px] = bitAlways | bitMaybe
	}
	for x := px - 1; x >= 0; x-- {
		row[x] = 0
		if row[x+1]&bitTransparent != 0 {
			if t.GetBool(x, py) {
				row[x] = bitTransparent | bitAlways | bitMaybe
			} else {
				row[x] = bitAlways | bitMaybe
			}
		}
	}
	for x := px + 1; x < len(row); x++ {
		row[x] = 0
		if row[x-1]&bitTransparent != 0 {
			if t.GetBool(x, py) {
				row[x] = bitTransparent | bitAlways | bitMaybe
			} else {
				row[x] = bitAlways | bitMaybe
			}
		}
	}
	for x := range row {
		v.SetU8(x, py, row[x]&0b11)
	}
}

func triageScanNextRow(t grid.Grid2D, v grid.ScalarGrid2D, px, scanY, scanDir, iteration int, prevRow, nextRow []uint8) {
	if scanY < 0 || scanY >= v.Height() {
		return
	}
	if prevRow[px]&bitTransparent != 0 {
		nextRow[px] = prevRow[px]
	} else {
		nextRow[px] = 0
	}
	if nextRow[px] != 0 && !t.GetBool(px, scanY) {
		nextRow[px] &= 0b11
	}

	triageScanLine(t, px, scanY, iteration, prevRow, nextRow, px-1, -1, -1)
	triageScanLine(t, px, scanY, iteration, prevRow, nextRow, px+1, len(nextRow), 1)

	for x := range nextRow {
		v.SetU8(x, scanY, nextRow[x]&0b11)
	}

	triageScanNextRow(t, v, px, scanY+scanDir, scanDir, iteration+1, nextRow, prevRow)
}

func triageScanLine(t grid.Grid2D, povX, scanY, iteration int, prevRow, nextRow []uint8, xBegin, xEnd, xStep int) {
	for x := xBegin; x != xEnd; x += xStep {
		tests := 0
		alwaysHit := 0
		maybeHit := 0

		tests++
		if prevRow[x-xStep]&0b101 != 0 {
			maybeHit++
		}
		if prevRow[x-xStep]&0b110 != 0 {
			alwaysHit++
		}

		if povX-iteration <= x && x <= povX+iteration {
			tests++
			if prevRow[x]&0b101 != 0 {
				maybeHit++
			}
			if prevRow[x]&0b110 != 0 {
				alwaysHit++
			}
		}
		if x <= povX-iteration || povX+iteration <= x {
			tests++
			if nextRow[x-xStep]&0b101 != 0 {
				maybeHit++
			}
			if nextRow[x-xStep]&0b110 != 0 {
				alwaysHit++
			}
		}

		var v uint8
		if maybeHit != 0 {
			v |= bitMaybe
		}
		if alwaysHit == tests {
			v |= bitAlways
		}
		if v != 0 && t.GetBool(x, scanY) {
			v |= bitTransparent
		}
		nextRow[x] = v
	}
}

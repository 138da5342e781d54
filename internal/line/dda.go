package line

import "math"

// DDACount returns the number of samples DDA would emit between two float
// endpoints, without computing them: 1 + max(|floor(ex)-floor(bx)|,
// |floor(ey)-floor(by)|).
//
// This is a two-pass API by design (mirroring the original spec): call
// DDACount first to size a buffer, then DDA to fill it. The count here
// comes from the floored endpoints, not the length of the emitted
// sequence — for non-integer endpoints the two can differ by one (see
// DESIGN.md, Open Question 2). Callers must size buffers from this function,
// never assume N+1 equals the number of half-up-rounded samples along the
// path.
func DDACount(bx, by, ex, ey float64) int {
	n := steps(bx, by, ex, ey)
	return n + 1
}

func steps(bx, by, ex, ey float64) int {
	dxi := int(math.Floor(ex)) - int(math.Floor(bx))
	dyi := int(math.Floor(ey)) - int(math.Floor(by))
	return max(abs(dxi), abs(dyi))
}

// DDA samples a line from (bx,by) to (ex,ey) using N = DDACount-1 steps.
// The i-th sample is (round(bx+i*dx/N), round(by+i*dy/N)) with half-up
// rounding; for a zero-length step (N=0) the single sample is the origin.
//
// out, if non-nil, is filled in place (as many samples as len(out) allows,
// truncating a longer sequence or continuing the same step past the
// endpoint for a shorter one) and returned; if out is nil a buffer sized
// from DDACount is allocated. This mirrors the library's two-pass
// count-then-fill contract at the Go call-site level.
func DDA(bx, by, ex, ey float64, out [][2]int) [][2]int {
	n := steps(bx, by, ex, ey)
	if out == nil {
		out = make([][2]int, n+1)
	}
	dx := ex - bx
	dy := ey - by
	for i := range out {
		if n == 0 {
			out[i] = [2]int{roundHalfUp(bx), roundHalfUp(by)}
			continue
		}
		t := float64(i) / float64(n)
		out[i] = [2]int{roundHalfUp(bx + t*dx), roundHalfUp(by + t*dy)}
	}
	return out
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Orthogonal rasterizes a line from (bx,by) to (ex,ey) where every step is
// axis-aligned: at each step, comparing (0.5+ix)*|dy| against (0.5+iy)*|dx|
// picks a horizontal or vertical move, never a diagonal one. The emitted
// count is always 1 + round(|dx|) + round(|dy|).
func Orthogonal(bx, by, ex, ey float64) [][2]int {
	dx := ex - bx
	dy := ey - by
	adx := math.Abs(dx)
	ady := math.Abs(dy)

	count := 1 + roundHalfUp(adx) + roundHalfUp(ady)
	out := make([][2]int, 0, count)

	sx := 1
	if dx < 0 {
		sx = -1
	}
	sy := 1
	if dy < 0 {
		sy = -1
	}

	x, y := roundHalfUp(bx), roundHalfUp(by)
	out = append(out, [2]int{x, y})

	ix, iy := 0, 0
	for len(out) < count {
		// Compare how far along each axis we'd be after taking one more
		// step on it; the axis that is further behind its target fraction
		// moves next.
		horiz := (0.5 + float64(ix)) * ady
		vert := (0.5 + float64(iy)) * adx
		if horiz < vert {
			x += sx
			ix++
		} else {
			y += sy
			iy++
		}
		out = append(out, [2]int{x, y})
	}
	return out
}

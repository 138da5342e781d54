// Package line implements the tile-line rasterizers: an integer Bresenham
// stepper and a float-endpoint DDA computer (plus an orthogonal DDA
// variant), used both as building blocks for the raycasting FOV engines and
// as a standalone line-of-sight API.
package line

// Bresenham is a lazy stepper over the classic integer Bresenham line
// algorithm; it can only be restarted by building a new one with
// NewBresenham. It starts at the origin and its terminal step lands exactly
// on the destination; it advances along the major axis every step and
// advances the minor axis whenever the accumulated error crosses zero.
// Exact ties are broken according to the direction of travel along the
// major axis, so a line and its reverse cover the same set of tiles.
type Bresenham struct {
	x, y       int
	x1, y1     int
	dx, dy     int // absolute deltas
	sx, sy     int // step sign per axis
	err        int
	steep      bool // true when |dy| > |dx|: y is the major axis
	done       bool
}

// NewBresenham initializes a stepper from (x0,y0) to (x1,y1). The stepper
// is positioned at the origin; call Step to advance.
func NewBresenham(x0, y0, x1, y1 int) *Bresenham {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)

	b := &Bresenham{
		x: x0, y: y0,
		x1: x1, y1: y1,
		dx: dx, dy: dy,
		sx: sx, sy: sy,
	}
	if dy > dx {
		b.steep = true
		b.err = dy / 2
		if sy < 0 {
			b.err = (dy - 1) / 2
		}
	} else {
		b.err = dx / 2
		if sx < 0 {
			b.err = (dx - 1) / 2
		}
	}
	return b
}

// Pos returns the stepper's current position.
func (b *Bresenham) Pos() (int, int) { return b.x, b.y }

// Done reports whether a Step call has already found the stepper at the
// destination and returned false; it is still false right after the Step
// that lands on the destination.
func (b *Bresenham) Done() bool { return b.done }

// Step advances the stepper by one tile and reports whether a new position
// was produced (false once the destination has already been reached).
func (b *Bresenham) Step() bool {
	if b.done {
		return false
	}
	if b.x == b.x1 && b.y == b.y1 {
		b.done = true
		return false
	}

	if b.steep {
		b.y += b.sy
		b.err -= b.dx
		if b.err < 0 {
			b.x += b.sx
			b.err += b.dy
		}
	} else {
		b.x += b.sx
		b.err -= b.dy
		if b.err < 0 {
			b.y += b.sy
			b.err += b.dx
		}
	}
	return true
}

// Len returns the total number of positions the stepper will produce,
// including the origin and the destination: 1 + max(|dx|, |dy|).
func (b *Bresenham) Len() int {
	return 1 + max(b.dx, b.dy)
}

// Line returns every tile from (x0,y0) to (x1,y1) inclusive, in order.
func Line(x0, y0, x1, y1 int) [][2]int {
	b := NewBresenham(x0, y0, x1, y1)
	out := make([][2]int, 0, b.Len())
	x, y := b.Pos()
	out = append(out, [2]int{x, y})
	for b.Step() {
		x, y = b.Pos()
		out = append(out, [2]int{x, y})
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

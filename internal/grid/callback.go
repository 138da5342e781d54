package grid

// Callback adapts a pair of user-supplied accessor functions to Grid2D.
// Behavior is entirely defined by the caller; width/height are fixed at
// construction and used only for bounds checking before the callbacks are
// invoked — a grid whose get/set functions check their own bounds will
// simply never see an out-of-range call.
type Callback struct {
	width  int
	height int
	get    func(x, y int) bool
	set    func(x, y int, v bool)
}

// NewCallback builds a Grid2D backed by user-supplied get/set functions.
// set may be nil for a read-only view; writes to a read-only callback grid
// are silently dropped, consistent with every other out-of-bounds write.
func NewCallback(width, height int, get func(x, y int) bool, set func(x, y int, v bool)) *Callback {
	return &Callback{width: width, height: height, get: get, set: set}
}

func (g *Callback) Width() int  { return g.width }
func (g *Callback) Height() int { return g.height }

func (g *Callback) InBounds(x, y int) bool {
	return InBounds(g.width, g.height, x, y)
}

func (g *Callback) GetBool(x, y int) bool {
	if !g.InBounds(x, y) || g.get == nil {
		return false
	}
	return g.get(x, y)
}

func (g *Callback) SetBool(x, y int, v bool) {
	if !g.InBounds(x, y) || g.set == nil {
		return
	}
	g.set(x, y, v)
}

// GetU8 coerces through the boolean callback, per spec: callback grids
// coerce through GetBool regardless of requested scalar width.
func (g *Callback) GetU8(x, y int) uint8 { return boolToU8(g.GetBool(x, y)) }

// SetU8 coerces v via v != 0 before calling through the boolean callback.
func (g *Callback) SetU8(x, y int, v uint8) { g.SetBool(x, y, v != 0) }

// GetF64 coerces through the boolean callback.
func (g *Callback) GetF64(x, y int) float64 { return boolToF64(g.GetBool(x, y)) }

// SetF64 coerces v via v != 0 before calling through the boolean callback.
func (g *Callback) SetF64(x, y int, v float64) { g.SetBool(x, y, v != 0) }

var (
	_ Grid2D       = (*Callback)(nil)
	_ ScalarGrid2D = (*Callback)(nil)
)

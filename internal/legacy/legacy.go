// Package legacy preserves the observable contract of an older map layout:
// a cell triple {transparent, walkable, in_fov} with a per-map "select"
// index choosing which of the three bit-planes the Grid2D-shaped boolean
// accessors read and write. It exists purely as a compatibility shim (spec
// §6.3, §9); new code uses grid.Bitpacked or grid.Contiguous instead.
//
// The three bit-planes are laid out the way the teacher lays out a fixed
// binary header's named fields: each plane independently addressable, one
// bit per cell per plane, rather than a single packed struct.
package legacy

import "github.com/fovgrid/fov/internal/grid"

// Field selects which of a Map's three bit-planes the Grid2D accessors
// operate on.
type Field int

const (
	Transparent Field = iota
	Walkable
	InFOV
)

// Map is the deprecated three-bit cell layout: one bit-plane per field,
// each sized like a grid.Bitpacked grid.
type Map struct {
	width, height int
	stride        int
	planes        [3][]byte
	selected      Field
}

// NewMap allocates a Map with all three bit-planes cleared.
func NewMap(width, height int) *Map {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := (width + 7) / 8
	m := &Map{width: width, height: height, stride: stride}
	for i := range m.planes {
		m.planes[i] = make([]byte, stride*height)
	}
	return m
}

// Select sets which field the Grid2D boolean accessors below operate on.
// It does not affect SetField/GetField, which always address a named
// plane directly.
func (m *Map) Select(f Field) { m.selected = f }

// Selected reports the field Select last chose.
func (m *Map) Selected() Field { return m.selected }

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

func (m *Map) InBounds(x, y int) bool {
	return grid.InBounds(m.width, m.height, x, y)
}

// GetField reads one bit-plane directly, independent of Select.
func (m *Map) GetField(f Field, x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	byteIdx := y*m.stride + x/8
	bit := byte(1) << uint(x%8)
	return m.planes[f][byteIdx]&bit != 0
}

// SetField writes one bit-plane directly, independent of Select.
func (m *Map) SetField(f Field, x, y int, v bool) {
	if !m.InBounds(x, y) {
		return
	}
	byteIdx := y*m.stride + x/8
	bit := byte(1) << uint(x%8)
	if v {
		m.planes[f][byteIdx] |= bit
	} else {
		m.planes[f][byteIdx] &^= bit
	}
}

// GetBool reads the currently selected field, satisfying grid.Grid2D so a
// legacy Map can be passed anywhere a transparency or visibility grid is
// expected by selecting the appropriate field first.
func (m *Map) GetBool(x, y int) bool { return m.GetField(m.selected, x, y) }

// SetBool writes the currently selected field.
func (m *Map) SetBool(x, y int, v bool) { m.SetField(m.selected, x, y, v) }

var _ grid.Grid2D = (*Map)(nil)
